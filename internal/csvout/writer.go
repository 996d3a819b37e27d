// Package csvout serializes homogeneous record collections to CSV files.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Record is one CSV row. Header returns the canonical column names and
// Fields the values in the same order; all records passed to a single
// WriteRecords call must share the same column set.
type Record interface {
	Header() []string
	Fields() []string
}

// countingWriter tracks bytes written through it.
type countingWriter struct {
	f *os.File
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.f.Write(p)
	w.n += int64(n)
	return n, err
}

// WriteRecords writes a header row taken from the first record, then one
// row per record in input order. Quoting follows encoding/csv, so field
// values containing commas or quotes are handled even though the fixed
// vocabularies never produce them. An empty records slice writes nothing
// and creates no file. Returns the number of bytes written.
func WriteRecords[R Record](path string, records []R) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	cw := &countingWriter{f: f}
	w := csv.NewWriter(cw)

	if err := w.Write(records[0].Header()); err != nil {
		f.Close()
		return cw.n, fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Fields()); err != nil {
			f.Close()
			return cw.n, fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return cw.n, fmt.Errorf("failed to flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to close %s: %w", path, err)
	}

	return cw.n, nil
}
