// Package manifest records what a generation run produced: one Run per
// invocation, with per-file statistics. Runs can optionally be persisted
// to a bbolt ledger so successive fixture generations are auditable.
package manifest

import "time"

// FileStat describes one CSV file produced by a scenario.
type FileStat struct {
	Name            string `json:"name"`
	Path            string `json:"path"`
	Records         int    `json:"records"`
	NewRecords      int    `json:"new_records"`
	ModifiedRecords int    `json:"modified_records"`
	Bytes           int64  `json:"bytes"`
}

// Run describes one complete generator invocation.
type Run struct {
	ID         string     `json:"id"`
	Seed       uint64     `json:"seed"`
	StartedAt  time.Time  `json:"started_at"`
	Files      []FileStat `json:"files"`
	TotalBytes int64      `json:"total_bytes"`
}

// TotalFiles sums the file stats of a run.
func (r *Run) TotalFiles() int {
	return len(r.Files)
}
