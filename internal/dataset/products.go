package dataset

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"pkg.jsn.cam/cdcgen/internal/csvout"
	"pkg.jsn.cam/cdcgen/internal/manifest"
	"pkg.jsn.cam/cdcgen/internal/synth"
)

const (
	productInitialCount = 25
	productDelta1New    = 5
	productDelta2New    = 4
)

var (
	productDelta1Mutations = []int{2, 8, 15, 22}
	productDelta2Mutations = []int{1, 5, 12, 26, 28, 30}
)

// ProductsScenario drives the non-timestamped scenario: products with no
// last-modified column, so downstream CDC must detect changes by content.
type ProductsScenario struct {
	rand *rand.Rand
	dir  string
	snap *Snapshot[*Product]
}

// NewProductsScenario creates the scenario writing into dir, drawing
// from r.
func NewProductsScenario(r *rand.Rand, dir string) *ProductsScenario {
	return &ProductsScenario{
		rand: r,
		dir:  dir,
		snap: NewSnapshot[*Product](),
	}
}

var productFiles = []string{
	"products_no_ts_initial.csv",
	"products_no_ts_delta1.csv",
	"products_no_ts_delta2.csv",
}

// Run executes all three generations in order and returns one FileStat
// per file written.
func (s *ProductsScenario) Run() ([]manifest.FileStat, error) {
	steps := []func() (manifest.FileStat, error){
		s.initial,
		s.delta1,
		s.delta2,
	}

	stats := make([]manifest.FileStat, 0, len(steps))
	for i, step := range steps {
		fmt.Printf("\n[%d/%d] Generating %s\n", i+1, len(steps), productFiles[i])
		stat, err := step()
		if err != nil {
			return stats, err
		}
		fmt.Printf("   Created: %s (%d records: %d new, %d modified, %s)\n",
			stat.Name, stat.Records, stat.NewRecords, stat.ModifiedRecords,
			humanize.Bytes(uint64(stat.Bytes)))
		stats = append(stats, stat)
	}

	fmt.Printf("\nScenario B complete. Total products in final state: %d\n", s.snap.Len())
	return stats, nil
}

// initial inserts products 1..25 and writes the full snapshot.
func (s *ProductsScenario) initial() (manifest.FileStat, error) {
	for id := 1; id <= productInitialCount; id++ {
		s.snap.Insert(id, NewProduct(s.rand, id))
	}

	return s.write(productFiles[0], s.snap.Records(), productInitialCount, 0)
}

// delta1 inserts products 26..30 and reprices/restocks the delta1
// mutation targets: price rescaled by a uniform factor in [0.8,1.3),
// stock redrawn.
func (s *ProductsScenario) delta1() (manifest.FileStat, error) {
	rows := make([]*Product, 0, productDelta1New+len(productDelta1Mutations))

	nextID := productInitialCount + 1
	for id := nextID; id < nextID+productDelta1New; id++ {
		rec := NewProduct(s.rand, id)
		s.snap.Insert(id, rec)
		rows = append(rows, rec)
	}

	for _, id := range productDelta1Mutations {
		rec := s.snap.Get(id)
		rec.Price = synth.RoundCents(rec.Price * synth.Factor(s.rand, 0.8, 1.3))
		rec.Stock = synth.StockQuantity(s.rand)
		rows = append(rows, rec)
	}

	return s.write(productFiles[1], rows, productDelta1New, len(productDelta1Mutations))
}

// delta2 inserts products 31..34 and touches the delta2 mutation targets:
// price rescaled by a uniform factor in [0.9,1.2), stock redrawn, active
// flag redrawn with even odds.
func (s *ProductsScenario) delta2() (manifest.FileStat, error) {
	rows := make([]*Product, 0, productDelta2New+len(productDelta2Mutations))

	nextID := productInitialCount + productDelta1New + 1
	for id := nextID; id < nextID+productDelta2New; id++ {
		rec := NewProduct(s.rand, id)
		s.snap.Insert(id, rec)
		rows = append(rows, rec)
	}

	for _, id := range productDelta2Mutations {
		rec := s.snap.Get(id)
		rec.Price = synth.RoundCents(rec.Price * synth.Factor(s.rand, 0.9, 1.2))
		rec.Stock = synth.StockQuantity(s.rand)
		rec.Active = synth.ActiveFlagEven(s.rand)
		rows = append(rows, rec)
	}

	return s.write(productFiles[2], rows, productDelta2New, len(productDelta2Mutations))
}

func (s *ProductsScenario) write(name string, rows []*Product, added, modified int) (manifest.FileStat, error) {
	path := filepath.Join(s.dir, name)
	n, err := csvout.WriteRecords(path, rows)
	if err != nil {
		return manifest.FileStat{}, err
	}

	return manifest.FileStat{
		Name:            name,
		Path:            path,
		Records:         len(rows),
		NewRecords:      added,
		ModifiedRecords: modified,
		Bytes:           n,
	}, nil
}
