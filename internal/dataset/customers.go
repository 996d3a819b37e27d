package dataset

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"pkg.jsn.cam/cdcgen/internal/csvout"
	"pkg.jsn.cam/cdcgen/internal/manifest"
	"pkg.jsn.cam/cdcgen/internal/synth"
)

// customerBase is the timeline origin for the timestamped scenario.
// Initial records land within an hour of it, delta generations two and
// four hours later.
var customerBase = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

const (
	customerInitialCount = 20
	customerDelta1New    = 5
	customerDelta2New    = 3
)

// Mutation targets per delta generation, written to the delta file in
// exactly this order after the new records.
var (
	customerDelta1Mutations = []int{3, 7, 15}
	customerDelta2Mutations = []int{1, 10, 21, 25}
)

// CustomersScenario drives the timestamped scenario: customers with a
// last_updated_ts column, three generations, three files.
type CustomersScenario struct {
	rand *rand.Rand
	dir  string
	snap *Snapshot[*Customer]
}

// NewCustomersScenario creates the scenario writing into dir, drawing
// from r.
func NewCustomersScenario(r *rand.Rand, dir string) *CustomersScenario {
	return &CustomersScenario{
		rand: r,
		dir:  dir,
		snap: NewSnapshot[*Customer](),
	}
}

// Run executes all three generations in order and returns one FileStat
// per file written.
func (s *CustomersScenario) Run() ([]manifest.FileStat, error) {
	steps := []func() (manifest.FileStat, error){
		s.initial,
		s.delta1,
		s.delta2,
	}

	stats := make([]manifest.FileStat, 0, len(steps))
	for i, step := range steps {
		fmt.Printf("\n[%d/%d] Generating %s\n", i+1, len(steps), customerFiles[i])
		stat, err := step()
		if err != nil {
			return stats, err
		}
		fmt.Printf("   Created: %s (%d records: %d new, %d modified, %s)\n",
			stat.Name, stat.Records, stat.NewRecords, stat.ModifiedRecords,
			humanize.Bytes(uint64(stat.Bytes)))
		stats = append(stats, stat)
	}

	fmt.Printf("\nScenario A complete. Total customers in final state: %d\n", s.snap.Len())
	return stats, nil
}

var customerFiles = []string{
	"customers_with_ts_initial.csv",
	"customers_with_ts_delta1.csv",
	"customers_with_ts_delta2.csv",
}

// initial inserts customers 1..20 timestamped within an hour of the base
// time and writes the full snapshot.
func (s *CustomersScenario) initial() (manifest.FileStat, error) {
	for id := 1; id <= customerInitialCount; id++ {
		ts := customerBase.Add(synth.MinutesWithin(s.rand, 60))
		s.snap.Insert(id, NewCustomer(s.rand, id, ts))
	}

	return s.write(customerFiles[0], s.snap.Records(), customerInitialCount, 0)
}

// delta1 inserts customers 21..25 and bumps the credit limit of the
// delta1 mutation targets by 20%, refreshing their timestamps.
func (s *CustomersScenario) delta1() (manifest.FileStat, error) {
	window := customerBase.Add(2 * time.Hour)
	rows := make([]*Customer, 0, customerDelta1New+len(customerDelta1Mutations))

	nextID := customerInitialCount + 1
	for id := nextID; id < nextID+customerDelta1New; id++ {
		ts := window.Add(synth.MinutesWithin(s.rand, 30))
		rec := NewCustomer(s.rand, id, ts)
		s.snap.Insert(id, rec)
		rows = append(rows, rec)
	}

	for _, id := range customerDelta1Mutations {
		ts := window.Add(synth.MinutesWithin(s.rand, 30))
		rec := s.snap.Get(id)
		rec.CreditLimit = synth.RoundCents(rec.CreditLimit * 1.2)
		rec.LastUpdated = synth.FormatTimestamp(ts)
		rows = append(rows, rec)
	}

	return s.write(customerFiles[1], rows, customerDelta1New, len(customerDelta1Mutations))
}

// delta2 inserts customers 26..28 and relocates the delta2 mutation
// targets: new city and phone, refreshed timestamp. The state column is
// left alone, so a relocated customer may end up city/state inconsistent;
// dirty-ish data is part of what the fixtures demonstrate.
func (s *CustomersScenario) delta2() (manifest.FileStat, error) {
	window := customerBase.Add(4 * time.Hour)
	rows := make([]*Customer, 0, customerDelta2New+len(customerDelta2Mutations))

	nextID := customerInitialCount + customerDelta1New + 1
	for id := nextID; id < nextID+customerDelta2New; id++ {
		ts := window.Add(synth.MinutesWithin(s.rand, 30))
		rec := NewCustomer(s.rand, id, ts)
		s.snap.Insert(id, rec)
		rows = append(rows, rec)
	}

	for _, id := range customerDelta2Mutations {
		ts := window.Add(synth.MinutesWithin(s.rand, 30))
		rec := s.snap.Get(id)
		rec.City = synth.CityOnly(s.rand)
		rec.Phone = synth.Phone(s.rand)
		rec.LastUpdated = synth.FormatTimestamp(ts)
		rows = append(rows, rec)
	}

	return s.write(customerFiles[2], rows, customerDelta2New, len(customerDelta2Mutations))
}

func (s *CustomersScenario) write(name string, rows []*Customer, added, modified int) (manifest.FileStat, error) {
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
