package dataset

import "fmt"

// Snapshot is the in-memory state of one scenario's dataset: an
// insertion-ordered id→record mapping owned by a single evolver. It is
// mutated in place across generations and discarded when the scenario
// finishes; the CSV files are the only durable output.
type Snapshot[R any] struct {
	ids     []int
	records map[int]R
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot[R any]() *Snapshot[R] {
	return &Snapshot[R]{records: make(map[int]R)}
}

// Insert adds a new record. Inserting an id twice is a programming
// defect, not a runtime condition, and panics.
func (s *Snapshot[R]) Insert(id int, rec R) {
	if _, exists := s.records[id]; exists {
		panic(fmt.Sprintf("snapshot: duplicate insert of id %d", id))
	}
	s.ids = append(s.ids, id)
	s.records[id] = rec
}

// Get returns the record for id. Mutation steps only ever reference ids
// inserted by an earlier generation, so a missing id panics.
func (s *Snapshot[R]) Get(id int) R {
	rec, exists := s.records[id]
	if !exists {
		panic(fmt.Sprintf("snapshot: no record with id %d", id))
	}
	return rec
}

// Len returns the number of records in the snapshot.
func (s *Snapshot[R]) Len() int {
	return len(s.records)
}

// Records returns all records in insertion order.
func (s *Snapshot[R]) Records() []R {
	out := make([]R, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.records[id])
	}
	return out
}
