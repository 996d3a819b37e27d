package manifest

import (
	"encoding/json"
	"fmt"
	"log"

	bolt "go.etcd.io/bbolt"
)

var (
	runsBucket = []byte("runs")
	metaBucket = []byte("meta")

	lastRunKey = []byte("last_run_id")
)

// Store persists runs in a bbolt ledger.
type Store struct {
	db *bolt.DB
}

// OpenStore opens (or creates) the ledger at dbPath.
func OpenStore(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open run ledger: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{runsBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create ledger buckets: %w", err)
	}

	log.Printf("[MANIFEST] Run ledger opened at %s", dbPath)

	return &Store{db: db}, nil
}

// SaveRun persists a run keyed by its id and marks it as the last run.
func (s *Store) SaveRun(run *Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", run.ID, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(runsBucket).Put([]byte(run.ID), data); err != nil {
			return err
		}
		return tx.Bucket(metaBucket).Put(lastRunKey, []byte(run.ID))
	})
}

// LoadRuns loads every recorded run keyed by run id.
func (s *Store) LoadRuns() (map[string]*Run, error) {
	runs := make(map[string]*Run)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				log.Printf("[MANIFEST] Warning: Failed to decode run %s: %v", k, err)
				return nil // Skip corrupted runs
			}
			runs[run.ID] = &run
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return runs, nil
}

// LastRunID returns the id of the most recently saved run, or "" when the
// ledger is empty.
func (s *Store) LastRunID() (string, error) {
	var id string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(metaBucket).Get(lastRunKey); v != nil {
			id = string(v)
		}
		return nil
	})
	return id, err
}

// Close closes the ledger.
func (s *Store) Close() error {
	return s.db.Close()
}
