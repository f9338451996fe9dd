// Package store archives analysis runs in the bolt database so past runs can
// be listed and compared. Archiving is opt-in; a run that is not archived
// leaves no state behind.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/jh-206/Tree-Volume/internal/database"
	"github.com/jh-206/Tree-Volume/internal/report"
)

const (
	runKeys = "run:keys:"
	prefix  = "run:"
)

// Run is one archived analysis.
type Run struct {
	ID        uuid.UUID              `json:"id"`
	CreatedAt time.Time              `json:"createdAt"`
	DataPath  string                 `json:"dataPath"`
	Rows      int                    `json:"rows"`
	A         float64                `json:"a"`
	Alpha     float64                `json:"alpha"`
	Resample  report.ResampleSummary `json:"resample"`
	NullDist  report.NullSummary     `json:"nullDist"`
}

type FilterFn func(run Run) bool

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

type DB struct {
	sDB *database.DB
}

func (db *DB) Keys() ([]string, error) {
	var bucketKeys []string
	err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(runKeys))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			bucketKeys = append(bucketKeys, string(k))
		}
		return nil
	})
	return bucketKeys, err
}

func (db *DB) Store(_ context.Context, run Run) error {
	var b *bolt.Bucket
	bytes, err := json.Marshal(run)
	if err != nil {
		return err
	}
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b, err = tx.CreateBucketIfNotExists([]byte(prefix))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		if err := b.Put([]byte(run.ID.String()), bytes); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}
		b, err = tx.CreateBucketIfNotExists([]byte(runKeys))
		if err != nil {
			return fmt.Errorf("unable create run keys bucket: %w", err)
		}
		if err := b.Put([]byte(run.ID.String()), []byte{0x0}); err != nil {
			return fmt.Errorf("unable put to run keys bucket: %w", err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

func (db *DB) FetchAll(_ context.Context, filter FilterFn) ([]Run, error) {
	var runs []Run
	err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefix))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("unmarshal run: %w", err)
			}
			if filter == nil || filter(run) {
				runs = append(runs, run)
			}
			return nil
		})
	})
	return runs, err
}
