package journal

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

const defaultBucket = "activity"

// Store wraps BoltDB and keeps the task activity journal keyed by owner and time.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

var _ repository.ActivityRepository = (*Store)(nil)

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = defaultBucket
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Append records one activity entry.
func (s *Store) Append(_ context.Context, activity domain.Activity) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if activity.OwnerID == "" {
		return domain.ErrInvalidPayload
	}
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.At.IsZero() {
		activity.At = time.Now()
	}

	payload, err := sonic.Marshal(activity)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(buildKey(activity), payload)
	})
}

// ListByOwner walks the owner's keys backwards so the newest entries come first.
func (s *Store) ListByOwner(_ context.Context, ownerID string, limit int) ([]domain.Activity, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	prefix := ownerPrefix(ownerID)
	upper := append([]byte(ownerID), 0x01)

	entries := make([]domain.Activity, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()

		k, v := c.Seek(upper)
		if k == nil {
			k, v = c.Last()
		} else {
			k, v = c.Prev()
		}
		for ; k != nil && bytes.HasPrefix(k, prefix) && len(entries) < limit; k, v = c.Prev() {
			var entry domain.Activity
			if err := sonic.Unmarshal(v, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}

// Prune removes entries recorded before olderThan.
func (s *Store) Prune(_ context.Context, olderThan time.Time) (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}

	var removed int
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		var stale [][]byte
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var entry domain.Activity
			if err := sonic.Unmarshal(v, &entry); err != nil || entry.At.Before(olderThan) {
				stale = append(stale, append([]byte(nil), k...))
			}
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return removed, err
}

// Size returns the number of journal entries.
func (s *Store) Size() (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ownerPrefix(ownerID string) []byte {
	return append([]byte(ownerID), 0x00)
}

func buildKey(a domain.Activity) []byte {
	return append(ownerPrefix(a.OwnerID), fmt.Sprintf("%020d_%s", a.At.UnixNano(), a.ID)...)
}
