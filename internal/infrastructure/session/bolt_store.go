// Package session keeps dashboard login sessions in a bbolt file so they survive restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"go.etcd.io/bbolt"
)

const bucketSessions = "sessions" // key: token digest -> Session JSON

type boltStore struct {
	db     *bbolt.DB
	logger logger.Logger
}

// BoltStore is a SessionStore that owns its database file
type BoltStore interface {
	accounts.SessionStore
	Close() error
}

// NewBoltStore opens or creates the session database at path
func NewBoltStore(path string, logger logger.Logger) (BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create session store directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSessions))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create sessions bucket: %w", err)
	}

	return &boltStore{db: db, logger: logger}, nil
}

func (s *boltStore) Save(ctx context.Context, session *accounts.Session) error {
	if session.TokenDigest == "" {
		return fmt.Errorf("session token digest cannot be empty")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketSessions)).Put([]byte(session.TokenDigest), data)
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *boltStore) Get(ctx context.Context, digest string) (*accounts.Session, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketSessions)).Get([]byte(digest)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if data == nil {
		return nil, accounts.ErrSessionExpired
	}

	var session accounts.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (s *boltStore) Delete(ctx context.Context, digest string) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketSessions)).Delete([]byte(digest))
	}); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *boltStore) Purge(ctx context.Context, now time.Time) (int, error) {
	purged := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSessions))

		var expired [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var session accounts.Session
			if err := json.Unmarshal(v, &session); err != nil || session.Expired(now) {
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range expired {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		purged = len(expired)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}

	if purged > 0 {
		s.logger.Info("Purged expired sessions: ", purged)
	}
	return purged, nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
