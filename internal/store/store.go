package store

import (
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/aminegames/gamekiosk/internal/domain"
)

// Persisted document keys.
const (
	KeyGamesData    = "games_data"
	KeySalesHistory = "sales_history"
	KeySettings     = "settings"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Storage is the local key-value port the engines persist documents through.
// Load reports ok=false when no document exists under key.
type Storage interface {
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
	Delete(key string) error
	Close() error
}

// PutJSON marshals v and saves it under key.
func PutJSON(s Storage, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", key)
	}
	return s.Save(key, data)
}

// GetJSON loads and unmarshals the document under key. A missing document
// returns ok=false with no error; a parse failure returns
// domain.ErrMalformedPersistedData so the caller can fall back to defaults.
func GetJSON(s Storage, key string, v interface{}) (bool, error) {
	data, ok, err := s.Load(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(domain.ErrMalformedPersistedData, "key %s: %v", key, err)
	}
	return true, nil
}

const boltBucket = "kiosk"

// BoltStorage persists documents in a single-file bbolt database.
type BoltStorage struct {
	db *bolt.DB
}

// NewBoltStorage opens (or creates) the store file at path.
func NewBoltStorage(path string) (*BoltStorage, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open storage")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init storage bucket")
	}
	return &BoltStorage{db: db}, nil
}

func (s *BoltStorage) Load(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "load %s", key)
	}
	return data, data != nil, nil
}

func (s *BoltStorage) Save(key string, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), data)
	})
	return errors.Wrapf(err, "save %s", key)
}

func (s *BoltStorage) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Delete([]byte(key))
	})
	return errors.Wrapf(err, "delete %s", key)
}

func (s *BoltStorage) Close() error {
	return s.db.Close()
}

// MemoryStorage is the in-memory Storage used by tests.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryStorage) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStorage) Close() error { return nil }
