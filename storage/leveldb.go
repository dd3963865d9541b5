package storage

import (
	"fmt"

	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/leveldb"
	"github.com/anyswap/OpenChain-Wallet/log"
)

// LevelDBStore a store persisted in a leveldb database
type LevelDBStore struct {
	db *leveldb.Database
}

// OpenLevelDBStore opens or creates the database at path
func OpenLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.New(path, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open %v failed: %v", common.ErrStorage, path, err)
	}
	return &LevelDBStore{db: db}, nil
}

// NewLevelDBStore wraps an opened database
func NewLevelDBStore(db *leveldb.Database) *LevelDBStore {
	return &LevelDBStore{db: db}
}

// Get impl Store
func (s *LevelDBStore) Get(key string) (string, bool, error) {
	value, err := s.db.Get([]byte(key))
	if leveldb.IsNotFoundErr(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %v from %v failed: %v", common.ErrStorage, key, s.db.Path(), err)
	}
	return string(value), true, nil
}

// Set impl Store
func (s *LevelDBStore) Set(key, value string) error {
	if err := s.db.Put([]byte(key), []byte(value)); err != nil {
		return fmt.Errorf("%w: set %v in %v failed: %v", common.ErrStorage, key, s.db.Path(), err)
	}
	return nil
}

// Close closes the database
func (s *LevelDBStore) Close() error {
	log.Debug("close storage", "path", s.db.Path())
	return s.db.Close()
}
