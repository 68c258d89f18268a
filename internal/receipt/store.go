package receipt

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when no record exists for a given id.
var ErrNotFound = errors.New("receipt not found")

// Store defines the interface for receipt record persistence
type Store interface {
	// SaveRecord stores a record. Records are write-once; saving an id
	// that already exists is an error.
	SaveRecord(record *Record) error

	// GetRecord retrieves a record by id, returning ErrNotFound on a miss
	GetRecord(id string) (*Record, error)
}

// MemoryStore implements the Store interface with an in-process map.
// Records live for the lifetime of the process. A single RWMutex
// serializes writers against concurrent readers.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Record),
	}
}

// SaveRecord stores a record, rejecting duplicate ids
func (s *MemoryStore) SaveRecord(record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[record.ID]; ok {
		return fmt.Errorf("record already exists: %s", record.ID)
	}
	s.records[record.ID] = record
	return nil
}

// GetRecord retrieves a record by id
func (s *MemoryStore) GetRecord(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return record, nil
}
