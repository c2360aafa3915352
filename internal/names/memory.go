// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pdiddy/sourcenet/pkg/types"
)

// MemoryStore is a PersonStore held in memory, used for dry runs and
// tests. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	people []types.PersonRecord
}

// NewMemoryStore returns a store holding people.
func NewMemoryStore(people ...types.PersonRecord) *MemoryStore {
	s := &MemoryStore{}
	for _, p := range people {
		s.Add(p)
	}
	return s
}

// Add stores p, assigning an id when it has none, and returns the stored
// record.
func (s *MemoryStore) Add(p types.PersonRecord) types.PersonRecord {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.FullName == "" {
		p.FullName = p.ParsedName.FullName()
	}
	s.mu.Lock()
	s.people = append(s.people, p)
	s.mu.Unlock()
	return p
}

// FindPeople returns the records matching q in insertion order.
func (s *MemoryStore) FindPeople(_ context.Context, q PersonQuery) ([]types.PersonRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.PersonRecord
	for _, p := range s.people {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Len returns the number of stored people.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.people)
}
