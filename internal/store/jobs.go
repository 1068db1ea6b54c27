// Package store keeps the uploaded job list the matcher reads. The default
// store is in-memory and append-only; a PostgreSQL-backed store is available
// when a database URL is configured.
package store

import (
	"context"
	"sync"

	"github.com/Kieseatic/Ats/internal/types"
)

// JobStore is the job list contract shared by the in-memory and PostgreSQL
// implementations. Add never replaces existing records.
type JobStore interface {
	Add(ctx context.Context, jobs []types.JobRecord) error
	List(ctx context.Context) ([]types.JobRecord, error)
	Get(ctx context.Context, id string) (*types.JobRecord, error)
	Count(ctx context.Context) (int, error)
}

// MemoryStore is the default append-only in-memory job list. Safe for
// concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs []types.JobRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends jobs to the list.
func (s *MemoryStore) Add(_ context.Context, jobs []types.JobRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, jobs...)
	return nil
}

// List returns a copy of the job list so callers can iterate without holding
// the lock.
func (s *MemoryStore) List(_ context.Context) ([]types.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.JobRecord, len(s.jobs))
	copy(out, s.jobs)
	return out, nil
}

// Get returns the job with the given ID, or nil when absent.
func (s *MemoryStore) Get(_ context.Context, id string) (*types.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			job := s.jobs[i]
			return &job, nil
		}
	}
	return nil, nil
}

// Count returns the number of stored jobs.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs), nil
}
