package contact

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage. Create persists the
// lead and returns the assigned identifier; implementations report failures
// through *StoreError so callers can surface the right taxonomy code.
type Repository interface {
	Create(ctx context.Context, lead *Lead) (string, error)
}

// InMemoryRepository stores leads in memory. Used in development when no
// database is provisioned, and in tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		leads: make(map[string]*Lead),
	}
}

// Create stores a copy of the lead under a fresh UUID.
func (r *InMemoryRepository) Create(ctx context.Context, lead *Lead) (string, error) {
	id := uuid.New().String()

	stored := *lead
	stored.ID = id

	r.mu.Lock()
	r.leads[id] = &stored
	r.mu.Unlock()

	return id, nil
}

// GetByID retrieves a stored lead by ID, or nil when absent.
func (r *InMemoryRepository) GetByID(id string) *Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.leads[id]
}

// Count returns the number of stored leads.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads)
}
