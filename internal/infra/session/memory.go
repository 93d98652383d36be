package session

import (
	"context"
	"sync"
	"time"

	"mesa-booking/internal/domain/booking"
	"mesa-booking/internal/pkg/clock"
	"mesa-booking/internal/pkg/errs"
)

type memoryEntry struct {
	state     booking.State
	expiresAt time.Time
}

// MemoryStore is a process-local Store for single instance deployments and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (m *MemoryStore) Load(_ context.Context, id string) (booking.State, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok || !m.clock.Now().Before(entry.expiresAt) {
		return booking.State{}, errs.Mark(errs.New("session "+id+" not found"), errs.ErrSessionNotFound)
	}
	return entry.state, nil
}

func (m *MemoryStore) Save(_ context.Context, id string, state booking.State) error {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[id] = memoryEntry{state: state, expiresAt: now.Add(m.ttl)}
	m.sweep(now)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// sweep drops expired entries. Caller holds the write lock.
func (m *MemoryStore) sweep(now time.Time) {
	for id, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, id)
		}
	}
}
