package storage

import (
	"context"
	"sync"

	"github.com/vanshika/addressbook/internal/book"
)

// MemoryStore is a deterministic in-memory implementation of the Store
// interface used for unit testing the command layer and the REPL wiring
// without touching the filesystem.
type MemoryStore struct {
	mu        sync.Mutex
	snapshot  *Snapshot
	saveCalls []Snapshot
	loadErr   error
	saveErr   error
}

// NewMemoryStore instantiates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// WithSnapshot seeds the store so the next Load returns the given snapshot.
func (m *MemoryStore) WithSnapshot(snap Snapshot) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = &snap
	return m
}

// WithLoadError forces Load to return the supplied error.
func (m *MemoryStore) WithLoadError(err error) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
	return m
}

// WithSaveError forces Save to return the supplied error.
func (m *MemoryStore) WithSaveError(err error) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
	return m
}

// Load decodes the seeded snapshot, or returns an empty book.
func (m *MemoryStore) Load(context.Context) (*book.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.snapshot == nil {
		return book.New(), nil
	}
	return Decode(*m.snapshot)
}

// Save captures the book state as the current snapshot and records the call.
func (m *MemoryStore) Save(_ context.Context, b *book.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	snap := Encode(b)
	m.snapshot = &snap
	m.saveCalls = append(m.saveCalls, snap)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close(context.Context) error {
	return nil
}

// SaveCalls returns a snapshot of every Save invocation in order.
func (m *MemoryStore) SaveCalls() []Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Snapshot(nil), m.saveCalls...)
}
