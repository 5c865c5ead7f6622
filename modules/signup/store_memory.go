package signup

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in process. Meant for local development and
// tests; nothing survives a restart.
type MemoryStore struct {
	mu   sync.Mutex
	docs []Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, doc)
	return nil
}

// Documents returns a copy of the stored documents in insertion order.
func (m *MemoryStore) Documents() []Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Document(nil), m.docs...)
}
