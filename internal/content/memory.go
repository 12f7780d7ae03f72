package content

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by unit tests and as a fallback when
// no database is configured.
type MemoryStore struct {
	desc  Descriptor
	mu    sync.RWMutex
	store map[string]Record
}

func NewMemoryStore(desc Descriptor) *MemoryStore {
	return &MemoryStore{desc: desc, store: make(map[string]Record)}
}

func (m *MemoryStore) List(ctx context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, len(m.store))
	for _, r := range m.store {
		out = append(out, r.Clone())
	}
	field, asc := m.desc.SortField, m.desc.SortAsc
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return less(out[i], out[j], field)
		}
		return less(out[j], out[i], field)
	})
	return out, nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.store[id]; ok {
		return r.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Insert(ctx context.Context, fields map[string]any) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := Record(fields).Clone()
	StripImmutable(r)
	now := time.Now().UTC()
	r["id"] = primitive.NewObjectID().Hex()
	r["createdAt"] = now
	r["updatedAt"] = now
	m.store[r.ID()] = r
	return r.Clone(), nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, patch map[string]any) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := Record(patch).Clone()
	StripImmutable(p)
	for k, v := range p {
		r[k] = v
	}
	r["updatedAt"] = time.Now().UTC()
	return r.Clone(), nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

func (m *MemoryStore) ClearActive(ctx context.Context, exceptID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.store {
		if id == exceptID {
			continue
		}
		r["isActive"] = false
	}
	return nil
}
