package apikeys

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository used by unit tests. It
// enforces the same id/secret uniqueness the Mongo indexes do.
type MemoryRepository struct {
	mu       sync.RWMutex
	byID     map[string]*Key
	bySecret map[string]*Key
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:     make(map[string]*Key),
		bySecret: make(map[string]*Key),
	}
}

func (r *MemoryRepository) Insert(_ context.Context, k *Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[k.ID]; ok {
		return ErrDuplicate
	}
	if _, ok := r.bySecret[k.Secret]; ok {
		return ErrDuplicate
	}
	cp := *k
	r.byID[cp.ID] = &cp
	r.bySecret[cp.Secret] = &cp
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*Key, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if k, ok := r.byID[id]; ok {
		cp := *k
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) FindBySecret(_ context.Context, secret string) (*Key, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if k, ok := r.bySecret[secret]; ok {
		cp := *k
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	delete(r.byID, id)
	delete(r.bySecret, k.Secret)
	return true, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Key, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Key, 0, len(r.byID))
	for _, k := range r.byID {
		out = append(out, *k)
	}
	return out, nil
}
