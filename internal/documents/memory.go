package documents

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository used by unit tests. It keeps
// the Mongo semantics: unique id and name, id-or-name resolution with the
// id field checked first.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]*Document
	byName map[string]*Document
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[string]*Document),
		byName: make(map[string]*Document),
	}
}

func (r *MemoryRepository) Insert(_ context.Context, d *Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[d.ID]; ok {
		return ErrDuplicate
	}
	if _, ok := r.byName[d.Name]; ok {
		return ErrDuplicate
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	cp := *d
	r.byID[cp.ID] = &cp
	r.byName[cp.Name] = &cp
	return nil
}

func (r *MemoryRepository) FindByIDOrName(_ context.Context, identifier string) (*Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.byID[identifier]; ok {
		cp := *d
		return &cp, nil
	}
	if d, ok := r.byName[identifier]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) FindByName(_ context.Context, name string) (*Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.byName[name]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) UpdateContentByID(_ context.Context, id, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	d.Content = content
	d.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byName, d.Name)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Listing, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, Listing{ID: d.ID, Name: d.Name})
	}
	return out, nil
}
