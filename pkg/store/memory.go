package store

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
)

// MemoryStore keeps projects in memory, in insertion order.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]*drawing.Project
	order    []string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[string]*drawing.Project)}
}

func (s *MemoryStore) List(ctx context.Context) ([]*drawing.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*drawing.Project, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.projects[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*drawing.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, notFound(id)
	}
	return p.Clone(), nil
}

func (s *MemoryStore) Create(ctx context.Context, p *drawing.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; ok {
		return exists(p.ID)
	}
	s.projects[p.ID] = p.Clone()
	s.order = append(s.order, p.ID)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, p *drawing.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; !ok {
		return notFound(p.ID)
	}
	s.projects[p.ID] = p.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return notFound(id)
	}
	delete(s.projects, id)
	s.order = slices.DeleteFunc(s.order, func(x string) bool { return x == id })
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
