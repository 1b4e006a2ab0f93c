package storagemock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/infrastructure/storage"
)

var _ storage.ObjectStore = (*Store)(nil)

// Store is an in-memory ObjectStore. PutErr and DeleteErr force failures.
type Store struct {
	mu      sync.Mutex
	objects map[string]storage.Object

	PutErr    error
	DeleteErr error
	Deleted   []string
}

func New() *Store { return &Store{objects: map[string]storage.Object{}} }

func (s *Store) Put(_ context.Context, key, contentType string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	if s.objects == nil {
		s.objects = map[string]storage.Object{}
	}
	s.objects[key] = storage.Object{Body: append([]byte(nil), body...), ContentType: contentType}
	return nil
}

func (s *Store) Get(_ context.Context, key string) (*storage.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s: %w", key, apperr.ErrNotFound)
	}
	return &o, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, key)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.objects, key)
	return nil
}

// Keys lists stored keys in order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.objects))
	for k := range s.objects {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
