package bookmark

import (
	"context"
	"sync"

	"Literae/internal/book"
)

type MemStore struct {
	mu sync.RWMutex
	ix *book.Index[Bookmark]
}

func NewMemStore() *MemStore {
	return &MemStore{ix: book.NewIndex[Bookmark]()}
}

func (s *MemStore) Ping(context.Context) error { return nil }

func (s *MemStore) List(_ context.Context, userID int64) ([]Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ix.List(userID), nil
}

func (s *MemStore) Add(_ context.Context, b Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ix.Add(b.Key(), b)
	return nil
}

func (s *MemStore) Remove(_ context.Context, k book.Key) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ix.Delete(k), nil
}
