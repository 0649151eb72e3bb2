package cart

import (
	"context"
	"sync"

	"Literae/internal/book"
)

type MemStore struct {
	mu sync.RWMutex
	ix *book.Index[Item]
}

func NewMemStore() *MemStore {
	return &MemStore{ix: book.NewIndex[Item]()}
}

func (s *MemStore) Ping(context.Context) error { return nil }

func (s *MemStore) List(_ context.Context, userID int64) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ix.List(userID), nil
}

func (s *MemStore) Add(_ context.Context, it Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ix.Add(it.Key(), it)
	return nil
}

func (s *MemStore) SetQuantity(_ context.Context, k book.Key, qty int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ix.Update(k, func(it Item) Item {
		it.Quantity = qty
		return it
	}), nil
}

func (s *MemStore) Remove(_ context.Context, k book.Key) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ix.Delete(k), nil
}
