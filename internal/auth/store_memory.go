package auth

import (
	"context"
	"sync"
)

type MemStore struct {
	mu         sync.RWMutex
	byUsername map[string]User
}

func NewMemStore(users ...User) *MemStore {
	s := &MemStore{byUsername: make(map[string]User, len(users))}
	for _, u := range users {
		s.byUsername[u.Username] = u
	}
	return s
}

func (s *MemStore) Verify(_ context.Context, username, password string) (User, error) {
	s.mu.RLock()
	u, ok := s.byUsername[username]
	s.mu.RUnlock()

	if !ok {
		return User{}, ErrUserNotFound
	}
	if u.Password != password {
		return User{}, ErrWrongPassword
	}
	return u, nil
}

func (s *MemStore) Ping(context.Context) error { return nil }
