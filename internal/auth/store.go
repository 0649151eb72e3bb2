package auth

import (
	"context"
	"errors"
)

var (
	ErrUserNotFound  = errors.New("username not found")
	ErrWrongPassword = errors.New("wrong password")
)

// User is a demo account. Passwords are stored and compared as plain text.
type User struct {
	ID       int64
	Username string
	Password string
}

type UserStore interface {
	// Verify returns ErrUserNotFound or ErrWrongPassword so callers can tell
	// the two apart.
	Verify(ctx context.Context, username, password string) (User, error)
	Ping(ctx context.Context) error
}

// SeedUsers are the accounts every fresh store starts with.
func SeedUsers() []User {
	return []User{
		{ID: 1, Username: "alice", Password: "123"},
		{ID: 2, Username: "bob", Password: "123"},
	}
}
