package auth

import (
	"context"
	"database/sql"
	"errors"

	"Literae/internal/db"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(sqlDB *sql.DB) *PostgresStore {
	return &PostgresStore{db: sqlDB}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return db.WithTimeout(ctx, db.PingTimeout, s.db.PingContext)
}

func (s *PostgresStore) Verify(ctx context.Context, username, password string) (User, error) {
	var u User
	err := db.WithTimeout(ctx, db.QueryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, username, password
			FROM users
			WHERE username = $1
		`, username).Scan(&u.ID, &u.Username, &u.Password)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}

	if u.Password != password {
		return User{}, ErrWrongPassword
	}
	return u, nil
}
