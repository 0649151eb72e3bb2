package profile

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

func (s *PostgresStore) Get(ctx context.Context, userID int64) (Profile, bool, error) {
	var p Profile
	err := db.WithTimeout(ctx, db.QueryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT user_id, full_name, address, phone, email
			FROM profiles
			WHERE user_id = $1
		`, userID).Scan(&p.UserID, &p.FullName, &p.Address, &p.Phone, &p.Email)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, false, nil
	}
	if err != nil {
		return Profile{}, false, err
	}
	return p, true, nil
}
