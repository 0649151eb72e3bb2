package bookmark

import (
	"context"
	"database/sql"
	"encoding/json"

	"Literae/internal/book"
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

func (s *PostgresStore) List(ctx context.Context, userID int64) ([]Bookmark, error) {
	out := make([]Bookmark, 0, 8)

	err := db.WithTimeout(ctx, db.QueryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, user_id, book
			FROM bookmarks
			WHERE user_id = $1
			ORDER BY seq ASC
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				b   Bookmark
				raw []byte
			)
			if err := rows.Scan(&b.EntryID, &b.UserID, &raw); err != nil {
				return err
			}
			if err := json.Unmarshal(raw, &b.Book); err != nil {
				return err
			}
			out = append(out, b)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Add(ctx context.Context, b Bookmark) error {
	raw, err := json.Marshal(b.Book)
	if err != nil {
		return err
	}

	return db.WithTimeout(ctx, db.QueryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO bookmarks (id, user_id, book_id, book)
			VALUES ($1, $2, $3, $4)
		`, b.EntryID, b.UserID, b.Book.ID(), raw)
		return err
	})
}

func (s *PostgresStore) Remove(ctx context.Context, k book.Key) (int, error) {
	var n int64
	err := db.WithTimeout(ctx, db.QueryTimeout, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx, `
			DELETE FROM bookmarks
			WHERE user_id = $1 AND book_id = $2
		`, k.UserID, k.BookID)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return int(n), err
}
