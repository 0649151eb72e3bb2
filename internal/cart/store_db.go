package cart

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

func (s *PostgresStore) List(ctx context.Context, userID int64) ([]Item, error) {
	out := make([]Item, 0, 8)

	err := db.WithTimeout(ctx, db.QueryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, user_id, quantity, book
			FROM cart_items
			WHERE user_id = $1
			ORDER BY seq ASC
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				it  Item
				raw []byte
			)
			if err := rows.Scan(&it.EntryID, &it.UserID, &it.Quantity, &raw); err != nil {
				return err
			}
			if err := json.Unmarshal(raw, &it.Book); err != nil {
				return err
			}
			out = append(out, it)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Add(ctx context.Context, it Item) error {
	raw, err := json.Marshal(it.Book)
	if err != nil {
		return err
	}

	return db.WithTimeout(ctx, db.QueryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO cart_items (id, user_id, book_id, quantity, book)
			VALUES ($1, $2, $3, $4, $5)
		`, it.EntryID, it.UserID, it.Book.ID(), it.Quantity, raw)
		return err
	})
}

func (s *PostgresStore) SetQuantity(ctx context.Context, k book.Key, qty int) (int, error) {
	return s.exec(ctx, `
		UPDATE cart_items
		SET quantity = $3
		WHERE user_id = $1 AND book_id = $2
	`, k.UserID, k.BookID, qty)
}

func (s *PostgresStore) Remove(ctx context.Context, k book.Key) (int, error) {
	return s.exec(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1 AND book_id = $2
	`, k.UserID, k.BookID)
}

func (s *PostgresStore) exec(ctx context.Context, query string, args ...any) (int, error) {
	var n int64
	err := db.WithTimeout(ctx, db.QueryTimeout, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return int(n), err
}
