package cart

import (
	"context"

	"Literae/internal/book"
)

const DefaultQuantity = 1

// Item is one cart line. Like bookmarks, lines for the same book are not
// merged; a quantity update applies to all of them.
type Item struct {
	EntryID  string
	UserID   int64
	Quantity int
	Book     book.Book
}

// MarshalJSON renders {userId, quantity, ...bookFields}.
func (it Item) MarshalJSON() ([]byte, error) {
	return it.Book.Flatten(map[string]any{
		"userId":   it.UserID,
		"quantity": it.Quantity,
	})
}

func (it Item) Key() book.Key {
	return book.Key{UserID: it.UserID, BookID: it.Book.ID()}
}

type Store interface {
	List(ctx context.Context, userID int64) ([]Item, error)
	Add(ctx context.Context, it Item) error
	// SetQuantity overwrites the quantity of every line under k. Zero matches
	// is not an error.
	SetQuantity(ctx context.Context, k book.Key, qty int) (int, error)
	Remove(ctx context.Context, k book.Key) (int, error)
	Ping(ctx context.Context) error
}
