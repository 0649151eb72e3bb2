package bookmark

import (
	"context"

	"Literae/internal/book"
)

// Bookmark is one saved book. Entries are not deduplicated: bookmarking the
// same book twice yields two entries under the same key.
type Bookmark struct {
	EntryID string
	UserID  int64
	Book    book.Book
}

// MarshalJSON renders {userId, ...bookFields}.
func (b Bookmark) MarshalJSON() ([]byte, error) {
	return b.Book.Flatten(map[string]any{"userId": b.UserID})
}

func (b Bookmark) Key() book.Key {
	return book.Key{UserID: b.UserID, BookID: b.Book.ID()}
}

type Store interface {
	List(ctx context.Context, userID int64) ([]Bookmark, error)
	Add(ctx context.Context, b Bookmark) error
	// Remove deletes every entry under k and reports how many went away.
	Remove(ctx context.Context, k book.Key) (int, error)
	Ping(ctx context.Context) error
}
