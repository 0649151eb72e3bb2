// Package book holds the book payload shared by bookmarks and carts and the
// in-memory index both stores are built on.
package book

import (
	"encoding/json"
	"maps"
)

// Book is the catalog payload a client attaches to a bookmark or cart entry.
// Fields are passed through as-is; only "id" is interpreted.
type Book map[string]any

func (b Book) ID() string {
	id, _ := b["id"].(string)
	return id
}

// Flatten merges extra on top of the book fields, so server-owned fields such
// as userId and quantity win over anything the client put into the book.
func (b Book) Flatten(extra map[string]any) ([]byte, error) {
	out := make(map[string]any, len(b)+len(extra))
	maps.Copy(out, b)
	maps.Copy(out, extra)
	return json.Marshal(out)
}

// Unflatten splits a flattened entry back into its book fields, dropping the
// given server-owned keys.
func Unflatten(raw []byte, drop ...string) (Book, error) {
	var b Book
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, err
	}
	for _, k := range drop {
		delete(b, k)
	}
	return b, nil
}

// Key addresses every entry a user holds for one book.
type Key struct {
	UserID int64
	BookID string
}
