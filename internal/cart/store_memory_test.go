package cart

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Literae/internal/book"
)

func TestMemStore_ConcurrentAdds(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Add(ctx, Item{UserID: 1, Quantity: 1, Book: book.Book{"id": fmt.Sprintf("b%d", i)}})
		}()
	}
	wg.Wait()

	items, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, n)
}

func TestMemStore_SetQuantityNoFloor(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, Item{UserID: 1, Quantity: 1, Book: book.Book{"id": "b1"}}))

	n, err := s.SetQuantity(ctx, book.Key{UserID: 1, BookID: "b1"}, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, -3, items[0].Quantity)
}
