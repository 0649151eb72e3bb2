package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_ListKeepsInsertionOrderAcrossKeys(t *testing.T) {
	ix := NewIndex[string]()
	ix.Add(Key{UserID: 1, BookID: "b"}, "first")
	ix.Add(Key{UserID: 2, BookID: "a"}, "other user")
	ix.Add(Key{UserID: 1, BookID: "a"}, "second")
	ix.Add(Key{UserID: 1, BookID: "b"}, "third")

	assert.Equal(t, []string{"first", "second", "third"}, ix.List(1))
	assert.Equal(t, []string{"other user"}, ix.List(2))
	assert.NotNil(t, ix.List(42))
	assert.Empty(t, ix.List(42))
	assert.Equal(t, 4, ix.Len())
}

func TestIndex_DuplicatesAreKept(t *testing.T) {
	ix := NewIndex[int]()
	k := Key{UserID: 1, BookID: "x"}
	ix.Add(k, 1)
	ix.Add(k, 2)

	assert.Equal(t, []int{1, 2}, ix.Get(k))
}

func TestIndex_UpdateTouchesOnlyMatchingKey(t *testing.T) {
	ix := NewIndex[int]()
	ix.Add(Key{UserID: 1, BookID: "x"}, 1)
	ix.Add(Key{UserID: 1, BookID: "x"}, 1)
	ix.Add(Key{UserID: 1, BookID: "y"}, 1)
	ix.Add(Key{UserID: 2, BookID: "x"}, 1)

	n := ix.Update(Key{UserID: 1, BookID: "x"}, func(int) int { return 7 })
	require.Equal(t, 2, n)

	assert.Equal(t, []int{7, 7, 1}, ix.List(1))
	assert.Equal(t, []int{1}, ix.List(2))
	assert.Zero(t, ix.Update(Key{UserID: 3, BookID: "x"}, func(int) int { return 9 }))
}

func TestIndex_DeleteRemovesOnlyMatchingKey(t *testing.T) {
	ix := NewIndex[string]()
	ix.Add(Key{UserID: 1, BookID: "x"}, "x1")
	ix.Add(Key{UserID: 1, BookID: "y"}, "y1")
	ix.Add(Key{UserID: 1, BookID: "x"}, "x2")
	ix.Add(Key{UserID: 2, BookID: "x"}, "x-other")

	assert.Equal(t, 2, ix.Delete(Key{UserID: 1, BookID: "x"}))
	assert.Equal(t, []string{"y1"}, ix.List(1))
	assert.Equal(t, []string{"x-other"}, ix.List(2))

	assert.Equal(t, 1, ix.Delete(Key{UserID: 1, BookID: "y"}))
	assert.Empty(t, ix.List(1))
	assert.Zero(t, ix.Delete(Key{UserID: 1, BookID: "y"}))
}

func TestBook_FlattenServerFieldsWin(t *testing.T) {
	b := Book{"id": "b1", "title": "Dune", "userId": 99}

	raw, err := b.Flatten(map[string]any{"userId": int64(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"b1","title":"Dune","userId":1}`, string(raw))

	back, err := Unflatten(raw, "userId")
	require.NoError(t, err)
	assert.Equal(t, "b1", back.ID())
	assert.NotContains(t, back, "userId")
}

func TestBook_IDRequiresString(t *testing.T) {
	assert.Equal(t, "", Book{"id": 12}.ID())
	assert.Equal(t, "", Book{}.ID())
	assert.Equal(t, "abc", Book{"id": "abc"}.ID())
}
