package book

import "sort"

type slot[T any] struct {
	seq uint64
	val T
}

// Index is an ordered multimap keyed by (user, book). Lookups by key are O(1),
// listings come back in insertion order and duplicate entries under one key
// are kept. It is not safe for concurrent use; stores wrap it in a mutex.
type Index[T any] struct {
	seq    uint64
	byKey  map[Key][]slot[T]
	byUser map[int64]map[string]struct{}
}

func NewIndex[T any]() *Index[T] {
	return &Index[T]{
		byKey:  make(map[Key][]slot[T]),
		byUser: make(map[int64]map[string]struct{}),
	}
}

func (ix *Index[T]) Add(k Key, v T) {
	ix.seq++
	ix.byKey[k] = append(ix.byKey[k], slot[T]{seq: ix.seq, val: v})

	books, ok := ix.byUser[k.UserID]
	if !ok {
		books = make(map[string]struct{})
		ix.byUser[k.UserID] = books
	}
	books[k.BookID] = struct{}{}
}

// Get returns the entries stored under k, oldest first.
func (ix *Index[T]) Get(k Key) []T {
	slots := ix.byKey[k]
	out := make([]T, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.val)
	}
	return out
}

// List returns every entry of userID in insertion order. The result is never nil.
func (ix *Index[T]) List(userID int64) []T {
	var slots []slot[T]
	for bookID := range ix.byUser[userID] {
		slots = append(slots, ix.byKey[Key{UserID: userID, BookID: bookID}]...)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].seq < slots[j].seq })

	out := make([]T, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.val)
	}
	return out
}

// Update applies fn to every entry under k in place and reports how many it touched.
func (ix *Index[T]) Update(k Key, fn func(T) T) int {
	slots := ix.byKey[k]
	for i := range slots {
		slots[i].val = fn(slots[i].val)
	}
	return len(slots)
}

// Delete drops every entry under k and reports how many were removed.
func (ix *Index[T]) Delete(k Key) int {
	n := len(ix.byKey[k])
	if n == 0 {
		return 0
	}

	delete(ix.byKey, k)
	books := ix.byUser[k.UserID]
	delete(books, k.BookID)
	if len(books) == 0 {
		delete(ix.byUser, k.UserID)
	}
	return n
}

func (ix *Index[T]) Len() int {
	n := 0
	for _, slots := range ix.byKey {
		n += len(slots)
	}
	return n
}
