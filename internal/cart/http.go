package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"Literae/internal/book"
	"Literae/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes is mounted under /cart.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.add)
	r.Get("/{userId}", s.list)
	r.Put("/{userId}/{bookId}", s.setQuantity)
	r.Delete("/{userId}/{bookId}", s.remove)
	return r
}

type addReq struct {
	UserID   int64     `json:"userId" validate:"gt=0"`
	Book     book.Book `json:"book" validate:"required"`
	Quantity int       `json:"quantity"`
}

// Quantity bounds are left to the client.
type setQuantityReq struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := kit.Int64Param(w, r, "userId")
	if !ok {
		return
	}

	items, err := s.Store.List(r.Context(), userID)
	if err != nil {
		s.Log.Error("list cart failed", zap.Error(err), zap.Int64("user_id", userID))
		kit.WriteError(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if !kit.DecodeJSON(w, r, &req) {
		return
	}
	if req.Book.ID() == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "book.id required", nil)
		return
	}

	it := Item{
		EntryID:  uuid.NewString(),
		UserID:   req.UserID,
		Quantity: req.Quantity,
		Book:     req.Book,
	}
	if it.Quantity == 0 {
		it.Quantity = DefaultQuantity
	}

	if err := s.Store.Add(r.Context(), it); err != nil {
		s.Log.Error("add cart item failed", zap.Error(err), zap.Int64("user_id", it.UserID))
		kit.WriteError(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}
	kit.WriteSuccess(w)
}

func (s *Server) setQuantity(w http.ResponseWriter, r *http.Request) {
	k, ok := itemKey(w, r)
	if !ok {
		return
	}

	var req setQuantityReq
	if !kit.DecodeJSON(w, r, &req) {
		return
	}

	n, err := s.Store.SetQuantity(r.Context(), k, *req.Quantity)
	if err != nil {
		s.Log.Error("update cart quantity failed", zap.Error(err), zap.Int64("user_id", k.UserID), zap.String("book_id", k.BookID))
		kit.WriteError(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}
	s.Log.Debug("cart quantity updated", zap.Int64("user_id", k.UserID), zap.String("book_id", k.BookID), zap.Int("count", n))
	kit.WriteSuccess(w)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	k, ok := itemKey(w, r)
	if !ok {
		return
	}

	n, err := s.Store.Remove(r.Context(), k)
	if err != nil {
		s.Log.Error("remove cart item failed", zap.Error(err), zap.Int64("user_id", k.UserID), zap.String("book_id", k.BookID))
		kit.WriteError(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}
	s.Log.Debug("cart items removed", zap.Int64("user_id", k.UserID), zap.String("book_id", k.BookID), zap.Int("count", n))
	kit.WriteSuccess(w)
}

func itemKey(w http.ResponseWriter, r *http.Request) (book.Key, bool) {
	userID, ok := kit.Int64Param(w, r, "userId")
	if !ok {
		return book.Key{}, false
	}
	return book.Key{UserID: userID, BookID: chi.URLParam(r, "bookId")}, true
}
