package bookmark

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

// Routes is mounted under /bookmarks.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.add)
	r.Get("/{userId}", s.list)
	r.Delete("/{userId}/{bookId}", s.remove)
	return r
}

type addReq struct {
	UserID int64     `json:"userId" validate:"gt=0"`
	Book   book.Book `json:"book" validate:"required"`
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := kit.Int64Param(w, r, "userId")
	if !ok {
		return
	}

	items, err := s.Store.List(r.Context(), userID)
	if err != nil {
		s.Log.Error("list bookmarks failed", zap.Error(err), zap.Int64("user_id", userID))
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

	b := Bookmark{
		EntryID: uuid.NewString(),
		UserID:  req.UserID,
		Book:    req.Book,
	}
	if err := s.Store.Add(r.Context(), b); err != nil {
		s.Log.Error("add bookmark failed", zap.Error(err), zap.Int64("user_id", b.UserID))
		kit.WriteError(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}
	kit.WriteSuccess(w)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := kit.Int64Param(w, r, "userId")
	if !ok {
		return
	}
	k := book.Key{UserID: userID, BookID: chi.URLParam(r, "bookId")}

	n, err := s.Store.Remove(r.Context(), k)
	if err != nil {
		s.Log.Error("remove bookmark failed", zap.Error(err), zap.Int64("user_id", k.UserID), zap.String("book_id", k.BookID))
		kit.WriteError(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}
	s.Log.Debug("bookmarks removed", zap.Int64("user_id", k.UserID), zap.String("book_id", k.BookID), zap.Int("count", n))
	kit.WriteSuccess(w)
}
