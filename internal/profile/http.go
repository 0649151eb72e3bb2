package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Literae/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes is mounted under /profile.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/{userId}", s.get)
	return r
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := kit.Int64Param(w, r, "userId")
	if !ok {
		return
	}

	p, found, err := s.Store.Get(r.Context(), userID)
	if err != nil {
		s.Log.Error("get profile failed", zap.Error(err), zap.Int64("user_id", userID))
		kit.WriteError(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "profile not found", map[string]any{"userId": userID})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}
