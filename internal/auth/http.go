package auth

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"Literae/pkg/kit"
)

type Server struct {
	Log   *zap.Logger
	Store UserStore
}

func (s *Server) LoginHandler() http.HandlerFunc { return s.handleLogin }

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if !kit.DecodeJSON(w, r, &req) {
		return
	}

	u, err := s.Store.Verify(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWrongPassword):
		kit.WriteError(w, r, http.StatusUnauthorized, err.Error(), nil)
		return
	case err != nil:
		s.Log.Error("verify user failed", zap.Error(err), zap.String("username", req.Username))
		kit.WriteError(w, r, http.StatusInternalServerError, "Server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{ID: u.ID, Username: u.Username})
}
