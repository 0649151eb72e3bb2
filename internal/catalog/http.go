package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"Literae/pkg/kit"
)

type Provider interface {
	Search(ctx context.Context, p SearchParams) ([]byte, error)
	Volume(ctx context.Context, id string) ([]byte, error)
}

type Server struct {
	Catalog Provider
	Log     *zap.Logger
}

// Routes is mounted under /books.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.search)
	r.Get("/{id}", s.volume)
	return r
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	p := ParseSearchParams(r.URL.Query())

	body, err := s.Catalog.Search(r.Context(), p)
	if err != nil {
		s.writeUpstreamError(w, r, err, "Failed to fetch from Google Books API")
		return
	}

	s.Log.Debug("catalog search",
		zap.String("q", p.SearchTerm()),
		zap.Int("start_index", p.StartIndex),
		zap.Int("max_results", p.MaxResults),
		zap.Int64("total_items", gjson.GetBytes(body, "totalItems").Int()),
	)
	kit.WriteRawJSON(w, http.StatusOK, body)
}

func (s *Server) volume(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, err := s.Catalog.Volume(r.Context(), id)
	if err != nil {
		s.writeUpstreamError(w, r, err, "Failed to fetch book detail")
		return
	}
	kit.WriteRawJSON(w, http.StatusOK, body)
}

// A provider status is relayed as-is; anything else is a 500.
func (s *Server) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, statusMsg string) {
	var se *StatusError
	if errors.As(err, &se) {
		s.Log.Warn("catalog upstream status", zap.String("endpoint", se.Endpoint), zap.Int("status", se.Status))
		kit.WriteError(w, r, se.Status, statusMsg, nil)
		return
	}

	s.Log.Error("catalog request failed", zap.Error(err), zap.String("path", r.URL.Path))
	kit.WriteError(w, r, http.StatusInternalServerError, "Server error", nil)
}
