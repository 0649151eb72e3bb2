// Package api assembles the bookstore HTTP surface: middleware, metrics,
// health probes and the auth, profile, catalog, bookmark and cart routes.
package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Literae/internal/auth"
	"Literae/internal/bookmark"
	"Literae/internal/cart"
	"Literae/internal/catalog"
	"Literae/internal/profile"
	"Literae/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	AllowedOrigins []string
	// Login attempts per IP per minute; 0 disables the limiter.
	LoginRateLimit int
}

type Deps struct {
	Users     auth.UserStore
	Profiles  profile.Store
	Bookmarks bookmark.Store
	Carts     cart.Store
	Catalog   catalog.Provider
}

const (
	readyTimeout = 2 * time.Second
	loginWindow  = time.Minute
)

type pinger interface {
	Ping(ctx context.Context) error
}

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	log := httpDeps.Log

	r := chi.NewRouter()
	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/", root)
	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(log, map[string]pinger{
		"users":     deps.Users,
		"profiles":  deps.Profiles,
		"bookmarks": deps.Bookmarks,
		"carts":     deps.Carts,
	}))

	authSrv := &auth.Server{Log: log, Store: deps.Users}
	login := r.With()
	if httpDeps.LoginRateLimit > 0 {
		login = r.With(kit.NewIPRateLimiter(httpDeps.LoginRateLimit, loginWindow).Middleware)
	}
	login.Post("/login", authSrv.LoginHandler())

	r.Mount("/profile", (&profile.Server{Store: deps.Profiles, Log: log}).Routes())
	r.Mount("/books", (&catalog.Server{Catalog: deps.Catalog, Log: log}).Routes())
	r.Mount("/bookmarks", (&bookmark.Server{Store: deps.Bookmarks, Log: log}).Routes())
	r.Mount("/cart", (&cart.Server{Store: deps.Carts, Log: log}).Routes())

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
	r.Use(kit.CORS(deps.AllowedOrigins))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "API is running")
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(log *zap.Logger, stores map[string]pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for name, s := range stores {
			if err := s.Ping(ctx); err != nil {
				log.Warn("readyz failed", zap.String("store", name), zap.Error(err))
				kit.WriteError(w, r, http.StatusServiceUnavailable, name+" not ready", nil)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
