package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"Literae/internal/api"
	"Literae/internal/auth"
	"Literae/internal/bookmark"
	"Literae/internal/cart"
	"Literae/internal/catalog"
	"Literae/internal/config"
	"Literae/internal/db"
	"Literae/internal/profile"
	"Literae/pkg/kit"
)

const service = "bookstore"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.GoogleBooksKey == "" {
		log.Warn("GOOGLE_BOOKS_API_KEY is not set, catalog requests go out unauthenticated")
	}

	ctx := context.Background()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps, closeStores, err := buildStores(ctx, cfg, log)
	if err != nil {
		log.Fatal("init stores failed", zap.Error(err))
	}
	defer closeStores()

	deps.Catalog = catalog.NewClient(catalog.ClientConfig{
		BaseURL: cfg.GoogleBooksURL,
		APIKey:  cfg.GoogleBooksKey,
		Timeout: cfg.UpstreamTimeout,
		Metrics: catalog.NewUpstreamMetrics(reg),
		Log:     log,
	})

	h := api.NewHandler(deps, api.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		AllowedOrigins: cfg.AllowedOrigins,
		LoginRateLimit: cfg.LoginRateLimit,
	})

	if err := kit.RunHTTPServer(ctx, cfg.Addr(), h, log); err != nil {
		log.Error("http server stopped", zap.Error(err))
	}
}

// buildStores keeps everything in memory unless a database DSN is configured.
func buildStores(ctx context.Context, cfg config.Config, log *zap.Logger) (api.Deps, func(), error) {
	if cfg.DatabaseDSN == "" {
		log.Info("using in-memory stores")
		return api.Deps{
			Users:     auth.NewMemStore(auth.SeedUsers()...),
			Profiles:  profile.NewMemStore(profile.SeedProfiles()...),
			Bookmarks: bookmark.NewMemStore(),
			Carts:     cart.NewMemStore(),
		}, func() {}, nil
	}

	sqlDB, err := db.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return api.Deps{}, nil, err
	}
	if err := db.Migrate(sqlDB, log); err != nil {
		_ = sqlDB.Close()
		return api.Deps{}, nil, err
	}

	log.Info("using postgres stores")
	return api.Deps{
		Users:     auth.NewPostgresStore(sqlDB),
		Profiles:  profile.NewPostgresStore(sqlDB),
		Bookmarks: bookmark.NewPostgresStore(sqlDB),
		Carts:     cart.NewPostgresStore(sqlDB),
	}, func() { _ = sqlDB.Close() }, nil
}
