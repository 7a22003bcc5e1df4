// Package main is the entry point for the BrandForge API server.
// It loads configuration, connects to services, loads the template catalog,
// sets up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandforge/internal/archive"
	"brandforge/internal/brandgen"
	"brandforge/internal/cache"
	"brandforge/internal/catalog"
	"brandforge/internal/config"
	"brandforge/internal/database"
	"brandforge/internal/entitlement"
	"brandforge/internal/handlers"
	"brandforge/internal/models"
	"brandforge/internal/payment"
	"brandforge/internal/router"
	"brandforge/internal/selector"
	"brandforge/internal/session"
	"brandforge/internal/storage"
	"brandforge/internal/store"
	"brandforge/internal/workflow"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the catalog and demo account (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (sessions, entitlements, listing cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	sessionStore := session.NewStore(valkeyClient, !cfg.IsDev())

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	templateStore := store.NewTemplateStore(db)
	purchaseStore := store.NewPurchaseStore(db)

	// Load the template catalog: from the remote metadata endpoint when
	// configured, otherwise from Postgres. Development falls back to the
	// embedded dataset when both tiers fail to load.
	loader := &catalog.Loader{
		Free:          catalogSource(cfg, templateStore, models.TierFree),
		Premium:       catalogSource(cfg, templateStore, models.TierPremium),
		AllowFallback: cfg.IsDev(),
	}
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	cat, err := loader.Load(loadCtx)
	cancelLoad()
	if err != nil {
		slog.Error("failed to load template catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("template catalog loaded", "templates", cat.Len())

	// Connect to S3-compatible object storage. Optional: premium bundles
	// ship without extra assets when absent.
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3AssetBucket,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3AssetBucket)
	} else {
		slog.Warn("s3 storage not configured, premium bundle assets disabled")
	}

	// A nil *storage.Client must stay a nil interface inside the builder.
	var assetSource archive.AssetSource
	if storageClient != nil {
		assetSource = storageClient
	}
	builder, err := archive.NewBuilder(assetSource)
	if err != nil {
		slog.Error("failed to initialize bundle builder", "error", err)
		os.Exit(1)
	}

	// Listings cached by a previous process may not match the catalog just
	// loaded; start from a clean cache.
	catalogCache := cache.NewCatalogCache(valkeyClient, cache.DefaultCatalogTTL)
	catalogCache.InvalidateAll(context.Background())

	entitlements := entitlement.New(valkeyClient, cat)

	manager := &workflow.Manager{
		Catalog:      cat,
		Entitlements: entitlements,
		Processor:    payment.New(cfg.PaymentDelay),
		Purchases:    purchaseStore,
		Fetcher:      &workflow.Fetcher{},
		Builder:      builder,
	}

	api := &handlers.API{
		Catalog:      cat,
		Cache:        catalogCache,
		Picker:       selector.New(cat, nil),
		Generator:    brandgen.New(nil),
		Workflow:     manager,
		Entitlements: entitlements,
		Sessions:     sessionStore,
		Users:        userStore,
		Purchases:    purchaseStore,
		BaseURL:      cfg.BaseURL,
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, api)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate remote bundle fetches that retry with backoff.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// catalogSource picks the source for one tier: the remote metadata endpoint
// when CATALOG_URL is set, otherwise the seeded Postgres catalog.
func catalogSource(cfg *config.Config, templates *store.TemplateStore, tier models.Tier) catalog.Source {
	if cfg.CatalogURL != "" {
		return &catalog.HTTPSource{URL: cfg.CatalogURL, Tier: tier}
	}
	return &catalog.StoreSource{Store: templates, Tier: tier}
}
