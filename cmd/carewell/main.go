// Package main is the entry point for the CareWell server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carewell/internal/cache"
	"carewell/internal/config"
	"carewell/internal/database"
	"carewell/internal/handlers"
	"carewell/internal/middleware"
	"carewell/internal/render"
	"carewell/internal/router"
	"carewell/internal/session"
	"carewell/internal/storage"
	"carewell/internal/store"
)

const (
	// formRateLimit caps public form submissions per client IP.
	formRateLimit = 5

	// formRateWindow is the sliding window for the form rate limit.
	formRateWindow = time.Minute
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	sessionStore := session.NewStore(valkeyClient)

	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Data stores.
	userStore := store.NewUserStore(db)
	serviceStore := store.NewServiceStore(db)
	blogStore := store.NewBlogPostStore(db)
	categoryStore := store.NewCategoryStore(db)
	specialtyStore := store.NewSpecialtyStore(db)
	spHeaderStore := store.NewSpecialtiesHeaderStore(db)
	heroStore := store.NewHeroStore(db)
	settingStore := store.NewSiteSettingStore(db)
	staffStore := store.NewStaffStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	submissionStore := store.NewSubmissionStore(db)
	mediaStore := store.NewMediaStore(db)

	// S3-compatible object storage is optional; without it the site runs
	// with media uploads disabled.
	var storageClient *storage.Client
	if cfg.HasStorage() {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3Bucket,
		)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// Full-page HTML cache in Valkey for the public site.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	adminHandlers := handlers.NewAdmin(handlers.AdminDeps{
		Renderer:      renderer,
		Services:      serviceStore,
		Posts:         blogStore,
		Categories:    categoryStore,
		Specialties:   specialtyStore,
		SpHeader:      spHeaderStore,
		Hero:          heroStore,
		Settings:      settingStore,
		Staff:         staffStore,
		Testimonials:  testimonialStore,
		Submissions:   submissionStore,
		Media:         mediaStore,
		Users:         userStore,
		StorageClient: storageClient,
		PageCache:     pageCache,
	})
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	publicHandlers := handlers.NewPublic(handlers.PublicDeps{
		Renderer:     renderer,
		Services:     serviceStore,
		Posts:        blogStore,
		Categories:   categoryStore,
		Specialties:  specialtyStore,
		SpHeader:     spHeaderStore,
		Hero:         heroStore,
		Settings:     settingStore,
		Staff:        staffStore,
		Testimonials: testimonialStore,
		Submissions:  submissionStore,
		PageCache:    pageCache,
	})

	formLimiter := middleware.NewRateLimiter(formRateLimit, formRateWindow)
	defer formLimiter.Stop()

	r := router.New(sessionStore, adminHandlers, authHandlers, publicHandlers, router.Options{
		SecureCookies: !cfg.IsDev(),
		FormLimiter:   formLimiter,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
