package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"locket-admin/internal/adapter/backend"
	"locket-admin/internal/adapter/demo"
	"locket-admin/internal/adapter/http"
	"locket-admin/internal/adapter/memory"
	"locket-admin/internal/adapter/postgres"
	"locket-admin/internal/adapter/sqlite"
	"locket-admin/internal/adapter/usecase"
	"locket-admin/internal/config"
	"locket-admin/internal/core/port"
	"locket-admin/internal/db"
)

// sessionPruneInterval is how often expired sessions are removed from the
// session store.
const sessionPruneInterval = 10 * time.Minute

// expiredSessionPruner is implemented by both session stores.
type expiredSessionPruner interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// main is the entry point of the admin console. It loads configuration,
// opens the stores the configuration asks for, wires the backend client
// into per-session use cases and starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables and .env.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.NeedsPostgres() {
		if cfg.Psql.RunMigrations {
			if err = db.MigratePostgres(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("postgres migrations applied")
		}
		pool, err = db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
	}

	var store interface {
		port.SessionStore
		expiredSessionPruner
	}
	switch cfg.Session.Store {
	case "postgres":
		store = postgres.NewSessionRepository(pool)
	default:
		store = memory.NewSessionStore()
	}

	client := backend.NewClient(cfg.Backend, logger)

	var demoBackend *demo.Backend
	if cfg.Demo.Enabled {
		repo, closeRepo, err := openDemoRepository(cfg, pool)
		if err != nil {
			logger.Error("demo store error", slog.Any("error", err))
			return
		}
		defer closeRepo()
		if cfg.Demo.Seed {
			if err = db.Seed(ctx, repo, demo.NewID, time.Now()); err != nil {
				logger.Error("demo seed error", slog.Any("error", err))
				return
			}
		}
		demoBackend = demo.NewBackend(repo, logger.With(slog.String("component", "demo")))
		logger.Warn("demo mode enabled: ads are served from the local demo store", slog.String("driver", cfg.Demo.Driver))
	}

	backends := func(guard port.SessionGuard) port.Backends {
		c := client.Bind(guard)
		b := port.Backends{Ads: c, Admin: c}
		if cfg.Backend.UploadEnabled {
			b.Uploader = c
		}
		if demoBackend != nil {
			b.Ads = demoBackend
		}
		return b
	}

	nav := httpadapter.NewNavigator(logger)
	sessions := usecase.NewSessionUseCase(store, backends, nav, cfg.Session.TTL, logger)

	var opts []httpadapter.Option
	if demoBackend != nil {
		opts = append(opts, httpadapter.WithDemo(demoBackend))
	}
	handler := httpadapter.NewHandler(sessions, nav, cfg.Session, logger, opts...)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go pruneSessions(ctx, store, logger)

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("backend", cfg.Backend.BaseURL.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openDemoRepository opens the demo ad store selected by DEMO_DRIVER. The
// returned function releases it.
func openDemoRepository(cfg config.Config, pool *pgxpool.Pool) (port.AdRepository, func(), error) {
	if cfg.Demo.Driver == "postgres" {
		return postgres.NewAdRepository(pool), func() {}, nil
	}

	if err := db.MigrateSQLite(cfg.Demo.SQLitePath); err != nil {
		return nil, nil, fmt.Errorf("migrate %s: %w", cfg.Demo.SQLitePath, err)
	}
	conn, err := db.OpenSQLite(cfg.Demo.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	return sqlite.NewAdRepository(conn), func() { closeDB(conn) }, nil
}

func closeDB(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		slog.Error("close demo store", slog.Any("error", err))
	}
}

func pruneSessions(ctx context.Context, store expiredSessionPruner, logger *slog.Logger) {
	ticker := time.NewTicker(sessionPruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := store.DeleteExpired(ctx, now)
			if err != nil {
				logger.Warn("session prune failed", slog.Any("error", err))
				continue
			}
			if n > 0 {
				logger.Debug("expired sessions removed", slog.Int64("count", n))
			}
		}
	}
}
