package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/leuth/internal/auth"
	"github.com/mmynk/leuth/internal/config"
	"github.com/mmynk/leuth/internal/metrics"
	"github.com/mmynk/leuth/internal/middleware"
	"github.com/mmynk/leuth/internal/service"
	"github.com/mmynk/leuth/internal/state"
	"github.com/mmynk/leuth/internal/storage"
	"github.com/mmynk/leuth/internal/storage/file"
	"github.com/mmynk/leuth/internal/storage/memory"
	"github.com/mmynk/leuth/internal/storage/sqlite"
	"github.com/mmynk/leuth/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWith(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := openStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer db.Close()
	slog.Info("Storage initialized", "driver", cfg.StorageDriver)

	m := metrics.New()
	store := state.New(
		state.WithStorage(db),
		state.WithSaveHook(m.ObserveSave),
		state.WithLogger(slog.Default()),
	)
	if err := store.Load(ctx); err != nil {
		return err
	}

	// Outermost first: metrics see every call, logging sees the token identity.
	stateInterceptors := []connect.Interceptor{middleware.MetricsInterceptor(m)}

	mux := http.NewServeMux()

	if cfg.AuthEnabled() {
		authenticator, err := auth.NewPassphraseAuthenticator(cfg.Passphrase)
		if err != nil {
			return err
		}
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		authSvc := service.NewAuthService(authenticator, jwtManager, func() string { return store.Me().ID }, slog.Default())

		authPath, authHandler := service.NewAuthServiceHandler(authSvc, connect.WithInterceptors(
			middleware.MetricsInterceptor(m),
			middleware.LoggingInterceptor(),
		))
		mux.Handle(authPath, authHandler)

		stateInterceptors = append(stateInterceptors, middleware.RequireAuth(jwtManager))
		slog.Info("Token auth enabled", "token_ttl", cfg.TokenTTL)
	} else {
		slog.Warn("LEUTH_PASSPHRASE not set, state API is unauthenticated")
	}

	stateInterceptors = append(stateInterceptors, middleware.LoggingInterceptor())

	statePath, stateHandler := service.NewStateServiceHandler(
		service.NewStateService(store),
		connect.WithInterceptors(stateInterceptors...),
	)
	mux.Handle(statePath, stateHandler)
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(loggedHandler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStorage(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverFile:
		return file.Open(cfg.SnapshotPath)
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return sqlite.New(cfg.DBPath)
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
