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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/expensetracker/internal/auth"
	"github.com/mmynk/expensetracker/internal/config"
	"github.com/mmynk/expensetracker/internal/middleware"
	"github.com/mmynk/expensetracker/internal/service"
	"github.com/mmynk/expensetracker/internal/storage"
	"github.com/mmynk/expensetracker/internal/storage/sqlite"
	"github.com/mmynk/expensetracker/pkg/api/apiconnect"
	"github.com/mmynk/expensetracker/pkg/logging"
)

// The server only validates tokens; lifetimes are chosen by `ledgerctl token`.
const tokenDuration = 0

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, store); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// run serves until ctx is cancelled, then shuts down within cfg.ShutdownTimeout.
func run(ctx context.Context, cfg *config.Config, store storage.Store) error {
	metrics := middleware.NewMetrics()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, store, metrics),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Connect server starting", "address", cfg.Addr, "auth", cfg.AuthEnabled())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newHandler mounts the Connect services, /metrics and /healthz behind the
// logging and CORS middleware, wrapped with h2c for HTTP/2 without TLS.
func newHandler(cfg *config.Config, store storage.Store, metrics *middleware.Metrics) http.Handler {
	interceptors := []connect.Interceptor{
		middleware.LoggingInterceptor(slog.Default()),
		metrics.Interceptor(),
	}
	if cfg.AuthEnabled() {
		// Innermost, so rejected calls are still logged and counted.
		interceptors = append(interceptors, middleware.RequireAuth(auth.NewJWTManager(cfg.AuthSecret, tokenDuration)))
	}
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(apiconnect.NewParticipantServiceHandler(service.NewParticipantService(store), opts))
	mux.Handle(apiconnect.NewCategoryServiceHandler(service.NewCategoryService(store), opts))
	mux.Handle(apiconnect.NewExpenseServiceHandler(service.NewExpenseService(store), opts))
	mux.Handle(apiconnect.NewReportServiceHandler(service.NewReportService(store, metrics), opts))

	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{Registry: metrics.Registry}))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	handler := loggingMiddleware(middleware.CORS(cfg.CORSOrigins, mux))
	return h2c.NewHandler(handler, &http2.Server{})
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
			"user_agent", r.UserAgent(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
