package main

import (
    "context"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"

    "nikkeitracker/internal/config"
    "nikkeitracker/internal/history"
    "nikkeitracker/pkg/logger"
)

// Read-only API over the history document written by cmd/update.
// The server never mutates the store.
func main() {
    cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
    log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
    if err != nil {
        log.Fatal().Err(err).Msg("config")
    }

    store := history.NewStore(cfg.Store.DataFile, log)
    loader := newHistoryLoader(store, 30*time.Second)

    r := chi.NewRouter()
    r.Use(middleware.Recoverer)
    r.Use(jsonHeaders)
    r.Get("/healthz", handleHealthz)
    r.Get("/api/history", loader.handleHistory)
    r.Get("/api/latest", loader.handleLatest)

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           r,
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      20 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    go func() {
        log.Info().Str("port", cfg.Server.Port).Str("data", store.Path()).Msg("server listening")
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatal().Err(err).Msg("server")
        }
    }()

    // graceful shutdown
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = srv.Shutdown(shutdownCtx)
}

func jsonHeaders(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json; charset=utf-8")
        // the dashboard is served from a different origin
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
        if r.Method == http.MethodOptions {
            w.WriteHeader(http.StatusNoContent)
            return
        }
        next.ServeHTTP(w, r)
    })
}
