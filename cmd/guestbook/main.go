package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/lehrcode/guestbook/internal/config"
	"github.com/lehrcode/guestbook/internal/guestbook"
	"github.com/lehrcode/guestbook/internal/migrations"
	"github.com/lehrcode/guestbook/internal/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("initializing database connection")
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	if err := migrations.Up(ctx, db); err != nil {
		return err
	}

	repo := guestbook.NewPostgresRepository(db, cfg.EntriesPerPage)
	svc := guestbook.NewService(repo, cfg.EntriesPerPage)
	api := web.NewAPIHandler(svc)

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", web.NewListHandler(svc))
	mux.Handle("POST /{$}", web.NewFormHandler(svc))
	mux.HandleFunc("GET /api/v1/entries", api.List)
	mux.HandleFunc("POST /api/v1/entries", api.Create)
	mux.Handle("GET /static/", web.StaticHandler())

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: web.RequestLogger(logger, mux),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting web server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Stop accepting new requests and drain in-flight ones before the
	// deferred pool close.
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
