package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"edd-calculator/internal/adapters/auth/remote"
	pg "edd-calculator/internal/adapters/storage/postgres"
	"edd-calculator/internal/platform/config"
	"edd-calculator/internal/platform/logger"
	"edd-calculator/internal/ports/auth"
	"edd-calculator/internal/router"
)

const shutdownTimeout = 10 * time.Second

// Run arma dependencias según cfg y sirve HTTP hasta que ctx se cancele.
func Run(ctx context.Context, cfg config.Config, log logger.Logger) error {
	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer opened.Close()

		if err := pg.EnsureSchema(ctx, opened); err != nil {
			return err
		}
		db = opened
		log.Info("history storage: postgres", nil)
	} else {
		log.Info("history storage: memory", nil)
	}

	var verifier auth.Verifier
	if cfg.AuthVerifyURL != "" {
		v, err := remote.NewVerifier(remote.Options{VerifyURL: cfg.AuthVerifyURL})
		if err != nil {
			return fmt.Errorf("auth verifier: %w", err)
		}
		verifier = v
	} else {
		log.Warn("no AUTH_VERIFY_URL, dev mode: X-Debug-User-ID is trusted", nil)
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			AuthVerifier: verifier,
			Logger:       log,
			DB:           db,
			HistoryLimit: cfg.HistoryLimit,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
