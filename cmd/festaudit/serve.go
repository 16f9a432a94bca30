package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nurpe/festival-audit/internal/auth"
	"github.com/nurpe/festival-audit/internal/config"
	httphandler "github.com/nurpe/festival-audit/internal/http"
	"github.com/nurpe/festival-audit/internal/http/middleware"
	"github.com/nurpe/festival-audit/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web app",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Environment)

	app, err := newApp(cfg, log)
	if err != nil {
		return err
	}

	issuer := auth.NewIssuer(cfg.Session.Secret, cfg.Session.TTL)
	parser := auth.NewParser(cfg.Session.Secret)
	sessionMiddleware := middleware.Session(app, issuer, parser, middleware.CookieOptions{
		Name:   cfg.Session.CookieName,
		MaxAge: cfg.Session.TTL,
		Secure: cfg.Session.SecureCookie,
	}, log)

	handler := httphandler.NewHandler(app, log)
	router := httphandler.NewRouter(handler, sessionMiddleware, log, httphandler.RouterOptions{
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting festival audit service")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	return nil
}
