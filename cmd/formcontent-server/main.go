package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/render"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Stderr, ".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	manifest, err := content.LoadFile(cfg.Manifest)
	if err != nil {
		logger.Fatal("Failed to load manifest", zap.String("manifest", cfg.Manifest), zap.Error(err))
	}

	options := []render.Option{render.WithLogger(logger)}
	if cfg.Theme != "" {
		themeCfg, err := render.LoadThemeFile(cfg.Theme, cfg.ThemeVariant)
		if err != nil {
			logger.Fatal("Failed to load theme", zap.String("theme", cfg.Theme), zap.Error(err))
		}
		options = append(options, render.WithTheme(themeCfg))
	}
	renderer, err := render.New(options...)
	if err != nil {
		logger.Fatal("Failed to create renderer", zap.Error(err))
	}

	srv, err := newServer(manifest, renderer, logger)
	if err != nil {
		logger.Fatal("Failed to create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.routes(),
	}

	go func() {
		logger.Info("Starting listening request",
			zap.String("addr", cfg.Addr),
			zap.Int("questions", manifest.Len()),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Fail to start server with error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
