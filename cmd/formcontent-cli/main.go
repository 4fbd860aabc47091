package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcontent/pkg/prompt"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := &generator{
		cfg:    cfg,
		logger: logger,
		asker:  prompt.NewAsker(prompt.NewSurveyDriver(os.Stderr), prompt.WithLogger(logger)),
		stdout: os.Stdout,
	}

	if err := gen.generate(ctx); err != nil {
		logger.Fatal("Failed to render questions", zap.Error(err))
	}
	if cfg.Watch {
		logger.Info("watching for changes", zap.String("manifest", cfg.Manifest))
		if err := gen.watch(ctx); err != nil {
			logger.Fatal("Watch stopped", zap.Error(err))
		}
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
