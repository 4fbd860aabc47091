package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type config struct {
	Addr          string        `env:"FORMCONTENT_ADDR,default=:8080" validate:"required"`
	Manifest      string        `env:"FORMCONTENT_MANIFEST" validate:"required"`
	Theme         string        `env:"FORMCONTENT_THEME"`
	ThemeVariant  string        `env:"FORMCONTENT_THEME_VARIANT"`
	ShutdownGrace time.Duration `env:"FORMCONTENT_SHUTDOWN_GRACE,default=5s" validate:"gte=0"`
	Debug         bool          `env:"FORMCONTENT_DEBUG,default=false"`
}

func loadConfig(args []string, stderr io.Writer, envFiles ...string) (config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	var cfg config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return config{}, fmt.Errorf("decode env: %w", err)
	}

	flags := flag.NewFlagSet("formcontent-server", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flags.StringVar(&cfg.Manifest, "manifest", cfg.Manifest, "question manifest file or directory (YAML/JSON)")
	flags.StringVar(&cfg.Theme, "theme", cfg.Theme, "go-theme manifest file (YAML/JSON)")
	flags.StringVar(&cfg.ThemeVariant, "variant", cfg.ThemeVariant, "theme variant")
	flags.DurationVar(&cfg.ShutdownGrace, "shutdown-grace", cfg.ShutdownGrace, "graceful shutdown timeout")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
