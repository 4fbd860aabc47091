package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// config holds CLI settings. Environment variables (optionally loaded from a
// .env file) provide defaults; flags override them.
type config struct {
	Manifest     string `env:"FORMCONTENT_MANIFEST"`
	Data         string `env:"FORMCONTENT_DATA"`
	Errors       string `env:"FORMCONTENT_ERRORS"`
	Output       string `env:"FORMCONTENT_OUTPUT"`
	Title        string `env:"FORMCONTENT_TITLE,default=Questions"`
	Action       string `env:"FORMCONTENT_ACTION"`
	Theme        string `env:"FORMCONTENT_THEME"`
	ThemeVariant string `env:"FORMCONTENT_THEME_VARIANT"`
	Debug        bool   `env:"FORMCONTENT_DEBUG,default=false"`
	Interactive  bool
	Watch        bool
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

	flags := flag.NewFlagSet("formcontent-cli", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.Manifest, "manifest", cfg.Manifest, "question manifest file or directory (YAML/JSON)")
	flags.StringVar(&cfg.Data, "data", cfg.Data, "YAML/JSON file with previous answers keyed by question id")
	flags.StringVar(&cfg.Errors, "errors", cfg.Errors, "YAML/JSON file mapping question ids or paths to error messages")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "output file (stdout if empty)")
	flags.StringVar(&cfg.Title, "title", cfg.Title, "page title")
	flags.StringVar(&cfg.Action, "action", cfg.Action, "form action URL")
	flags.StringVar(&cfg.Theme, "theme", cfg.Theme, "go-theme manifest file (YAML/JSON)")
	flags.StringVar(&cfg.ThemeVariant, "variant", cfg.ThemeVariant, "theme variant")
	flags.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "answer questions in the terminal before rendering")
	flags.BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render when input files change")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	cfg.Manifest = strings.TrimSpace(cfg.Manifest)
	if cfg.Manifest == "" {
		return config{}, errors.New("a manifest is required (-manifest or FORMCONTENT_MANIFEST)")
	}
	if cfg.Interactive && cfg.Watch {
		return config{}, errors.New("-interactive and -watch cannot be combined")
	}
	return cfg, nil
}
