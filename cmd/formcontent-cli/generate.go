package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/convert"
	"github.com/goliatone/go-formcontent/pkg/govuk"
	"github.com/goliatone/go-formcontent/pkg/prompt"
	"github.com/goliatone/go-formcontent/pkg/render"
)

type generator struct {
	cfg    config
	logger *zap.Logger
	asker  *prompt.Asker
	stdout io.Writer
}

// generate loads every input named by the config and writes one rendered page.
func (g *generator) generate(ctx context.Context) error {
	manifest, err := content.LoadFile(g.cfg.Manifest)
	if err != nil {
		return err
	}
	questions := manifest.Questions()

	data, err := readValues(g.cfg.Data)
	if err != nil {
		return fmt.Errorf("read data: %w", err)
	}
	data = convert.CoerceMap(data, content.CoercionRules(questions))

	if g.cfg.Interactive {
		data, err = g.asker.Ask(ctx, questions, data)
		if err != nil {
			return err
		}
	}

	payload, err := readErrorPayload(g.cfg.Errors)
	if err != nil {
		return fmt.Errorf("read errors: %w", err)
	}
	mapped := render.MapErrorPayload(questions, payload)

	options := []render.Option{render.WithLogger(g.logger)}
	if g.cfg.Theme != "" {
		themeCfg, err := render.LoadThemeFile(g.cfg.Theme, g.cfg.ThemeVariant)
		if err != nil {
			return err
		}
		options = append(options, render.WithTheme(themeCfg))
	}

	renderer, err := render.New(options...)
	if err != nil {
		return err
	}

	html, err := renderer.RenderPage(ctx, render.Page{
		Title:      g.cfg.Title,
		Action:     g.cfg.Action,
		Questions:  questions,
		Data:       data,
		Errors:     mapped.Questions,
		FormErrors: mapped.Form,
	})
	if err != nil {
		return err
	}

	if g.cfg.Output == "" {
		_, err = g.stdout.Write(html)
		return err
	}
	if err := os.WriteFile(g.cfg.Output, html, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	g.logger.Info("page written",
		zap.String("output", g.cfg.Output),
		zap.Int("questions", len(questions)),
	)
	return nil
}

// readValues decodes a YAML or JSON object. An empty path yields nil.
func readValues(path string) (govuk.Data, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return values, nil
}

// readErrorPayload decodes error files whose values are a single message or a
// list of messages.
func readErrorPayload(path string) (map[string][]string, error) {
	values, err := readValues(path)
	if err != nil || values == nil {
		return nil, err
	}
	payload := make(map[string][]string, len(values))
	for key, value := range values {
		switch typed := value.(type) {
		case string:
			payload[key] = []string{typed}
		case []any:
			for _, item := range typed {
				payload[key] = append(payload[key], fmt.Sprint(item))
			}
		default:
			payload[key] = []string{fmt.Sprint(typed)}
		}
	}
	return payload, nil
}
