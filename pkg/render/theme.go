package render

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// LoadThemeFile reads a go-theme manifest from a YAML or JSON file and
// resolves it for variant.
func LoadThemeFile(file, variant string) (*theme.RendererConfig, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("render: read theme: %w", err)
	}
	var manifest theme.Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("render: parse theme %s: %w", filepath.Base(file), err)
	}
	return ThemeConfig(&manifest, variant)
}

// ThemeConfig resolves a go-theme manifest and optional variant into the
// renderer configuration consumed by WithTheme. Variant tokens, templates and
// asset files override the base manifest. Every token is also exposed as a CSS
// custom property named "--<token>".
func ThemeConfig(manifest *theme.Manifest, variant string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, fmt.Errorf("render: theme manifest is required")
	}

	tokens := mergeStrings(nil, manifest.Tokens)
	partials := mergeStrings(nil, manifest.Templates)
	files := mergeStrings(nil, manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	variant = strings.TrimSpace(variant)
	if variant != "" {
		override, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("render: theme %q has no variant %q", manifest.Name, variant)
		}
		tokens = mergeStrings(tokens, override.Tokens)
		partials = mergeStrings(partials, override.Templates)
		files = mergeStrings(files, override.Assets.Files)
		if override.Assets.Prefix != "" {
			prefix = override.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
				return file
			}
			return path.Join(prefix, file)
		},
	}, nil
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}
