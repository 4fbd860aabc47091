package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/prompt"
)

const testManifest = `questions:
  - id: serviceName
    type: text
    question: Service name
    hint: Use the public name
  - id: price
    type: pricing
    question: Price
    unit: "£"
    unit_position: before
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "FORMCONTENT_MANIFEST=from-dotenv.yml\nFORMCONTENT_TITLE=Dotenv title\n")
	t.Setenv("FORMCONTENT_OUTPUT", "out.html")
	t.Cleanup(func() {
		_ = os.Unsetenv("FORMCONTENT_MANIFEST")
		_ = os.Unsetenv("FORMCONTENT_TITLE")
	})

	cfg, err := loadConfig([]string{"-title", "Flag title", "-debug"}, io.Discard, envFile)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	want := config{
		Manifest: "from-dotenv.yml",
		Output:   "out.html",
		Title:    "Flag title",
		Debug:    true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Setenv("FORMCONTENT_MANIFEST", "")

	if _, err := loadConfig(nil, io.Discard, filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error without manifest")
	}
	if _, err := loadConfig([]string{"-manifest", "q.yml", "-interactive", "-watch"}, io.Discard); err == nil {
		t.Fatalf("expected error when combining -interactive and -watch")
	}
}

func TestGenerate_WritesPage(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "questions.yml", testManifest)
	data := writeFile(t, dir, "data.yml", "serviceName: Acme\nprice: \"£12.50\"\n")
	errs := writeFile(t, dir, "errors.yml", "/body/serviceName: Enter a shorter name\nform:\n  - Check your answers\n")

	var out bytes.Buffer
	gen := &generator{
		cfg: config{
			Manifest: manifest,
			Data:     data,
			Errors:   errs,
			Title:    "About the service",
		},
		logger: zap.NewNop(),
		stdout: &out,
	}
	if err := gen.generate(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := out.String()
	for _, fragment := range []string{
		"<title>About the service</title>",
		"<li>Check your answers</li>",
		`<a href="#input-serviceName">Enter a shorter name</a>`,
		`value="Acme"`,
		"Use the public name",
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func TestGenerate_OutputFile(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "questions.yml", testManifest)
	output := filepath.Join(dir, "page.html")

	gen := &generator{
		cfg:    config{Manifest: manifest, Output: output},
		logger: zap.NewNop(),
		stdout: io.Discard,
	}
	if err := gen.generate(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	raw, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(raw), `name="serviceName"`) {
		t.Fatalf("unexpected output:\n%s", raw)
	}
}

type scriptedDriver struct {
	answers map[string]string
}

func (d scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	return d.answers[cfg.Message], nil
}

func (d scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d scriptedDriver) TextArea(_ context.Context, cfg prompt.TextAreaConfig) (string, error) {
	return d.answers[cfg.Message], nil
}

func (d scriptedDriver) Info(context.Context, string) error { return nil }

func TestGenerate_Interactive(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "questions.yml", testManifest)

	var out bytes.Buffer
	gen := &generator{
		cfg:    config{Manifest: manifest, Interactive: true},
		logger: zap.NewNop(),
		asker:  prompt.NewAsker(scriptedDriver{answers: map[string]string{"Service name": "Typed"}}),
		stdout: &out,
	}
	if err := gen.generate(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out.String(), `value="Typed"`) {
		t.Fatalf("expected interactive answer in output:\n%s", out.String())
	}
}

func TestReadErrorPayload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "errors.json", `{"serviceName": ["Too long", "Too vague"], "price": 3}`)

	got, err := readErrorPayload(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := map[string][]string{
		"serviceName": {"Too long", "Too vague"},
		"price":       {"3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestWatchPaths_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "questions.yml", testManifest)
	data := writeFile(t, dir, "data.yml", "{}")

	gen := &generator{cfg: config{Manifest: manifest, Data: data}}
	if diff := cmp.Diff([]string{dir}, gen.watchPaths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	if _, err := content.LoadFile(manifest); err != nil {
		t.Fatalf("manifest fixture invalid: %v", err)
	}
}

func TestIsInputEvent(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "questions.yml", testManifest)
	data := writeFile(t, dir, "data.yml", "{}")
	output := filepath.Join(dir, "page.html")

	gen := &generator{cfg: config{Manifest: manifest, Data: data, Output: output}}
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "manifest", path: manifest, want: true},
		{name: "data", path: data, want: true},
		{name: "unclean manifest path", path: filepath.Join(dir, ".", "questions.yml"), want: true},
		{name: "output", path: output, want: false},
		{name: "unrelated sibling", path: filepath.Join(dir, "notes.txt"), want: false},
		{name: "empty", path: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gen.isInputEvent(tt.path); got != tt.want {
				t.Fatalf("isInputEvent(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsInputEvent_ManifestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "questions.yml", testManifest)
	output := filepath.Join(dir, "page.html")

	gen := &generator{cfg: config{Manifest: dir, Output: output}}
	if !gen.isInputEvent(filepath.Join(dir, "more.yml")) {
		t.Fatalf("expected a new file in the manifest directory to trigger")
	}
	if gen.isInputEvent(output) {
		t.Fatalf("output inside the manifest directory must not trigger")
	}
}

func TestWatch_OutputBesideManifestRegeneratesOnce(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "questions.yml", testManifest)

	core, logs := observer.New(zapcore.DebugLevel)
	gen := &generator{
		cfg:    config{Manifest: manifest, Output: filepath.Join(dir, "page.html")},
		logger: zap.New(core),
		stdout: io.Discard,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gen.watch(ctx) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("watch: %v", err)
		}
	}()

	waitFor(t, func() bool { return logs.FilterMessage("watching").Len() > 0 })
	writeFile(t, dir, "questions.yml", testManifest+"  - id: nickname\n    type: text\n    question: Nickname\n")
	waitFor(t, func() bool { return logs.FilterMessage("page regenerated").Len() > 0 })

	time.Sleep(4 * watchDebounce)
	if got := logs.FilterMessage("page regenerated").Len(); got != 1 {
		t.Fatalf("expected one regeneration after one manifest edit, got %d", got)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
