package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcontent/pkg/content"
)

// MustLoadManifest loads a question manifest fixture (file or directory).
func MustLoadManifest(t *testing.T, path string) *content.Manifest {
	t.Helper()

	manifest, err := content.LoadFile(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	return manifest
}

// MustQuestion looks up id in manifest and fails the test when missing.
func MustQuestion(t *testing.T, manifest *content.Manifest, id string) content.Question {
	t.Helper()

	q, ok := manifest.Question(id)
	if !ok {
		t.Fatalf("question %q not found in manifest", id)
	}
	return q
}

// MarshalGolden renders value as indented JSON with a trailing newline and
// without HTML escaping, so markup in goldens stays readable.
func MarshalGolden(t *testing.T, value any) []byte {
	t.Helper()

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	return buf.Bytes()
}

// CompareGolden returns a diff string if the values differ. Strings are
// compared after trimming surrounding whitespace.
func CompareGolden(want, got string) string {
	return cmp.Diff(strings.TrimSpace(want), strings.TrimSpace(got))
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
