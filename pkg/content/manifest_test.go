package content_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/convert"
)

const yamlManifest = `
questions:
  - id: serviceName
    type: text
    question: What is your service called?
    hint: Use the name buyers will search for
  - id: priceMin
    type: pricing
    question: Minimum price
    optional: true
    unit: "£"
    unit_position: before
`

const jsonManifest = `[
  {"id": "contactEmail", "type": "text", "question": "Contact email", "question_advice": "We will only use this for updates"}
]`

func TestLoadFS_ParsesYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"a-service.yml":    {Data: []byte(yamlManifest)},
		"b-contact.json":   {Data: []byte(jsonManifest)},
		"notes/readme.txt": {Data: []byte("ignored")},
	}

	manifest, err := content.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}

	if manifest.Len() != 3 {
		t.Fatalf("expected 3 questions, got %d", manifest.Len())
	}

	gotOrder := make([]string, 0, manifest.Len())
	for _, q := range manifest.Questions() {
		gotOrder = append(gotOrder, q.ID)
	}
	if diff := cmp.Diff([]string{"serviceName", "priceMin", "contactEmail"}, gotOrder); diff != "" {
		t.Fatalf("question order mismatch (-want +got):\n%s", diff)
	}

	service, ok := manifest.Question("serviceName")
	if !ok {
		t.Fatalf("expected serviceName question")
	}
	want := content.Question{
		ID:       "serviceName",
		Type:     content.TypeText,
		Question: "What is your service called?",
		Hint:     content.Text("Use the name buyers will search for"),
	}
	if diff := cmp.Diff(want, service); diff != "" {
		t.Fatalf("question mismatch (-want +got):\n%s", diff)
	}

	contact, _ := manifest.Question("contactEmail")
	if advice, ok := contact.AdviceText(); !ok || advice != "We will only use this for updates" {
		t.Fatalf("unexpected advice %q (ok=%v)", advice, ok)
	}
	if _, ok := contact.HintText(); ok {
		t.Fatalf("expected contactEmail to have no hint")
	}

	if diff := cmp.Diff([]string{"contactEmail", "priceMin", "serviceName"}, manifest.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_NilFilesystem(t *testing.T) {
	manifest, err := content.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil fs: %v", err)
	}
	if manifest.Len() != 0 {
		t.Fatalf("expected empty manifest")
	}
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
	}{
		{
			name:    "empty file",
			files:   fstest.MapFS{"empty.yaml": {Data: []byte("   ")}},
			wantErr: "is empty",
		},
		{
			name:    "missing required fields",
			files:   fstest.MapFS{"bad.yaml": {Data: []byte("questions:\n  - id: foo\n")}},
			wantErr: `type failed "required"`,
		},
		{
			name: "invalid unit position",
			files: fstest.MapFS{"bad.yaml": {Data: []byte(
				"questions:\n  - id: foo\n    type: number\n    question: Foo\n    unit_position: middle\n",
			)}},
			wantErr: `unitposition failed "oneof"`,
		},
		{
			name:    "unparseable",
			files:   fstest.MapFS{"bad.json": {Data: []byte("{not: [valid")}},
			wantErr: "invalid JSON or YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := content.LoadFS(tt.files)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFS_DuplicateQuestion(t *testing.T) {
	fsys := fstest.MapFS{
		"one.yaml": {Data: []byte("- id: dup\n  type: text\n  question: One\n")},
		"two.yaml": {Data: []byte("- id: dup\n  type: text\n  question: Two\n")},
	}
	_, err := content.LoadFS(fsys)
	if !errors.Is(err, content.ErrDuplicateQuestion) {
		t.Fatalf("expected ErrDuplicateQuestion, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yaml")
	if err := os.WriteFile(path, []byte(yamlManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	fromFile, err := content.LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	fromDir, err := content.LoadFile(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if fromFile.Len() != 2 || fromDir.Len() != 2 {
		t.Fatalf("expected 2 questions from file and dir, got %d and %d", fromFile.Len(), fromDir.Len())
	}

	if _, err := content.LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNewManifest(t *testing.T) {
	_, err := content.NewManifest(
		content.Question{ID: "a", Type: content.TypeText, Question: "A"},
		content.Question{ID: "a", Type: content.TypeText, Question: "A again"},
	)
	if !errors.Is(err, content.ErrDuplicateQuestion) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	if _, err := content.NewManifest(content.Question{ID: "a"}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestQuestion_CoercionRule(t *testing.T) {
	tests := []struct {
		name     string
		question content.Question
		want     convert.Rule
		wantOK   bool
	}{
		{
			name:     "boolean",
			question: content.Question{Type: content.TypeBoolean},
			want:     convert.Rule{Kind: convert.RuleBoolean},
			wantOK:   true,
		},
		{
			name:     "number with leading unit",
			question: content.Question{Type: content.TypePricing, Unit: "£", UnitPosition: content.UnitBefore},
			want:     convert.Rule{Kind: convert.RuleNumber, Prefix: "£"},
			wantOK:   true,
		},
		{
			name:     "number with default trailing unit",
			question: content.Question{Type: content.TypeNumber, Unit: "kg"},
			want:     convert.Rule{Kind: convert.RuleNumber, Suffix: "kg"},
			wantOK:   true,
		},
		{
			name:     "text has no rule",
			question: content.Question{Type: content.TypeText},
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.question.CoercionRule()
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("rule mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuestion_OptionalText(t *testing.T) {
	q := content.Question{QuestionAdvice: content.Text(""), Name: "  "}
	if _, ok := q.AdviceText(); ok {
		t.Fatalf("empty advice should be treated as absent")
	}
	q.Question = "Prompt"
	if q.DisplayName() != "Prompt" {
		t.Fatalf("expected display name to fall back to prompt, got %q", q.DisplayName())
	}
}

func TestCoercionRules(t *testing.T) {
	questions := []content.Question{
		{ID: "name", Type: content.TypeText},
		{ID: "agree", Type: content.TypeBoolean},
		{ID: "price", Type: content.TypePricing, Unit: "£", UnitPosition: content.UnitBefore},
	}

	want := map[string]convert.Rule{
		"agree": {Kind: convert.RuleBoolean},
		"price": {Kind: convert.RuleNumber, Prefix: "£"},
	}
	if diff := cmp.Diff(want, content.CoercionRules(questions)); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}
