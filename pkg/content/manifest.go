package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateQuestion is returned when two manifest entries share an id.
var ErrDuplicateQuestion = errors.New("content: duplicate question id")

// Manifest holds the questions parsed from one or more content files. It is
// safe for concurrent readers once loaded.
type Manifest struct {
	questions []Question
	index     map[string]int
}

type manifestFile struct {
	Questions []Question `json:"questions" yaml:"questions"`
}

// LoadFS walks fsys and parses every JSON/YAML manifest it finds, in lexical
// path order. A nil filesystem yields an empty manifest.
func LoadFS(fsys fs.FS) (*Manifest, error) {
	manifest := &Manifest{index: make(map[string]int)}
	if fsys == nil {
		return manifest, nil
	}

	validate := newValidator()

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("content: read %s: %w", path, err)
		}

		return manifest.load(validate, data, path)
	})
	if err != nil {
		return nil, err
	}

	return manifest, nil
}

// LoadFile parses a single manifest file, or every manifest below path when it
// names a directory.
func LoadFile(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("content: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	manifest := &Manifest{index: make(map[string]int)}
	if err := manifest.load(newValidator(), data, path); err != nil {
		return nil, err
	}
	return manifest, nil
}

// NewManifest builds a manifest from questions already in memory, applying the
// same validation as LoadFS.
func NewManifest(questions ...Question) (*Manifest, error) {
	manifest := &Manifest{index: make(map[string]int, len(questions))}
	validate := newValidator()
	for idx, question := range questions {
		if err := validate.Struct(question); err != nil {
			return nil, fmt.Errorf("content: question %d: %w", idx, describeValidation(err))
		}
		if err := manifest.add(question); err != nil {
			return nil, fmt.Errorf("%w %q", err, question.ID)
		}
	}
	return manifest, nil
}

// Question returns the question with the supplied id.
func (m *Manifest) Question(id string) (Question, bool) {
	if m == nil {
		return Question{}, false
	}
	idx, ok := m.index[id]
	if !ok {
		return Question{}, false
	}
	return m.questions[idx], true
}

// Questions returns the questions in declaration order.
func (m *Manifest) Questions() []Question {
	if m == nil {
		return nil
	}
	return append([]Question(nil), m.questions...)
}

// Len reports the number of questions.
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.questions)
}

// IDs returns the question ids sorted alphabetically.
func (m *Manifest) IDs() []string {
	if m == nil {
		return nil
	}
	ids := make([]string, 0, len(m.index))
	for id := range m.index {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *Manifest) load(validate *validator.Validate, data []byte, source string) error {
	questions, err := parseManifest(data, source)
	if err != nil {
		return err
	}
	for idx, question := range questions {
		if err := validate.Struct(question); err != nil {
			return fmt.Errorf("content: %s question %d: %w", source, idx, describeValidation(err))
		}
		if err := m.add(question); err != nil {
			return fmt.Errorf("%w %q (file %s)", err, question.ID, source)
		}
	}
	return nil
}

func (m *Manifest) add(question Question) error {
	id := strings.TrimSpace(question.ID)
	if _, exists := m.index[id]; exists {
		return ErrDuplicateQuestion
	}
	question.ID = id
	m.index[id] = len(m.questions)
	m.questions = append(m.questions, question)
	return nil
}

func parseManifest(data []byte, source string) ([]Question, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("content: file %s is empty", source)
	}

	var doc manifestFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc.Questions, nil
	}
	var list []Question
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc.Questions, nil
	}
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	return nil, fmt.Errorf("content: parse %s: invalid JSON or YAML", source)
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return errors.New(strings.Join(parts, ", "))
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
