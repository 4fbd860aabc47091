package formcontent_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	formcontent "github.com/goliatone/go-formcontent"
	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/convert"
)

func TestFromQuestion_Facade(t *testing.T) {
	q := formcontent.Question{ID: "serviceName", Type: content.TypeText, Question: "Service name"}

	descriptor, ok := formcontent.FromQuestion(q, formcontent.Data{"serviceName": "Acme"}, nil)
	if !ok {
		t.Fatalf("expected descriptor for text question")
	}
	if descriptor.Kind != "input" || descriptor.Params.Value != "Acme" {
		t.Fatalf("unexpected descriptor: %+v", descriptor)
	}

	if _, ok := formcontent.FromQuestion(formcontent.Question{ID: "x", Type: content.TypeRadios}, nil, nil); ok {
		t.Fatalf("radios should have no descriptor")
	}
}

func TestRenderQuestion_Facade(t *testing.T) {
	q := formcontent.Question{ID: "serviceName", Type: content.TypeText, Question: "Service name"}

	out, err := formcontent.RenderQuestion(context.Background(), q, nil, formcontent.Errors{"serviceName": "Enter a name"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Enter a name") || !strings.Contains(out, `id="input-serviceName"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out, err = formcontent.RenderQuestion(context.Background(), formcontent.Question{ID: "b", Type: content.TypeBoolean}, nil, nil)
	if err != nil || out != "" {
		t.Fatalf("expected empty output for boolean question, got %q err=%v", out, err)
	}
}

func TestLoadManifestFS_RenderPage(t *testing.T) {
	fsys := fstest.MapFS{
		"questions.yml": {Data: []byte(`questions:
  - id: serviceName
    type: text
    question: Service name
  - id: minimumPrice
    type: pricing
    question: Minimum price
    unit: "£"
    unit_position: before
`)},
	}

	manifest, err := formcontent.LoadManifestFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"minimumPrice", "serviceName"}, manifest.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	out, err := formcontent.RenderPage(context.Background(), formcontent.Page{
		Title:     "Service",
		Questions: manifest.Questions(),
	})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if strings.Count(string(out), "govuk-form-group") != 1 {
		t.Fatalf("expected only the text question rendered:\n%s", out)
	}
}

func TestCoercionFacade(t *testing.T) {
	if got := formcontent.Boolean("Yes"); got != true {
		t.Fatalf("Boolean(Yes) = %v", got)
	}
	if got := formcontent.Number("£12.50", convert.WithPrefix("£")); got != 12.5 {
		t.Fatalf("Number(£12.50) = %v", got)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(formcontent.EmbeddedTemplates(), "govuk/input.tpl"); err != nil {
		t.Fatalf("expected embedded input template: %v", err)
	}
}
