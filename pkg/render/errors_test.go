package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/govuk"
	"github.com/goliatone/go-formcontent/pkg/render"
)

func TestMapErrorPayload_MatchesQuestions(t *testing.T) {
	questions := []content.Question{
		{ID: "serviceName", Type: content.TypeText, Question: "Service name"},
		{ID: "contactEmail", Type: content.TypeText, Question: "Contact email"},
		{ID: "priceMin", Type: content.TypePricing, Question: "Minimum price"},
	}

	payload := map[string][]string{
		"/body/serviceName":     {"Enter a service name"},
		"input-contactEmail":    {"Enter an email", " Enter an email "},
		"$.answers.priceMin[0]": {"Enter a number"},
		"non_field_errors":      {"Try again later"},
		"request/body/unknown":  {"Unknown problem"},
		"":                      {"  "},
	}

	mapped := render.MapErrorPayload(questions, payload)

	wantQuestions := govuk.Errors{
		"serviceName":  []string{"Enter a service name"},
		"contactEmail": []string{"Enter an email"},
		"priceMin":     []string{"Enter a number"},
	}
	if diff := cmp.Diff(wantQuestions, mapped.Questions); diff != "" {
		t.Fatalf("question errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Try again later", "Unknown problem"}
	if diff := cmp.Diff(wantForm, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_Empty(t *testing.T) {
	mapped := render.MapErrorPayload(nil, nil)
	if mapped.Questions != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	got := render.MergeFormErrors([]string{"Session expired", ""}, " Session expired ", "Try again")
	want := []string{"Session expired", "Try again"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}

	if got := render.MergeFormErrors(nil); got != nil {
		t.Fatalf("expected nil for no messages, got %v", got)
	}
}
