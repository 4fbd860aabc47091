package govuk_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-formcontent/pkg/govuk"
	"github.com/goliatone/go-formcontent/pkg/testsupport"
)

func TestFromQuestion_ManifestGolden(t *testing.T) {
	manifest := testsupport.MustLoadManifest(t, filepath.Join("testdata", "questions.yml"))
	data := govuk.Data{"serviceName": "Acme"}
	errs := govuk.Errors{"contactEmail": "Enter an email address"}

	snapshot := make(map[string]any, manifest.Len())
	for _, q := range manifest.Questions() {
		descriptor, ok := govuk.FromQuestion(q, data, errs)
		if !ok {
			snapshot[q.ID] = nil
			continue
		}
		snapshot[q.ID] = map[string]any{
			"kind":   descriptor.Kind,
			"params": descriptor.Params.Map(),
		}
	}

	got := testsupport.MarshalGolden(t, snapshot)
	goldenPath := filepath.Join("testdata", "descriptors.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, got) {
		return
	}
	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(got)); diff != "" {
		t.Fatalf("descriptor golden mismatch (-want +got):\n%s", diff)
	}
}
