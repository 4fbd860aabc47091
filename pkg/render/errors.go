package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/govuk"
)

// ErrorMapping splits a validation payload into question-level error tokens
// and form-level messages.
type ErrorMapping struct {
	Questions govuk.Errors
	Form      []string
}

// MergeFormErrors concatenates and normalises form-level messages, trimming
// whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload matches server error keys (plain ids, "input-" prefixed
// ids, dotted paths, or JSON pointers such as "/body/serviceName") to
// questions. Keys that match no question become form-level messages so they
// are not lost. Question tokens are []string values, which the default error
// formatter joins.
func MapErrorPayload(questions []content.Question, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{}
	if len(payload) == 0 {
		return mapping
	}

	ids := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if id := strings.TrimSpace(q.ID); id != "" {
			ids[id] = struct{}{}
		}
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make(map[string][]string)
	for _, rawKey := range keys {
		normalized := normalizeMessages(payload[rawKey])
		if len(normalized) == 0 {
			continue
		}
		id, ok := matchQuestion(rawKey, ids)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		fields[id] = append(fields[id], normalized...)
	}

	if len(fields) > 0 {
		mapping.Questions = make(govuk.Errors, len(fields))
		for id, messages := range fields {
			mapping.Questions[id] = normalizeMessages(messages)
		}
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func matchQuestion(raw string, ids map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", false
	}
	if _, ok := ids[trimmed]; ok {
		return trimmed, true
	}

	segments := parsePathSegments(trimmed)
	if len(segments) == 0 {
		return "", false
	}

	for _, variant := range [][]string{segments, dropWrapperSegments(segments), stripNumericSegments(dropWrapperSegments(segments))} {
		if id := longestMatchingID(variant, ids); id != "" {
			return id, true
		}
	}
	return "", false
}

func longestMatchingID(segments []string, ids map[string]struct{}) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := ids[candidate]; ok {
			return candidate
		}
		if stripped := strings.TrimPrefix(candidate, "input-"); stripped != candidate {
			if _, ok := ids[stripped]; ok {
				return stripped
			}
		}
	}
	return ""
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for _, prefix := range []string{"#/", "$/", "$."} {
		clean = strings.TrimPrefix(clean, prefix)
	}
	clean = strings.TrimLeft(clean, "#/.$")

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"answers":    {},
	"attributes": {},
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
