package content

import (
	"strings"

	"github.com/goliatone/go-formcontent/pkg/convert"
)

// QuestionType tags the kind of answer a question collects.
type QuestionType string

const (
	TypeText          QuestionType = "text"
	TypeTextboxLarge  QuestionType = "textbox_large"
	TypeNumber        QuestionType = "number"
	TypeBoolean       QuestionType = "boolean"
	TypeRadios        QuestionType = "radios"
	TypeCheckboxes    QuestionType = "checkboxes"
	TypeList          QuestionType = "list"
	TypeDate          QuestionType = "date"
	TypeUpload        QuestionType = "upload"
	TypePricing       QuestionType = "pricing"
	TypeMultiquestion QuestionType = "multiquestion"
)

// Question is a single field definition from a content manifest. Values are
// treated as read-only once loaded.
type Question struct {
	ID             string       `json:"id" yaml:"id" validate:"required"`
	Type           QuestionType `json:"type" yaml:"type" validate:"required"`
	Question       string       `json:"question" yaml:"question" validate:"required"`
	Name           string       `json:"name,omitempty" yaml:"name,omitempty"`
	Optional       bool         `json:"optional,omitempty" yaml:"optional,omitempty"`
	QuestionAdvice *string      `json:"question_advice,omitempty" yaml:"question_advice,omitempty"`
	Hint           *string      `json:"hint,omitempty" yaml:"hint,omitempty"`
	Unit           string       `json:"unit,omitempty" yaml:"unit,omitempty"`
	UnitPosition   UnitPosition `json:"unit_position,omitempty" yaml:"unit_position,omitempty" validate:"omitempty,oneof=before after"`
}

// UnitPosition places a number question's unit before or after the value.
type UnitPosition string

const (
	UnitBefore UnitPosition = "before"
	UnitAfter  UnitPosition = "after"
)

// AdviceText returns the question advice and whether it is present and
// non-empty.
func (q Question) AdviceText() (string, bool) {
	return optionalText(q.QuestionAdvice)
}

// HintText returns the hint and whether it is present and non-empty.
func (q Question) HintText() (string, bool) {
	return optionalText(q.Hint)
}

// DisplayName prefers the short name, falling back to the prompt text.
func (q Question) DisplayName() string {
	if name := strings.TrimSpace(q.Name); name != "" {
		return name
	}
	return q.Question
}

// Text returns a pointer to s, for populating optional question fields.
func Text(s string) *string {
	return &s
}

func optionalText(value *string) (string, bool) {
	if value == nil || *value == "" {
		return "", false
	}
	return *value, true
}

// CoercionRule reports how submitted answers to q should be coerced. Boolean
// questions coerce to bool; number and pricing questions coerce to numbers,
// stripping the unit on the side given by UnitPosition (default after).
func (q Question) CoercionRule() (convert.Rule, bool) {
	switch q.Type {
	case TypeBoolean:
		return convert.Rule{Kind: convert.RuleBoolean}, true
	case TypeNumber, TypePricing:
		rule := convert.Rule{Kind: convert.RuleNumber}
		if q.Unit != "" {
			if q.UnitPosition == UnitBefore {
				rule.Prefix = q.Unit
			} else {
				rule.Suffix = q.Unit
			}
		}
		return rule, true
	default:
		return convert.Rule{}, false
	}
}

// CoercionRules collects the coercion rule of every question that has one,
// keyed by question id.
func CoercionRules(questions []Question) map[string]convert.Rule {
	rules := make(map[string]convert.Rule, len(questions))
	for _, q := range questions {
		if rule, ok := q.CoercionRule(); ok {
			rules[q.ID] = rule
		}
	}
	return rules
}
