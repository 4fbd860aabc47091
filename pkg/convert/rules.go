package convert

// RuleKind selects the coercion applied to a submitted field.
type RuleKind string

const (
	RuleBoolean RuleKind = "boolean"
	RuleNumber  RuleKind = "number"
)

// Rule describes how a single submitted field should be coerced. Prefix and
// Suffix only apply to RuleNumber.
type Rule struct {
	Kind   RuleKind
	Prefix string
	Suffix string
}

// Apply coerces value according to the rule. Unknown kinds pass the value
// through unchanged.
func (r Rule) Apply(value any) any {
	switch r.Kind {
	case RuleBoolean:
		return Boolean(value)
	case RuleNumber:
		return Number(value, WithPrefix(r.Prefix), WithSuffix(r.Suffix))
	default:
		return value
	}
}

// CoerceMap returns a copy of values with each field coerced by its matching
// rule. Fields without a rule are copied unchanged. The input map is never
// mutated.
func CoerceMap(values map[string]any, rules map[string]Rule) map[string]any {
	if values == nil {
		return nil
	}
	out := make(map[string]any, len(values))
	for key, value := range values {
		if rule, ok := rules[key]; ok {
			out[key] = rule.Apply(value)
			continue
		}
		out[key] = value
	}
	return out
}
