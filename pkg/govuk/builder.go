package govuk

import (
	"html"
	"strings"

	"github.com/goliatone/go-formcontent/pkg/content"
)

// Strategy turns the common parameters for a question into a descriptor for
// one component kind.
type Strategy interface {
	Describe(q content.Question, params Params) Descriptor
}

// TextInput renders text questions with the input component.
type TextInput struct{}

// Describe implements Strategy.
func (TextInput) Describe(_ content.Question, params Params) Descriptor {
	params.Classes = inputClasses
	return Descriptor{Kind: KindInput, Params: params}
}

// strategies lists every question type with a rendering strategy. Types not
// listed here produce no descriptor.
var strategies = map[content.QuestionType]Strategy{
	content.TypeText: TextInput{},
}

// StrategyFor returns the strategy registered for a question type.
func StrategyFor(questionType content.QuestionType) (Strategy, bool) {
	strategy, ok := strategies[questionType]
	return strategy, ok
}

// Option configures a Builder.
type Option func(*Builder)

// WithEscaper overrides the HTML escaping function applied to hint text.
func WithEscaper(escape func(string) string) Option {
	return func(b *Builder) {
		if escape != nil {
			b.escape = escape
		}
	}
}

// WithErrorFormatter overrides how stored error tokens become messages.
func WithErrorFormatter(formatter ErrorFormatter) Option {
	return func(b *Builder) {
		if formatter != nil {
			b.errors = formatter
		}
	}
}

// Builder assembles descriptors from questions. It holds no mutable state and
// is safe for concurrent use.
type Builder struct {
	escape func(string) string
	errors ErrorFormatter
}

// NewBuilder returns a Builder using html.EscapeString and
// DefaultErrorFormatter unless overridden.
func NewBuilder(options ...Option) *Builder {
	b := &Builder{
		escape: html.EscapeString,
		errors: DefaultErrorFormatter,
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

var defaultBuilder = NewBuilder()

// FromQuestion builds a descriptor with the default builder.
func FromQuestion(q content.Question, data Data, errs Errors) (Descriptor, bool) {
	return defaultBuilder.FromQuestion(q, data, errs)
}

// FromQuestion returns the descriptor for q, or false when the question type
// has no rendering strategy. data and errs may be nil.
func (b *Builder) FromQuestion(q content.Question, data Data, errs Errors) (Descriptor, bool) {
	strategy, ok := StrategyFor(q.Type)
	if !ok {
		return Descriptor{}, false
	}
	return strategy.Describe(q, b.Params(q, data, errs)), true
}

// Params assembles the parameters shared by every component: id, name,
// label, and when available hint, value, and errorMessage.
func (b *Builder) Params(q content.Question, data Data, errs Errors) Params {
	params := Params{
		ID:   "input-" + q.ID,
		Name: q.ID,
		Label: Label{
			Text:          labelText(q),
			IsPageHeading: true,
			Classes:       labelClasses,
		},
	}

	if markup := b.hintHTML(q); markup != "" {
		params.Hint = &Hint{HTML: markup}
	}

	if value, ok := data[q.ID]; ok {
		params.Value = value
		params.HasValue = true
	}

	if token, ok := errs[q.ID]; ok {
		message := b.FormatError(token).ErrorMessage
		params.ErrorMessage = &message
	}

	return params
}

// FormatError converts a stored error token with the builder's formatter.
func (b *Builder) FormatError(token any) FormattedError {
	return b.errors.Format(token)
}

func labelText(q content.Question) string {
	if q.Optional {
		return q.Question + " (optional)"
	}
	return q.Question
}

// hintHTML joins the advice block and the hint in that order, separated by a
// single line break when both are present.
func (b *Builder) hintHTML(q content.Question) string {
	fragments := make([]string, 0, 2)
	if advice, ok := q.AdviceText(); ok {
		fragments = append(fragments, adviceOpenMarkup+b.escape(advice)+adviceCloseMarkup)
	}
	if hint, ok := q.HintText(); ok {
		fragments = append(fragments, b.escape(hint))
	}
	return strings.Join(fragments, hintSeparator)
}
