package prompt

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/convert"
	"github.com/goliatone/go-formcontent/pkg/govuk"
	"github.com/goliatone/go-formcontent/pkg/render"
)

// Option configures an Asker.
type Option func(*Asker)

// WithLogger sets the logger used to report skipped questions.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Asker) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Asker walks a list of questions and collects answers.
type Asker struct {
	driver Driver
	logger *zap.Logger
}

// NewAsker returns an Asker using driver, or a SurveyDriver on stdout when
// driver is nil.
func NewAsker(driver Driver, options ...Option) *Asker {
	if driver == nil {
		driver = NewSurveyDriver(nil)
	}
	a := &Asker{driver: driver, logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Ask prompts for every question it knows how to ask and returns a copy of
// data updated with the coerced answers. Existing values become prompt
// defaults. Blank answers to optional questions remove the stored value.
func (a *Asker) Ask(ctx context.Context, questions []content.Question, data govuk.Data) (govuk.Data, error) {
	answers := make(map[string]any, len(questions))
	cleared := make(map[string]struct{})

	for _, q := range questions {
		if advice, ok := q.AdviceText(); ok {
			if err := a.driver.Info(ctx, advice); err != nil {
				return nil, err
			}
		}

		answer, asked, err := a.askOne(ctx, q, data[q.ID])
		if err != nil {
			return nil, fmt.Errorf("prompt: question %q: %w", q.ID, err)
		}
		if !asked {
			a.logger.Debug("question type cannot be answered interactively",
				zap.String("question", q.ID),
				zap.String("type", string(q.Type)),
			)
			continue
		}
		if text, ok := answer.(string); ok && strings.TrimSpace(text) == "" {
			cleared[q.ID] = struct{}{}
			continue
		}
		answers[q.ID] = answer
	}

	coerced := convert.CoerceMap(answers, content.CoercionRules(questions))

	out := make(govuk.Data, len(data)+len(coerced))
	for key, value := range data {
		if _, ok := cleared[key]; ok {
			continue
		}
		out[key] = value
	}
	for key, value := range coerced {
		out[key] = value
	}
	return out, nil
}

func (a *Asker) askOne(ctx context.Context, q content.Question, current any) (any, bool, error) {
	message := q.Question
	if q.Optional {
		message += " (optional)"
	}
	help, _ := q.HintText()

	switch q.Type {
	case content.TypeBoolean:
		def, _ := convert.ToBool(current)
		answer, err := a.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: def, Help: help})
		return answer, true, err
	case content.TypeTextboxLarge:
		answer, err := a.driver.TextArea(ctx, TextAreaConfig{
			Message:   message,
			Default:   defaultText(current),
			Help:      help,
			Validator: requiredValidator(q),
		})
		return answer, true, err
	case content.TypeText, content.TypeNumber, content.TypePricing, content.TypeDate:
		answer, err := a.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   defaultText(current),
			Help:      help,
			Validator: inputValidator(q),
		})
		return answer, true, err
	default:
		return nil, false, nil
	}
}

func defaultText(current any) string {
	if current == nil {
		return ""
	}
	return render.DisplayValue(current)
}

func requiredValidator(q content.Question) func(string) error {
	return func(answer string) error {
		if !q.Optional && strings.TrimSpace(answer) == "" {
			return ErrAnswerRequired
		}
		return nil
	}
}

func inputValidator(q content.Question) func(string) error {
	required := requiredValidator(q)
	rule, numeric := q.CoercionRule()
	return func(answer string) error {
		if err := required(answer); err != nil {
			return err
		}
		if !numeric || rule.Kind != convert.RuleNumber || strings.TrimSpace(answer) == "" {
			return nil
		}
		if _, ok := convert.ToNumber(answer, convert.WithPrefix(rule.Prefix), convert.WithSuffix(rule.Suffix)); !ok {
			return fmt.Errorf("enter a number for %s", q.DisplayName())
		}
		return nil
	}
}
