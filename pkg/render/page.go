package render

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/govuk"
)

// Page describes a full question page: a form wrapping one or more questions
// plus an error summary.
type Page struct {
	Title       string
	Action      string
	Method      string
	SubmitLabel string
	Questions   []content.Question
	Data        govuk.Data
	Errors      govuk.Errors
	// FormErrors are messages not tied to a question; they head the error
	// summary.
	FormErrors []string
	// Hidden holds extra form inputs such as CSRF tokens, rendered sorted by
	// name.
	Hidden map[string]string
}

// SummaryItem is one entry in the page error summary.
type SummaryItem struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

// RenderPage draws a full HTML page for the supplied questions.
func (r *Renderer) RenderPage(ctx context.Context, page Page) ([]byte, error) {
	body, err := r.RenderQuestions(ctx, page.Questions, page.Data, page.Errors)
	if err != nil {
		return nil, err
	}

	method := strings.ToLower(strings.TrimSpace(page.Method))
	if method == "" {
		method = defaultMethod
	}
	submit := strings.TrimSpace(page.SubmitLabel)
	if submit == "" {
		submit = defaultSubmitLabel
	}

	view := map[string]any{
		"title":        page.Title,
		"action":       page.Action,
		"method":       method,
		"submitLabel":  submit,
		"body":         body,
		"errorSummary": summaryView(r.ErrorSummary(page)),
		"hidden":       hiddenView(page.Hidden),
	}

	out, err := r.engine.RenderTemplate(r.resolveTemplate(pageTemplate, pagePartial), map[string]any{
		"page":  view,
		"theme": r.themeView(),
	})
	if err != nil {
		return nil, fmt.Errorf("render: page: %w", err)
	}
	return []byte(out), nil
}

// ErrorSummary lists form-level messages first, then one entry per question
// error in question order. Entries link to their input; errors for questions
// without a rendered control are listed unlinked.
func (r *Renderer) ErrorSummary(page Page) []SummaryItem {
	items := make([]SummaryItem, 0, len(page.FormErrors)+len(page.Errors))
	for _, message := range MergeFormErrors(page.FormErrors) {
		items = append(items, SummaryItem{Text: message})
	}
	if len(page.Errors) == 0 {
		return items
	}
	for _, q := range page.Questions {
		token, ok := page.Errors[q.ID]
		if !ok {
			continue
		}
		descriptor, ok := r.builder.FromQuestion(q, nil, govuk.Errors{q.ID: token})
		if !ok {
			// No control to link to, so the message is listed without one.
			text := strings.TrimSpace(r.builder.FormatError(token).ErrorMessage.Text)
			r.logger.Debug("error for question without a control",
				zap.String("question", q.ID),
				zap.String("type", string(q.Type)),
			)
			if text != "" {
				items = append(items, SummaryItem{Text: text})
			}
			continue
		}
		if descriptor.Params.ErrorMessage == nil {
			continue
		}
		items = append(items, SummaryItem{
			Text: descriptor.Params.ErrorMessage.Text,
			Href: "#" + descriptor.Params.ID,
		})
	}
	return items
}

func summaryView(items []SummaryItem) []any {
	if len(items) == 0 {
		return nil
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]any{"text": item.Text, "href": item.Href})
	}
	return out
}

func hiddenView(fields map[string]string) []any {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]any, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]any{"name": strings.TrimSpace(name), "value": fields[name]})
	}
	return out
}
