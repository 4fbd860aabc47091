package govuk

// Component kinds produced by the built-in strategies.
const (
	KindInput = "input"
)

const (
	labelClasses      = "govuk-label--l"
	inputClasses      = "app-text-input--height-compatible"
	adviceOpenMarkup  = "<div class=\"app-hint--text\">\n"
	adviceCloseMarkup = "\n</div>"
	hintSeparator     = "\n"
)

// Data maps question ids to previously submitted values.
type Data map[string]any

// Errors maps question ids to opaque error tokens understood by an
// ErrorFormatter.
type Errors map[string]any

// Descriptor pairs a component kind with the parameters to render it with.
type Descriptor struct {
	Kind   string
	Params Params
}

// Label configures the component label. Question pages style the label as the
// page heading.
type Label struct {
	Text          string `json:"text"`
	IsPageHeading bool   `json:"isPageHeading"`
	Classes       string `json:"classes"`
}

// Hint carries pre-escaped hint markup.
type Hint struct {
	HTML string `json:"html"`
}

// ErrorMessage is the inline error shown above a control.
type ErrorMessage struct {
	Text string `json:"text"`
}

// Params holds the component parameters. ID and Name are derived from the
// question id by the builder. Value is only meaningful when HasValue is set,
// so a submitted nil or zero value is distinguishable from no submission.
type Params struct {
	ID           string
	Name         string
	Label        Label
	Hint         *Hint
	Value        any
	HasValue     bool
	ErrorMessage *ErrorMessage
	Classes      string
}

// Map returns the parameter object in the shape component templates expect.
// Absent optional parameters are omitted rather than set to empty values.
func (p Params) Map() map[string]any {
	out := map[string]any{
		"id":   p.ID,
		"name": p.Name,
		"label": map[string]any{
			"text":          p.Label.Text,
			"isPageHeading": p.Label.IsPageHeading,
			"classes":       p.Label.Classes,
		},
	}
	if p.Hint != nil {
		out["hint"] = map[string]any{"html": p.Hint.HTML}
	}
	if p.HasValue {
		out["value"] = p.Value
	}
	if p.ErrorMessage != nil {
		out["errorMessage"] = map[string]any{"text": p.ErrorMessage.Text}
	}
	if p.Classes != "" {
		out["classes"] = p.Classes
	}
	return out
}
