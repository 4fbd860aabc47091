package govuk

import (
	"fmt"
	"strings"
)

// FormattedError is the structured error produced for a stored error token.
// Href points an error summary at the offending control.
type FormattedError struct {
	Href         string
	ErrorMessage ErrorMessage
}

// ErrorFormatter converts stored error tokens into structured messages.
type ErrorFormatter interface {
	Format(token any) FormattedError
}

// ErrorFormatterFunc adapts a function to ErrorFormatter.
type ErrorFormatterFunc func(token any) FormattedError

// Format calls f(token).
func (f ErrorFormatterFunc) Format(token any) FormattedError {
	return f(token)
}

// ValidationError is the error token shape produced by form validation: a
// message plus the name of the input it belongs to.
type ValidationError struct {
	Message   string `json:"message" yaml:"message"`
	InputName string `json:"input_name,omitempty" yaml:"input_name,omitempty"`
}

// Error implements error.
func (e ValidationError) Error() string {
	return e.Message
}

// DefaultErrorFormatter understands ValidationError, errors, strings,
// fmt.Stringer, string slices, and maps carrying "message"/"input_name" keys.
// Any other token is formatted with %v.
var DefaultErrorFormatter ErrorFormatter = ErrorFormatterFunc(formatError)

func formatError(token any) FormattedError {
	message, inputName := errorParts(token)
	out := FormattedError{ErrorMessage: ErrorMessage{Text: message}}
	if inputName != "" {
		out.Href = "#input-" + inputName
	}
	return out
}

func errorParts(token any) (string, string) {
	switch typed := token.(type) {
	case nil:
		return "", ""
	case ValidationError:
		return typed.Message, typed.InputName
	case *ValidationError:
		if typed == nil {
			return "", ""
		}
		return typed.Message, typed.InputName
	case string:
		return typed, ""
	case []string:
		return strings.Join(typed, " "), ""
	case map[string]string:
		return typed["message"], typed["input_name"]
	case map[string]any:
		return anyToString(typed["message"]), anyToString(typed["input_name"])
	case error:
		return typed.Error(), ""
	case fmt.Stringer:
		return typed.String(), ""
	default:
		return fmt.Sprint(typed), ""
	}
}

func anyToString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}
