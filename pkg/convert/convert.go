package convert

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

var (
	truthy = map[string]struct{}{"t": {}, "true": {}, "on": {}, "yes": {}, "1": {}}
	falsy  = map[string]struct{}{"f": {}, "false": {}, "off": {}, "no": {}, "0": {}}
)

// Boolean turns strings that look like booleans into bool values. Matching is
// case-insensitive against t/true/on/yes/1 and f/false/off/no/0. Any other
// value, textual or not, is returned unchanged.
func Boolean(value any) any {
	text, ok := value.(string)
	if !ok {
		return value
	}
	lowered := strings.ToLower(text)
	if _, ok := truthy[lowered]; ok {
		return true
	}
	if _, ok := falsy[lowered]; ok {
		return false
	}
	return value
}

// NumberOption configures Number.
type NumberOption func(*numberOptions)

type numberOptions struct {
	prefix string
	suffix string
}

// WithPrefix strips one leading occurrence of prefix before parsing.
func WithPrefix(prefix string) NumberOption {
	return func(opts *numberOptions) {
		opts.prefix = prefix
	}
}

// WithSuffix strips one trailing occurrence of suffix before parsing.
func WithSuffix(suffix string) NumberOption {
	return func(opts *numberOptions) {
		opts.suffix = suffix
	}
}

// Number turns numeric looking strings into int or float64 values. Text
// containing a decimal point parses as float64, anything else as a base 10
// int. Integers too large for int come back as *big.Int. Hexadecimal text,
// including hex floats such as "0x1.8p1", is not a number.
//
// Non-string values are returned unchanged and the prefix/suffix options are
// not applied to them. When parsing fails the string is returned after
// prefix/suffix stripping, so Number("abckg", WithSuffix("kg")) yields "abc".
func Number(value any, options ...NumberOption) any {
	text, ok := value.(string)
	if !ok {
		return value
	}

	cfg := numberOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.prefix != "" {
		text = strings.TrimPrefix(text, cfg.prefix)
	}
	if cfg.suffix != "" {
		text = strings.TrimSuffix(text, cfg.suffix)
	}

	if parsed, ok := parseNumber(text); ok {
		return parsed
	}
	return text
}

// ToBool reports the boolean a value coerces to. The second result is false
// when the value is neither a bool nor a recognised boolean literal.
func ToBool(value any) (bool, bool) {
	out, ok := Boolean(value).(bool)
	return out, ok
}

// ToNumber reports the numeric value a value coerces to as float64. Native Go
// numeric types are accepted as-is.
func ToNumber(value any, options ...NumberOption) (float64, bool) {
	switch typed := Number(value, options...).(type) {
	case int:
		return float64(typed), true
	case int8:
		return float64(typed), true
	case int16:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case uint8:
		return float64(typed), true
	case uint16:
		return float64(typed), true
	case uint32:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	case float32:
		return float64(typed), true
	case float64:
		return typed, true
	case *big.Int:
		f, _ := new(big.Float).SetInt(typed).Float64()
		return f, true
	default:
		return 0, false
	}
}

func parseNumber(text string) (any, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}
	if hasHexPrefix(trimmed) {
		return nil, false
	}
	if strings.Contains(trimmed, ".") {
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	}
	i, err := strconv.Atoi(trimmed)
	if errors.Is(err, strconv.ErrRange) {
		if n, ok := new(big.Int).SetString(trimmed, 10); ok {
			return n, true
		}
	}
	if err != nil {
		return nil, false
	}
	return i, true
}

func hasHexPrefix(text string) bool {
	unsigned := strings.TrimLeft(text, "+-")
	return len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X')
}
