package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParseError reports color text that is not in one of the accepted forms.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// Parse parses "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)" or
// "rgba(r, g, b, a)" into an Hsla. Out-of-range components are rejected.
func Parse(s string) (Hsla, error) {
	rgba, err := ParseRgba(s)
	if err != nil {
		return Hsla{}, err
	}
	return rgba.Hsla(), nil
}

// ParseRgba is Parse without the conversion to Hsla.
func ParseRgba(s string) (Rgba, error) {
	text := strings.TrimSpace(s)
	lower := strings.ToLower(text)

	switch {
	case strings.HasPrefix(text, "#"):
		return parseHex(s, text[1:])
	case strings.HasPrefix(lower, "rgba("):
		return parseFunc(s, text, "rgba", 4)
	case strings.HasPrefix(lower, "rgb("):
		return parseFunc(s, text, "rgb", 3)
	case text == "":
		return Rgba{}, &ParseError{Input: s, Reason: "empty value"}
	}
	return Rgba{}, &ParseError{Input: s, Reason: "expected #hex, rgb() or rgba()"}
}

func parseHex(input, digits string) (Rgba, error) {
	for _, r := range digits {
		if !isHexDigit(r) {
			return Rgba{}, &ParseError{Input: input, Reason: fmt.Sprintf("%q is not a hex digit", r)}
		}
	}

	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return Rgba{}, &ParseError{Input: input, Reason: "hex color must have 3, 4, 6 or 8 digits"}
	}

	channels := [4]float64{1, 1, 1, 1}
	for i := 0; i*2 < len(digits); i++ {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Rgba{}, &ParseError{Input: input, Reason: err.Error()}
		}
		channels[i] = float64(v) / 255.0
	}

	return Rgba{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

func parseFunc(input, text, name string, arity int) (Rgba, error) {
	if !strings.HasSuffix(text, ")") {
		return Rgba{}, &ParseError{Input: input, Reason: fmt.Sprintf("%s() is missing its closing parenthesis", name)}
	}

	parts := strings.Split(text[len(name)+1:len(text)-1], ",")
	if len(parts) != arity {
		return Rgba{}, &ParseError{Input: input, Reason: fmt.Sprintf("%s() takes %d components, got %d", name, arity, len(parts))}
	}

	channels := [4]float64{1, 1, 1, 1}
	for i, part := range parts {
		max := 255.0
		if i == 3 {
			max = 1.0
		}
		v, err := parseComponent(part, max)
		if err != nil {
			return Rgba{}, &ParseError{Input: input, Reason: fmt.Sprintf("component %d: %s", i+1, err)}
		}
		channels[i] = v
	}

	return Rgba{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// parseComponent parses a number in [0, max] or a percentage in [0%, 100%]
// and scales it to [0, 1].
func parseComponent(s string, max float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseFinite(pct)
		if err != nil {
			return 0, err
		}
		if v < 0 || v > 100 {
			return 0, fmt.Errorf("%s is outside 0%%-100%%", s)
		}
		return v / 100, nil
	}

	v, err := parseFinite(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > max {
		return 0, fmt.Errorf("%s is outside 0-%g", s, max)
	}
	return v / max, nil
}

// decimalNumber is the CSS number grammar; strconv alone would also accept
// hex floats, underscores, NaN and Inf.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func parseFinite(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !decimalNumber.MatchString(s) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
