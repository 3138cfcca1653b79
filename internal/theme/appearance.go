package theme

import "fmt"

// Appearance is the light/dark classification of a theme.
type Appearance string

const (
	Light Appearance = "light"
	Dark  Appearance = "dark"
)

// UnmappedAppearanceError reports an appearance value outside light/dark.
type UnmappedAppearanceError struct {
	Value string
}

func (e *UnmappedAppearanceError) Error() string {
	return fmt.Sprintf("unknown appearance %q (valid: light, dark)", e.Value)
}

// ParseAppearance maps "light" and "dark" onto an Appearance.
func ParseAppearance(s string) (Appearance, error) {
	switch s {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return "", &UnmappedAppearanceError{Value: s}
	}
}
