// Package theme defines the refinement theme documents produced by the importer.
// Every color is optional; an unset slot inherits from the base theme.
package theme

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/jsvensson/themeswap/internal/color"
)

// UserThemeFamily groups the themes imported from one manifest.
type UserThemeFamily struct {
	Name   string      `json:"name"`
	Author string      `json:"author,omitempty"`
	Themes []UserTheme `json:"themes"`
}

// UserTheme is one converted theme.
type UserTheme struct {
	Name       string     `json:"name"`
	Appearance Appearance `json:"appearance"`
	Styles     Styles     `json:"styles"`
}

// Styles holds the three refinements of a UserTheme.
type Styles struct {
	Colors ThemeColorsRefinement  `json:"colors"`
	Status StatusColorsRefinement `json:"status"`
	Syntax *SyntaxTheme           `json:"syntax,omitempty"`
}

// StatusColorsRefinement holds the status slots a theme overrides.
type StatusColorsRefinement map[StatusSlot]color.Hsla

// ThemeColorsRefinement holds the general color slots a theme overrides.
type ThemeColorsRefinement map[ColorSlot]color.Hsla

// FontStyle is the slant of highlighted text.
type FontStyle string

const (
	FontStyleNormal FontStyle = "normal"
	FontStyleItalic FontStyle = "italic"
)

// FontWeight is a CSS-style numeric font weight.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// HighlightStyle is the style applied to one syntax scope.
type HighlightStyle struct {
	Color      *color.Hsla `json:"color,omitempty"`
	FontStyle  *FontStyle  `json:"font_style,omitempty"`
	FontWeight *FontWeight `json:"font_weight,omitempty"`
	Underline  *bool       `json:"underline,omitempty"`
}

// IsEmpty reports whether no attribute of the style is set.
func (s HighlightStyle) IsEmpty() bool {
	return s.Color == nil && s.FontStyle == nil && s.FontWeight == nil && s.Underline == nil
}

// Highlight pairs a scope selector with its style.
// It encodes as a two-element JSON array: ["comment", {...}].
type Highlight struct {
	Selector string
	Style    HighlightStyle
}

func (h Highlight) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{h.Selector, h.Style})
}

func (h *Highlight) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &h.Selector); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &h.Style)
}

// SyntaxTheme is the flat selector → style mapping of a theme.
type SyntaxTheme struct {
	Highlights []Highlight `json:"highlights"`
}

// NewSyntaxTheme builds a SyntaxTheme from a selector map, sorted by selector.
func NewSyntaxTheme(styles map[string]HighlightStyle) *SyntaxTheme {
	highlights := make([]Highlight, 0, len(styles))
	for selector, style := range styles {
		highlights = append(highlights, Highlight{Selector: selector, Style: style})
	}
	slices.SortFunc(highlights, func(a, b Highlight) int {
		return strings.Compare(a.Selector, b.Selector)
	})
	return &SyntaxTheme{Highlights: highlights}
}

// Lookup returns the style for an exact selector.
func (s *SyntaxTheme) Lookup(selector string) (HighlightStyle, bool) {
	if s == nil {
		return HighlightStyle{}, false
	}
	for _, h := range s.Highlights {
		if h.Selector == selector {
			return h.Style, true
		}
	}
	return HighlightStyle{}, false
}
