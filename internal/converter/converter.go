// Package converter turns VS Code color themes into refinement themes.
package converter

import (
	"github.com/jsvensson/themeswap/internal/theme"
	"github.com/jsvensson/themeswap/internal/vscode"
)

// Metadata describes the theme being converted. It comes from the caller,
// not from the source document. Authorship belongs to the family document,
// see theme.UserThemeFamily.
type Metadata struct {
	Name       string
	Appearance string
}

// Convert builds a UserTheme from src. The first failure aborts the
// conversion; no partial theme is returned.
func Convert(src *vscode.Theme, meta Metadata) (*theme.UserTheme, error) {
	appearance, err := theme.ParseAppearance(meta.Appearance)
	if err != nil {
		return nil, err
	}

	status, err := MapStatusColors(src)
	if err != nil {
		return nil, err
	}

	colors, err := MapThemeColors(src)
	if err != nil {
		return nil, err
	}

	syntax, err := ExtractHighlights(src.TokenColors)
	if err != nil {
		return nil, err
	}

	return &theme.UserTheme{
		Name:       meta.Name,
		Appearance: appearance,
		Styles: theme.Styles{
			Colors: colors,
			Status: status,
			Syntax: syntax,
		},
	}, nil
}
