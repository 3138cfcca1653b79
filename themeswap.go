package themeswap

import (
	"fmt"

	"github.com/jsvensson/themeswap/internal/converter"
	"github.com/jsvensson/themeswap/internal/theme"
	"github.com/jsvensson/themeswap/internal/vscode"
)

// Meta holds the metadata of a theme being converted. Empty Name and
// Appearance fall back to the source theme's own name and type; Author is
// only recorded by ConvertFamily.
type Meta struct {
	Name       string
	Author     string
	Appearance string
}

// ConvertFile loads a VS Code color theme and converts it into a refinement theme.
func ConvertFile(path string, meta Meta) (*theme.UserTheme, error) {
	src, err := vscode.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}

	resolved, err := resolveMeta(src, meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ut, err := converter.Convert(src, resolved)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", path, err)
	}
	return ut, nil
}

// ConvertFamily converts a single theme and wraps it in a family document
// named after the theme and credited to meta.Author.
func ConvertFamily(path string, meta Meta) (*theme.UserThemeFamily, error) {
	ut, err := ConvertFile(path, meta)
	if err != nil {
		return nil, err
	}
	return &theme.UserThemeFamily{
		Name:   ut.Name,
		Author: meta.Author,
		Themes: []theme.UserTheme{*ut},
	}, nil
}

func resolveMeta(src *vscode.Theme, meta Meta) (converter.Metadata, error) {
	resolved := converter.Metadata{
		Name:       meta.Name,
		Appearance: meta.Appearance,
	}

	if resolved.Name == "" {
		resolved.Name = src.Name
	}
	if resolved.Name == "" {
		return converter.Metadata{}, fmt.Errorf("theme has no name; pass one explicitly")
	}

	if resolved.Appearance == "" {
		appearance, ok := src.Appearance()
		if !ok {
			return converter.Metadata{}, fmt.Errorf("cannot infer appearance from type %q; pass one explicitly", src.Type)
		}
		resolved.Appearance = appearance
	}

	return resolved, nil
}
