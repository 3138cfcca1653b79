// Package engine imports every theme of a family manifest.
package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/iancoleman/strcase"
	"github.com/jsvensson/themeswap/internal/config"
	"github.com/jsvensson/themeswap/internal/converter"
	"github.com/jsvensson/themeswap/internal/theme"
	"github.com/jsvensson/themeswap/internal/vscode"
	"github.com/tliron/commonlog"
)

// logger is looked up on use so it picks up the backend configured by main.
func logger() commonlog.Logger {
	return commonlog.GetLogger("themeswap.engine")
}

// Engine converts the themes of a manifest and writes the family document.
type Engine struct {
	OutputDir string
	Themes    []string // if non-empty, only import these theme names
}

// Run converts the selected themes in manifest order and writes
// <OutputDir>/<family-name>.json. The first failure aborts the run and
// nothing is written. It returns the path of the written file.
func (e *Engine) Run(family *config.Family) (string, error) {
	for _, name := range e.Themes {
		if !slices.ContainsFunc(family.Themes, func(t config.Theme) bool { return t.Name == name }) {
			return "", fmt.Errorf("theme %q is not in the manifest", name)
		}
	}

	out := theme.UserThemeFamily{
		Name:   family.Name,
		Author: family.Author,
	}

	for _, entry := range family.Themes {
		if !e.shouldImport(entry.Name) {
			continue
		}

		ut, err := importTheme(entry)
		if err != nil {
			return "", fmt.Errorf("importing %q: %w", entry.Name, err)
		}
		out.Themes = append(out.Themes, *ut)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding family: %w", err)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(e.OutputDir, OutputName(family.Name))
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	logger().Infof("wrote %d themes to %s", len(out.Themes), outPath)
	return outPath, nil
}

// OutputName is the file name of a family document, e.g. "rose-pine.json".
func OutputName(familyName string) string {
	return strcase.ToKebab(familyName) + ".json"
}

func (e *Engine) shouldImport(name string) bool {
	// If no themes are specified, import all.
	if len(e.Themes) == 0 {
		return true
	}

	return slices.Contains(e.Themes, name)
}

func importTheme(entry config.Theme) (*theme.UserTheme, error) {
	src, err := vscode.Load(entry.Path)
	if err != nil {
		return nil, err
	}

	for _, f := range src.Colors.UnknownFields() {
		logger().Debugf("%s: ignoring unknown color %s", entry.Name, f)
	}

	ut, err := converter.Convert(src, converter.Metadata{
		Name:       entry.Name,
		Appearance: entry.Appearance,
	})
	if err != nil {
		return nil, err
	}

	logger().Infof("converted %q: %d colors, %d status colors, %d highlights",
		entry.Name, len(ut.Styles.Colors), len(ut.Styles.Status), len(ut.Styles.Syntax.Highlights))
	return ut, nil
}
