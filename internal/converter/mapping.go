package converter

import (
	"github.com/jsvensson/themeswap/internal/color"
	"github.com/jsvensson/themeswap/internal/theme"
	"github.com/jsvensson/themeswap/internal/vscode"
)

// fieldMapping backs one target slot with one source color key.
type fieldMapping[S ~string] struct {
	Slot  S
	Field vscode.Field
}

// Status slots without an entry (conflict, created, ignored, info, modified,
// renamed, success) have no source equivalent and are never set.
var statusColorMappings = []fieldMapping[theme.StatusSlot]{
	{theme.StatusDeleted, vscode.ErrorForeground},
	{theme.StatusError, vscode.ErrorForeground},
	{theme.StatusHidden, vscode.TabInactiveForeground},
	{theme.StatusWarning, vscode.ListWarningForeground},
}

// Several slots deliberately share a source key: VS Code themes do not
// distinguish the border variants, for example.
var themeColorMappings = []fieldMapping[theme.ColorSlot]{
	{theme.Border, vscode.PanelBorder},
	{theme.BorderVariant, vscode.PanelBorder},
	{theme.BorderFocused, vscode.FocusBorder},
	{theme.BorderDisabled, vscode.PanelBorder},
	{theme.BorderSelected, vscode.PanelBorder},
	{theme.BorderTransparent, vscode.PanelBorder},
	{theme.ElevatedSurfaceBackground, vscode.PanelBackground},
	{theme.SurfaceBackground, vscode.PanelBackground},
	{theme.Background, vscode.EditorBackground},
	{theme.ElementBackground, vscode.ButtonBackground},
	{theme.ElementHover, vscode.ListHoverBackground},
	{theme.ElementSelected, vscode.ListActiveSelectionBackground},
	{theme.GhostElementHover, vscode.ListHoverBackground},
	{theme.DropTargetBackground, vscode.ListDropBackground},
	{theme.Text, vscode.Foreground},
	{theme.TabActiveBackground, vscode.TabActiveBackground},
	{theme.TabInactiveBackground, vscode.TabInactiveBackground},
	{theme.EditorBackground, vscode.EditorBackground},
	{theme.EditorGutterBackground, vscode.EditorBackground},
	{theme.EditorLineNumber, vscode.EditorLineNumberForeground},
	{theme.EditorActiveLineNumber, vscode.EditorForeground},
	{theme.TerminalBackground, vscode.TerminalBackground},
	{theme.TerminalAnsiBrightBlack, vscode.TerminalAnsiBrightBlack},
	{theme.TerminalAnsiBrightRed, vscode.TerminalAnsiBrightRed},
	{theme.TerminalAnsiBrightGreen, vscode.TerminalAnsiBrightGreen},
	{theme.TerminalAnsiBrightYellow, vscode.TerminalAnsiBrightYellow},
	{theme.TerminalAnsiBrightBlue, vscode.TerminalAnsiBrightBlue},
	{theme.TerminalAnsiBrightMagenta, vscode.TerminalAnsiBrightMagenta},
	{theme.TerminalAnsiBrightCyan, vscode.TerminalAnsiBrightCyan},
	{theme.TerminalAnsiBrightWhite, vscode.TerminalAnsiBrightWhite},
	{theme.TerminalAnsiBlack, vscode.TerminalAnsiBlack},
	{theme.TerminalAnsiRed, vscode.TerminalAnsiRed},
	{theme.TerminalAnsiGreen, vscode.TerminalAnsiGreen},
	{theme.TerminalAnsiYellow, vscode.TerminalAnsiYellow},
	{theme.TerminalAnsiBlue, vscode.TerminalAnsiBlue},
	{theme.TerminalAnsiMagenta, vscode.TerminalAnsiMagenta},
	{theme.TerminalAnsiCyan, vscode.TerminalAnsiCyan},
	{theme.TerminalAnsiWhite, vscode.TerminalAnsiWhite},
}

// applyMappings walks a mapping table in order. Absent source keys leave the
// slot unset; the first unparsable value aborts the whole table.
func applyMappings[S ~string](colors vscode.Colors, mappings []fieldMapping[S]) (map[S]color.Hsla, error) {
	out := make(map[S]color.Hsla)
	for _, m := range mappings {
		text, ok := colors.Get(m.Field)
		if !ok {
			continue
		}
		c, err := color.Parse(text)
		if err != nil {
			return nil, &FieldError{Slot: string(m.Slot), Field: m.Field, Err: err}
		}
		out[m.Slot] = c
	}
	return out, nil
}

// MapStatusColors builds the status refinement of src.
func MapStatusColors(src *vscode.Theme) (theme.StatusColorsRefinement, error) {
	m, err := applyMappings(src.Colors, statusColorMappings)
	if err != nil {
		return nil, err
	}
	return theme.StatusColorsRefinement(m), nil
}

// MapThemeColors builds the general UI color refinement of src.
func MapThemeColors(src *vscode.Theme) (theme.ThemeColorsRefinement, error) {
	m, err := applyMappings(src.Colors, themeColorMappings)
	if err != nil {
		return nil, err
	}
	return theme.ThemeColorsRefinement(m), nil
}

// MappedFields returns every source key the converter reads, in table order
// without duplicates.
func MappedFields() []vscode.Field {
	seen := make(map[vscode.Field]bool)
	var fields []vscode.Field
	add := func(f vscode.Field) {
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	for _, m := range statusColorMappings {
		add(m.Field)
	}
	for _, m := range themeColorMappings {
		add(m.Field)
	}
	return fields
}
