// Package preview renders converted themes as terminal color swatches.
package preview

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsvensson/themeswap/internal/color"
	"github.com/jsvensson/themeswap/internal/theme"
)

const swatch = "██"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	slotStyle    = lipgloss.NewStyle().Width(32)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// Render returns the swatch listing for ut. Slots are grouped by refinement
// and sorted by name; unset slots are left out.
func Render(ut *theme.UserTheme) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", ut.Name, ut.Appearance)))
	b.WriteString("\n")

	writeSection(&b, "colors", colorRows(ut.Styles.Colors))
	writeSection(&b, "status", colorRows(ut.Styles.Status))
	writeSection(&b, "syntax", syntaxRows(ut.Styles.Syntax))

	return b.String()
}

func writeSection(b *strings.Builder, heading string, rows []string) {
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(faintStyle.Render("(none)"))
		b.WriteString("\n")
		return
	}
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
}

func colorRows[S ~string](refinement map[S]color.Hsla) []string {
	rows := make([]string, 0, len(refinement))
	for _, slot := range slices.Sorted(maps.Keys(refinement)) {
		rows = append(rows, colorRow(string(slot), refinement[slot]))
	}
	return rows
}

func colorRow(name string, c color.Hsla) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		slotStyle.Render(name),
		swatchStyle(c).Render(swatch),
		"  ",
		c.Hex(),
	)
}

func syntaxRows(syntax *theme.SyntaxTheme) []string {
	if syntax == nil {
		return nil
	}
	rows := make([]string, 0, len(syntax.Highlights))
	for _, h := range syntax.Highlights {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			slotStyle.Render(h.Selector),
			highlightStyle(h.Style).Render("sample"),
			"  ",
			describe(h.Style),
		))
	}
	return rows
}

func swatchStyle(c color.Hsla) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.HexOpaque()))
}

func highlightStyle(s theme.HighlightStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Color != nil {
		style = style.Foreground(lipgloss.Color(s.Color.HexOpaque()))
	}
	if s.FontStyle != nil {
		style = style.Italic(*s.FontStyle == theme.FontStyleItalic)
	}
	if s.FontWeight != nil {
		style = style.Bold(*s.FontWeight == theme.FontWeightBold)
	}
	if s.Underline != nil {
		style = style.Underline(*s.Underline)
	}
	return style
}

// describe lists the set attributes of a style, e.g. "#f92672ff italic".
func describe(s theme.HighlightStyle) string {
	var parts []string
	if s.Color != nil {
		parts = append(parts, s.Color.Hex())
	}
	if s.FontStyle != nil {
		parts = append(parts, string(*s.FontStyle))
	}
	if s.FontWeight != nil {
		parts = append(parts, fmt.Sprintf("weight %d", *s.FontWeight))
	}
	if s.Underline != nil && *s.Underline {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, " ")
}
