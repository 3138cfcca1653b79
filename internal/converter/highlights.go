package converter

import (
	"fmt"
	"strings"

	"github.com/jsvensson/themeswap/internal/color"
	"github.com/jsvensson/themeswap/internal/theme"
	"github.com/jsvensson/themeswap/internal/vscode"
)

// ExtractHighlights flattens token rules into a selector → style mapping.
// Rules are applied in order, so a later rule replaces an earlier one for the
// same selector. Selectors are exact keys; "string" and "string.quoted" are
// unrelated.
func ExtractHighlights(rules []vscode.TokenColor) (*theme.SyntaxTheme, error) {
	styles := make(map[string]theme.HighlightStyle)

	for i, rule := range rules {
		style, err := ruleStyle(rule)
		if err != nil {
			return nil, &RuleError{Index: i, Name: rule.Name, Err: err}
		}
		if style.IsEmpty() {
			continue
		}
		for _, selector := range rule.Scope {
			styles[selector] = style
		}
	}

	return theme.NewSyntaxTheme(styles), nil
}

// ruleStyle builds the style of a single rule. The foreground is validated
// even when the rule has no scope.
func ruleStyle(rule vscode.TokenColor) (theme.HighlightStyle, error) {
	var style theme.HighlightStyle

	if fg, ok := rule.Foreground(); ok {
		c, err := color.Parse(fg)
		if err != nil {
			return theme.HighlightStyle{}, fmt.Errorf("foreground: %w", err)
		}
		style.Color = &c
	}

	if rule.Settings.FontStyle != nil {
		applyFontStyle(&style, *rule.Settings.FontStyle)
	}

	return style, nil
}

// applyFontStyle sets every flag explicitly: an empty fontStyle resets a scope
// to normal text. Words other than italic, bold and underline are ignored.
func applyFontStyle(style *theme.HighlightStyle, fontStyle string) {
	slant := theme.FontStyleNormal
	weight := theme.FontWeightNormal
	underline := false

	for _, word := range strings.Fields(fontStyle) {
		switch strings.ToLower(word) {
		case "italic":
			slant = theme.FontStyleItalic
		case "bold":
			weight = theme.FontWeightBold
		case "underline":
			underline = true
		}
	}

	style.FontStyle = &slant
	style.FontWeight = &weight
	style.Underline = &underline
}
