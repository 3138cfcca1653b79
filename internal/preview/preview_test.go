package preview

import (
	"strings"
	"testing"

	"github.com/jsvensson/themeswap/internal/color"
	"github.com/jsvensson/themeswap/internal/theme"
)

func mustParse(t *testing.T, s string) color.Hsla {
	t.Helper()
	c, err := color.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return c
}

func TestRender(t *testing.T) {
	pink := mustParse(t, "#f92672")
	italic := theme.FontStyleItalic
	bold := theme.FontWeightBold

	ut := &theme.UserTheme{
		Name:       "Monokai",
		Appearance: theme.Dark,
		Styles: theme.Styles{
			Colors: theme.ThemeColorsRefinement{
				theme.Text:       mustParse(t, "#f8f8f2"),
				theme.Background: mustParse(t, "#272822"),
			},
			Status: theme.StatusColorsRefinement{
				theme.StatusError: mustParse(t, "#f44747"),
			},
			Syntax: theme.NewSyntaxTheme(map[string]theme.HighlightStyle{
				"keyword": {Color: &pink, FontWeight: &bold},
				"comment": {FontStyle: &italic},
			}),
		},
	}

	out := Render(ut)

	for _, want := range []string{
		"Monokai (dark)",
		"background", "#272822ff",
		"text", "#f8f8f2ff",
		"error", "#f44747ff",
		"keyword", "#f92672ff weight 700",
		"comment", "italic",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "background") > strings.Index(out, "text") {
		t.Error("color slots are not sorted")
	}
	if strings.Index(out, "comment") > strings.Index(out, "keyword") {
		t.Error("highlights are not sorted")
	}
}

func TestRenderEmptySections(t *testing.T) {
	out := Render(&theme.UserTheme{Name: "Empty", Appearance: theme.Light})
	if got := strings.Count(out, "(none)"); got != 3 {
		t.Errorf("got %d empty sections, want 3:\n%s", got, out)
	}
}

func TestDescribe(t *testing.T) {
	underline := true
	noUnderline := false
	normal := theme.FontStyleNormal

	tests := []struct {
		name  string
		style theme.HighlightStyle
		want  string
	}{
		{"empty", theme.HighlightStyle{}, ""},
		{"underline", theme.HighlightStyle{Underline: &underline}, "underline"},
		{"explicit no underline", theme.HighlightStyle{Underline: &noUnderline}, ""},
		{"normal", theme.HighlightStyle{FontStyle: &normal}, "normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe(tt.style); got != tt.want {
				t.Errorf("describe() = %q, want %q", got, tt.want)
			}
		})
	}
}
