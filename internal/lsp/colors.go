package lsp

import (
	"math"
	"strings"

	"github.com/jsvensson/themeswap/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Hsla) protocol.Color {
	rgba := c.Rgba()
	return protocol.Color{
		Red:   float32(rgba.R),
		Green: float32(rgba.G),
		Blue:  float32(rgba.B),
		Alpha: float32(rgba.A),
	}
}

// colorFromLSP converts a protocol.Color back into a color, clamping each
// channel to [0,1].
func colorFromLSP(c protocol.Color) color.Hsla {
	return color.Rgba{
		R: clampChannel(c.Red),
		G: clampChannel(c.Green),
		B: clampChannel(c.Blue),
		A: clampChannel(c.Alpha),
	}.Hsla()
}

func clampChannel(v float32) float64 {
	return math.Min(math.Max(float64(v), 0), 1)
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces the replacement for a color literal picked in
// the editor. Opaque colors are written as "#rrggbb", translucent ones as
// "#rrggbbaa". Ranges that do not cover a string literal get no presentation.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorFromLSP(params.Color)
	label := c.HexOpaque()
	if _, _, _, a := c.RGB255(); a != 255 {
		label = c.Hex()
	}

	text := newDocument(content).text(params.Range)
	if !strings.HasPrefix(text, `"`) {
		return []protocol.ColorPresentation{}
	}

	return []protocol.ColorPresentation{
		{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: `"` + label + `"`,
			},
		},
	}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorInformation{}, nil
	}
	return documentColors(doc.Analysis), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok || doc.Kind != KindTheme {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(doc.Content, params), nil
}
