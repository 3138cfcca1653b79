package lsp

import (
	"github.com/jsvensson/themeswap/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits returns a single edit replacing the whole manifest with its
// formatted content, or no edits when it is already formatted.
func formatEdits(content string) ([]protocol.TextEdit, error) {
	formatted, err := format.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}

	doc := newDocument(content)
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{},
				End:   doc.positionAt(len(content)),
			},
			NewText: formatted,
		},
	}, nil
}

// textDocumentFormatting handles textDocument/formatting requests for family
// manifests. Theme documents are left to the editor's JSON formatter.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok || doc.Kind != KindManifest {
		return []protocol.TextEdit{}, nil
	}
	return formatEdits(doc.Content)
}
