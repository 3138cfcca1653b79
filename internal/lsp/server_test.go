package lsp

import (
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// recorder captures the notifications a handler sends.
type recorder struct {
	published []protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) protocol.PublishDiagnosticsParams {
	t.Helper()
	if len(r.published) == 0 {
		t.Fatal("no diagnostics published")
	}
	return r.published[len(r.published)-1]
}

func TestServerPublishesDiagnostics(t *testing.T) {
	s := NewServer("test", 0)
	rec := &recorder{}
	uri := "file:///themes/test.json"

	err := s.textDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  protocol.DocumentUri(uri),
			Text: `{"colors": {"foreground": "nope"}}`,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := rec.last(t); string(got.URI) != uri || len(got.Diagnostics) != 1 {
		t.Errorf("after open: %+v", got)
	}

	err = s.textDocumentDidChange(rec.context(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: `{"colors": {"foreground": "#fff"}}`},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := rec.last(t)
	if got.Diagnostics == nil || len(got.Diagnostics) != 0 {
		t.Errorf("after fix: want empty non-nil diagnostics, got %+v", got.Diagnostics)
	}

	colors, err := s.textDocumentDocumentColor(nil, &protocol.DocumentColorParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 1 {
		t.Errorf("got %d document colors, want 1", len(colors))
	}

	err = s.textDocumentDidClose(rec.context(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := rec.last(t); len(got.Diagnostics) != 0 {
		t.Errorf("after close: %+v", got.Diagnostics)
	}
	if _, ok := s.docs.Get(uri); ok {
		t.Error("document still open after close")
	}
}

func TestServerSkipsManifests(t *testing.T) {
	s := NewServer("test", 0)
	rec := &recorder{}
	uri := "file:///themes/family.hcl"

	err := s.textDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  protocol.DocumentUri(uri),
			Text: "family{name=\"X\"}\n",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := rec.last(t); len(got.Diagnostics) != 0 {
		t.Errorf("manifest got diagnostics: %+v", got.Diagnostics)
	}

	edits, err := s.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 || edits[0].NewText != "family { name = \"X\" }\n" {
		t.Errorf("edits = %+v", edits)
	}
	colors, err := s.textDocumentDocumentColor(nil, &protocol.DocumentColorParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 0 {
		t.Errorf("manifest got document colors: %+v", colors)
	}
}

func TestServerDoesNotFormatThemes(t *testing.T) {
	s := NewServer("test", 0)
	rec := &recorder{}
	uri := "file:///themes/test.json"

	err := s.textDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: protocol.DocumentUri(uri), Text: `{"name":"x"}`},
	})
	if err != nil {
		t.Fatal(err)
	}

	edits, err := s.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentUri(uri)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 0 {
		t.Errorf("theme document got formatting edits: %+v", edits)
	}
}
