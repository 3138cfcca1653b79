package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestFormatEdits(t *testing.T) {
	input := "family{\nauthor=\"morhetz\"\nname=\"Gruvbox\"\n}\n"
	want := "family {\n  name   = \"Gruvbox\"\n  author = \"morhetz\"\n}\n"

	edits, err := formatEdits(input)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	if edits[0].NewText != want {
		t.Errorf("NewText = %q, want %q", edits[0].NewText, want)
	}
	wantRange := protocol.Range{End: protocol.Position{Line: 4, Character: 0}}
	if edits[0].Range != wantRange {
		t.Errorf("range = %+v, want %+v", edits[0].Range, wantRange)
	}
}

func TestFormatEditsAlreadyFormatted(t *testing.T) {
	input := "family {\n  name = \"Gruvbox\"\n}\n"

	edits, err := formatEdits(input)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if len(edits) != 0 {
		t.Errorf("got %d edits for formatted input, want 0", len(edits))
	}
}
