package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDocumentPositions(t *testing.T) {
	// "é" is two bytes and one UTF-16 unit; "😀" is four bytes and two units.
	doc := newDocument("aé😀b\nx")

	tests := []struct {
		name   string
		offset int
		pos    protocol.Position
	}{
		{"start", 0, protocol.Position{Line: 0, Character: 0}},
		{"after multibyte", 3, protocol.Position{Line: 0, Character: 2}},
		{"after surrogate pair", 7, protocol.Position{Line: 0, Character: 4}},
		{"second line", 9, protocol.Position{Line: 1, Character: 0}},
		{"end", 10, protocol.Position{Line: 1, Character: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.positionAt(tt.offset); got != tt.pos {
				t.Errorf("positionAt(%d) = %+v, want %+v", tt.offset, got, tt.pos)
			}
			if got := doc.offsetAt(tt.pos); got != tt.offset {
				t.Errorf("offsetAt(%+v) = %d, want %d", tt.pos, got, tt.offset)
			}
		})
	}
}

func TestDocumentOffsetClamps(t *testing.T) {
	doc := newDocument("ab\ncd")

	if got := doc.offsetAt(protocol.Position{Line: 0, Character: 10}); got != 2 {
		t.Errorf("past line end: got %d, want 2", got)
	}
	if got := doc.offsetAt(protocol.Position{Line: 5}); got != 5 {
		t.Errorf("past last line: got %d, want 5", got)
	}
	if got := doc.positionAt(99); got != (protocol.Position{Line: 1, Character: 2}) {
		t.Errorf("past end: got %+v", got)
	}
}

func TestDocumentText(t *testing.T) {
	doc := newDocument("{\n  \"a\": \"#fff\"\n}")
	rng := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 7},
		End:   protocol.Position{Line: 1, Character: 13},
	}
	if got := doc.text(rng); got != `"#fff"` {
		t.Errorf("text() = %q", got)
	}
}
