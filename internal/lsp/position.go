package lsp

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tailscale/hujson"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// document maps between byte offsets and LSP positions, which count
// characters in UTF-16 code units.
type document struct {
	content    string
	lineStarts []int
}

func newDocument(content string) *document {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &document{content: content, lineStarts: starts}
}

// positionAt converts a byte offset to an LSP position.
func (d *document) positionAt(offset int) protocol.Position {
	offset = min(max(offset, 0), len(d.content))
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1

	var char int
	for _, r := range d.content[d.lineStarts[line]:offset] {
		char += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(char)}
}

// offsetAt converts an LSP position to a byte offset. Positions past the end
// of a line clamp to the line end.
func (d *document) offsetAt(pos protocol.Position) int {
	if int(pos.Line) >= len(d.lineStarts) {
		return len(d.content)
	}
	offset := d.lineStarts[pos.Line]
	var char uint32
	for offset < len(d.content) && d.content[offset] != '\n' && char < pos.Character {
		r, size := utf8.DecodeRuneInString(d.content[offset:])
		char += uint32(utf16.RuneLen(r))
		offset += size
	}
	return offset
}

// rangeOf returns the source range of a parsed value, excluding the
// whitespace and comments around it.
func (d *document) rangeOf(v hujson.Value) protocol.Range {
	return protocol.Range{
		Start: d.positionAt(v.StartOffset),
		End:   d.positionAt(v.EndOffset),
	}
}

// text returns the source text covered by rng.
func (d *document) text(rng protocol.Range) string {
	start, end := d.offsetAt(rng.Start), d.offsetAt(rng.End)
	if end < start {
		return ""
	}
	return d.content[start:end]
}
