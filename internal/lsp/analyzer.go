package lsp

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsvensson/themeswap/internal/color"
	"github.com/jsvensson/themeswap/internal/vscode"
	"github.com/tailscale/hujson"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var DiagError = protocol.DiagnosticSeverityError

const diagSource = "themeswap"

// AnalysisResult holds all information produced by analyzing a theme document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a parsed color literal at a specific source range.
// The range covers the JSON string including its quotes.
type ColorLocation struct {
	Range protocol.Range
	Color color.Hsla
	Field string // "editor_background", "tokenColors[3].settings.foreground"
}

// hujson reports syntax errors as "hujson: line N, column M: ...".
var syntaxErrorPos = regexp.MustCompile(`line (\d+), column (\d+)`)

// Analyze parses a VS Code theme document and produces diagnostics and color
// locations. Unlike the converter it does not stop at the first invalid color:
// every malformed value gets its own diagnostic.
func Analyze(content string) *AnalysisResult {
	result := &AnalysisResult{}
	doc := newDocument(content)

	root, err := hujson.Parse([]byte(content))
	if err != nil {
		result.addError(syntaxErrorRange(doc, err), err.Error())
		return result
	}

	obj, ok := root.Value.(*hujson.Object)
	if !ok {
		result.addError(doc.rangeOf(root), "theme must be a JSON object")
		return result
	}

	for _, m := range obj.Members {
		switch memberName(m) {
		case "colors":
			result.analyzeColors(doc, m.Value)
		case "tokenColors":
			result.analyzeTokenColors(doc, m.Value)
		}
	}

	return result
}

func (r *AnalysisResult) analyzeColors(doc *document, v hujson.Value) {
	obj, ok := v.Value.(*hujson.Object)
	if !ok {
		if !isNull(v) {
			r.addError(doc.rangeOf(v), "colors must be an object")
		}
		return
	}

	for _, m := range obj.Members {
		r.analyzeColorValue(doc, m.Value, vscode.Field(memberName(m)).Name())
	}
}

func (r *AnalysisResult) analyzeTokenColors(doc *document, v hujson.Value) {
	arr, ok := v.Value.(*hujson.Array)
	if !ok {
		if !isNull(v) {
			r.addError(doc.rangeOf(v), "tokenColors must be an array")
		}
		return
	}

	for i, rule := range arr.Elements {
		ruleObj, ok := rule.Value.(*hujson.Object)
		if !ok {
			r.addError(doc.rangeOf(rule), fmt.Sprintf("tokenColors[%d] must be an object", i))
			continue
		}
		for _, m := range ruleObj.Members {
			if memberName(m) != "settings" {
				continue
			}
			settings, ok := m.Value.Value.(*hujson.Object)
			if !ok {
				continue
			}
			for _, s := range settings.Members {
				if memberName(s) == "foreground" {
					r.analyzeColorValue(doc, s.Value, fmt.Sprintf("tokenColors[%d].settings.foreground", i))
				}
			}
		}
	}
}

// analyzeColorValue records v as a color location, or a diagnostic if it
// cannot be parsed. Null and blank strings are treated as absent, matching
// the loader.
func (r *AnalysisResult) analyzeColorValue(doc *document, v hujson.Value, field string) {
	if isNull(v) {
		return
	}

	s, ok := stringValue(v)
	if !ok {
		r.addError(doc.rangeOf(v), fmt.Sprintf("%s: expected a color string", field))
		return
	}
	if strings.TrimSpace(s) == "" {
		return
	}

	c, err := color.Parse(s)
	if err != nil {
		r.addError(doc.rangeOf(v), fmt.Sprintf("%s: %v", field, err))
		return
	}

	r.Colors = append(r.Colors, ColorLocation{
		Range: doc.rangeOf(v),
		Color: c,
		Field: field,
	})
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng protocol.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &DiagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

func memberName(m hujson.ObjectMember) string {
	name, _ := stringValue(m.Name)
	return name
}

// stringValue returns the unquoted value of a JSON string literal.
func stringValue(v hujson.Value) (string, bool) {
	lit, ok := v.Value.(hujson.Literal)
	if !ok || lit.Kind() != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(lit, &s); err != nil {
		return "", false
	}
	return s, true
}

func isNull(v hujson.Value) bool {
	lit, ok := v.Value.(hujson.Literal)
	return ok && lit.Kind() == 'n'
}

// syntaxErrorRange places a syntax error at the reported position, or at the
// start of the document when the error carries none.
func syntaxErrorRange(doc *document, err error) protocol.Range {
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		pos := doc.positionAt(int(serr.Offset))
		return protocol.Range{Start: pos, End: pos}
	}

	m := syntaxErrorPos.FindStringSubmatch(err.Error())
	if m == nil {
		return protocol.Range{}
	}
	line, _ := strconv.Atoi(m[1])
	column, _ := strconv.Atoi(m[2])
	if line < 1 || line > len(doc.lineStarts) {
		return protocol.Range{}
	}
	pos := doc.positionAt(doc.lineStarts[line-1] + max(column-1, 0))
	return protocol.Range{Start: pos, End: pos}
}
