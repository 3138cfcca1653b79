package format

import (
	"cmp"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

var blockOpen = regexp.MustCompile(`^([A-Za-z_][\w-]*)(?:\s+"[^"]*")*\s*\{$`)
var attributeLine = regexp.MustCompile(`^\s+([A-Za-z_][\w-]*)\s*=`)
var commentLine = regexp.MustCompile(`^\s*(#|//)`)

// attributeOrder is the canonical attribute order inside manifest blocks.
// Attributes not listed keep their relative order after the listed ones.
var attributeOrder = map[string][]string{
	"family": {"name", "author"},
	"theme":  {"file", "appearance"},
}

// Format takes manifest HCL and returns it in canonical style: hclwrite
// formatting, at most one blank line in a row, no blank lines just inside
// braces, and attributes of family and theme blocks in canonical order.
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing.
func Format(content string) (string, error) {
	formatted := normalize(hclwrite.Format([]byte(content)))
	reordered := reorderAttributes(formatted)
	if reordered != formatted {
		// Reordering can break the alignment of "=", so format again.
		formatted = normalize(hclwrite.Format([]byte(reordered)))
	}
	return formatted, nil
}

// File formats the manifest at path and reports whether its content changed.
// The file is only rewritten when write is true.
func File(path string, write bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	formatted, err := Format(content)
	if err != nil {
		return false, fmt.Errorf("formatting %s: %w", path, err)
	}
	if formatted == content {
		return false, nil
	}

	if write {
		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			return true, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return true, nil
}

func normalize(src []byte) string {
	collapsed := multipleBlankLines.ReplaceAllString(string(src), "\n\n")
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed
}

// reorderAttributes sorts the attributes of top-level blocks listed in
// attributeOrder. Comment lines travel with the attribute below them. Blocks
// containing anything but single-line attributes and comments are left alone.
func reorderAttributes(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		m := blockOpen.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			continue
		}
		order, ok := attributeOrder[m[1]]
		end := closingLine(lines, i+1)
		if !ok || end < 0 {
			out = append(out, lines[i])
			continue
		}

		body, ok := reorderBody(lines[i+1:end], order)
		if !ok {
			body = lines[i+1 : end]
		}
		out = append(out, lines[i])
		out = append(out, body...)
		out = append(out, lines[end])
		i = end
	}

	return strings.Join(out, "\n")
}

func closingLine(lines []string, start int) int {
	for j := start; j < len(lines); j++ {
		if lines[j] == "}" {
			return j
		}
	}
	return -1
}

type bodyItem struct {
	name  string
	lines []string
}

func reorderBody(body []string, order []string) ([]string, bool) {
	var items []bodyItem
	var pending []string

	for _, line := range body {
		if strings.TrimSpace(line) == "" || commentLine.MatchString(line) {
			pending = append(pending, line)
			continue
		}
		m := attributeLine.FindStringSubmatch(line)
		if m == nil {
			return nil, false
		}
		items = append(items, bodyItem{name: m[1], lines: append(pending, line)})
		pending = nil
	}

	slices.SortStableFunc(items, func(a, b bodyItem) int {
		return cmp.Compare(rank(order, a.name), rank(order, b.name))
	})

	out := make([]string, 0, len(body))
	for _, item := range items {
		out = append(out, item.lines...)
	}
	return append(out, pending...), true
}

func rank(order []string, name string) int {
	if i := slices.Index(order, name); i >= 0 {
		return i
	}
	return len(order)
}
