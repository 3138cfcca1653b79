// Package vscode models VS Code color themes as read from disk.
package vscode

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Theme is a parsed VS Code color theme document.
type Theme struct {
	Name        string       `json:"name,omitempty"`
	Type        string       `json:"type,omitempty"`
	Colors      Colors       `json:"colors"`
	TokenColors []TokenColor `json:"tokenColors"`
}

// Colors maps color keys to their raw values. A nil value is a JSON null.
type Colors map[Field]*string

// Get returns the value of a color key. Missing keys, null values and blank
// strings all report false.
func (c Colors) Get(f Field) (string, bool) {
	v, ok := c[f]
	if !ok || v == nil || strings.TrimSpace(*v) == "" {
		return "", false
	}
	return *v, true
}

// UnknownFields returns the keys outside the recognized vocabulary, sorted.
func (c Colors) UnknownFields() []Field {
	var unknown []Field
	for f := range c {
		if !f.Known() {
			unknown = append(unknown, f)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// TokenColor is one entry of "tokenColors".
type TokenColor struct {
	Name     string        `json:"name,omitempty"`
	Scope    Scope         `json:"scope,omitempty"`
	Settings TokenSettings `json:"settings"`
}

// TokenSettings holds the style applied to the scopes of a TokenColor.
type TokenSettings struct {
	Foreground *string `json:"foreground,omitempty"`
	Background *string `json:"background,omitempty"`
	FontStyle  *string `json:"fontStyle,omitempty"`
}

// Scope is the list of selectors of a token rule. In JSON it is either a
// string or an array of strings; a string may hold several comma-separated
// selectors.
type Scope []string

func (s *Scope) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*s = nil
	case string:
		*s = splitSelectors(nil, v)
	case []any:
		var selectors Scope
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("scope[%d]: expected string, got %T", i, item)
			}
			selectors = splitSelectors(selectors, str)
		}
		*s = selectors
	default:
		return fmt.Errorf("scope: expected string or array of strings, got %T", raw)
	}
	return nil
}

func splitSelectors(dst Scope, s string) Scope {
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			dst = append(dst, part)
		}
	}
	return dst
}

// Foreground returns the rule's foreground color text, if set and non-blank.
func (t TokenColor) Foreground() (string, bool) {
	if t.Settings.Foreground == nil || strings.TrimSpace(*t.Settings.Foreground) == "" {
		return "", false
	}
	return *t.Settings.Foreground, true
}

// Appearance maps the theme's "type" onto "light" or "dark".
func (t *Theme) Appearance() (string, bool) {
	switch strings.ToLower(t.Type) {
	case "dark", "vs-dark", "hc-black", "hc-dark":
		return "dark", true
	case "light", "vs", "hc-light":
		return "light", true
	}
	return "", false
}
