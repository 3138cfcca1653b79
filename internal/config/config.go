// Package config loads theme family manifests.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/themeswap/internal/theme"
	"github.com/zclconf/go-cty/cty"
)

// Family is a parsed family manifest.
type Family struct {
	Name   string
	Author string
	Themes []Theme
}

// Theme is one theme entry of a manifest.
type Theme struct {
	Name       string
	Path       string // theme file, resolved against the manifest directory
	Appearance string
}

var familyAttrs = map[string]bool{"name": true, "author": true}
var themeAttrs = map[string]bool{"file": true, "appearance": true}

// Load parses an HCL family manifest.
func Load(path string) (*Family, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	file, diags := hclsyntax.ParseConfig(src, path, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body := file.Body.(*hclsyntax.Body)
	if len(body.Attributes) > 0 {
		return nil, fmt.Errorf("unexpected top-level attributes; use family and theme blocks")
	}

	family := &Family{}
	dir := filepath.Dir(path)
	seen := make(map[string]bool)
	foundFamily := false

	for _, block := range body.Blocks {
		switch block.Type {
		case "family":
			if foundFamily {
				return nil, fmt.Errorf("duplicate family block")
			}
			foundFamily = true
			if err := parseFamily(block, family); err != nil {
				return nil, err
			}
		case "theme":
			entry, err := parseTheme(block, dir)
			if err != nil {
				return nil, err
			}
			if seen[entry.Name] {
				return nil, fmt.Errorf("duplicate theme %q", entry.Name)
			}
			seen[entry.Name] = true
			family.Themes = append(family.Themes, entry)
		default:
			return nil, fmt.Errorf("unknown block %q (valid: family, theme)", block.Type)
		}
	}

	if !foundFamily {
		return nil, fmt.Errorf("no family block found")
	}
	if len(family.Themes) == 0 {
		return nil, fmt.Errorf("no theme blocks found")
	}

	return family, nil
}

func parseFamily(block *hclsyntax.Block, family *Family) error {
	if len(block.Labels) != 0 {
		return fmt.Errorf("family block takes no labels")
	}
	attrs, err := stringAttributes(block.Body, "family", familyAttrs)
	if err != nil {
		return err
	}
	if attrs["name"] == "" {
		return fmt.Errorf("family.name is required")
	}
	family.Name = attrs["name"]
	family.Author = attrs["author"]
	return nil
}

func parseTheme(block *hclsyntax.Block, dir string) (Theme, error) {
	if len(block.Labels) != 1 || block.Labels[0] == "" {
		return Theme{}, fmt.Errorf("theme block needs exactly one label, the theme name")
	}
	name := block.Labels[0]
	prefix := fmt.Sprintf("theme %q", name)

	attrs, err := stringAttributes(block.Body, prefix, themeAttrs)
	if err != nil {
		return Theme{}, err
	}
	if attrs["file"] == "" {
		return Theme{}, fmt.Errorf("%s.file is required", prefix)
	}
	if _, err := theme.ParseAppearance(attrs["appearance"]); err != nil {
		return Theme{}, fmt.Errorf("%s.appearance: %w", prefix, err)
	}

	path := attrs["file"]
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	return Theme{
		Name:       name,
		Path:       path,
		Appearance: attrs["appearance"],
	}, nil
}

// stringAttributes evaluates the attributes of a block body, which must all
// be known names with string values.
func stringAttributes(body *hclsyntax.Body, prefix string, known map[string]bool) (map[string]string, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", prefix, diags.Error())
	}

	result := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		if !known[name] {
			return nil, fmt.Errorf("%s: unknown attribute %q", prefix, name)
		}
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating %s.%s: %s", prefix, name, diags.Error())
		}
		if val.IsNull() || val.Type() != cty.String {
			return nil, fmt.Errorf("%s.%s: expected string, got %s", prefix, name, val.Type().FriendlyName())
		}
		result[name] = val.AsString()
	}
	return result, nil
}
