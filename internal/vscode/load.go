package vscode

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Parse decodes a theme document. Comments and trailing commas are allowed,
// as VS Code allows them.
func Parse(data []byte) (*Theme, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	var theme Theme
	if err := json.Unmarshal(std, &theme); err != nil {
		return nil, fmt.Errorf("decoding theme: %w", err)
	}
	return &theme, nil
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	theme, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return theme, nil
}
