package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsvensson/themeswap/internal/theme"
)

const sampleTheme = `{
  "name": "Sample Dark",
  "type": "vs-dark",
  "colors": { "editor.background": "#1e1e1e" },
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertWritesStdoutByDefault(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "sample.json", sampleTheme)

	stdout, _, err := execute(t, "convert", path, "--author", "Tester")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	var family theme.UserThemeFamily
	if err := json.Unmarshal([]byte(stdout), &family); err != nil {
		t.Fatalf("stdout is not a family document: %v\n%s", err, stdout)
	}
	if family.Name != "Sample Dark" || family.Author != "Tester" {
		t.Errorf("family = %q by %q", family.Name, family.Author)
	}
	if len(family.Themes) != 1 || family.Themes[0].Appearance != theme.Dark {
		t.Errorf("themes = %+v", family.Themes)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("convert created files: %v", entries)
	}
}

func TestConvertWritesOutFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sample.json", sampleTheme)
	out := filepath.Join(dir, "converted.json")

	stdout, _, err := execute(t, "convert", path, "--out", out, "--name", "Renamed", "--appearance", "light")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if stdout != "Wrote "+out+"\n" {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var family theme.UserThemeFamily
	if err := json.Unmarshal(data, &family); err != nil {
		t.Fatal(err)
	}
	if family.Themes[0].Name != "Renamed" || family.Themes[0].Appearance != theme.Light {
		t.Errorf("theme = %q (%s)", family.Themes[0].Name, family.Themes[0].Appearance)
	}
}

func TestConvertInvalidColorFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"name": "Bad", "type": "dark", "colors": {"editor.background": "nope"}}`)

	_, _, err := execute(t, "convert", path)
	if err == nil || !strings.Contains(err.Error(), "editor_background") {
		t.Errorf("error = %v, want it to name editor_background", err)
	}
}

func TestImportWritesFamily(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.json", sampleTheme)
	manifest := writeFile(t, dir, "family.hcl", `family {
  name   = "Sample Family"
  author = "Tester"
}

theme "Sample Dark" {
  file       = "sample.json"
  appearance = "dark"
}
`)
	outDir := filepath.Join(dir, "out")

	stdout, _, err := execute(t, "import", "--manifest", manifest, "--out", outDir)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	want := filepath.Join(outDir, "sample-family.json")
	if !strings.Contains(stdout, want) {
		t.Errorf("stdout = %q, want it to mention %s", stdout, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("family document not written: %v", err)
	}
}

func TestFmtCheck(t *testing.T) {
	dir := t.TempDir()
	unformatted := "family{name=\"X\"}\n"
	path := writeFile(t, dir, "family.hcl", unformatted)

	stdout, _, err := execute(t, "fmt", "--check", path)
	if !errors.Is(err, errNeedsFormatting) {
		t.Errorf("error = %v, want errNeedsFormatting", err)
	}
	if strings.TrimSpace(stdout) != path {
		t.Errorf("stdout = %q, want %q", stdout, path)
	}
	data, _ := os.ReadFile(path)
	if string(data) != unformatted {
		t.Error("--check modified the file")
	}

	if _, _, err := execute(t, "fmt", path); err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if _, _, err := execute(t, "fmt", "--check", path); err != nil {
		t.Errorf("formatted file still fails --check: %v", err)
	}
}

func TestFmtMissingFile(t *testing.T) {
	_, stderr, err := execute(t, "fmt", filepath.Join(t.TempDir(), "missing.hcl"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(stderr, "missing.hcl") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestPreview(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sample.json", sampleTheme)

	stdout, _, err := execute(t, "preview", path)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(stdout, "#1e1e1eff") {
		t.Errorf("preview output missing background:\n%s", stdout)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(stdout) != version {
		t.Errorf("version = %q", stdout)
	}
}
