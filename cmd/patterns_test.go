package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPatternsCmd_TextOutput(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runCommand(t, NewPatternsCmd(), "--project", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Form.Basic  must 2  should 3",
		"Guided.Flow  must 2  should 2",
		"Progressive.Disclosure  must 3  should 3",
		"Table.Simple  must 1  should 2",
		"aliases: disclosure, progressive-disclosure",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q, got:\n%s", want, stdout)
		}
	}
}

func TestPatternsCmd_JSONOutput(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runCommand(t, NewPatternsCmd(), "--project", dir, "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []patternInfo
	if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
		t.Fatalf("decoding stdout: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d patterns, want 4", len(rows))
	}
	if rows[0].Name != "Form.Basic" {
		t.Errorf("first pattern = %q, want Form.Basic (canonical order)", rows[0].Name)
	}
	for _, row := range rows {
		if row.Name == "Progressive.Disclosure" {
			if row.Must != 3 || row.Should != 3 {
				t.Errorf("Progressive.Disclosure counts = %d/%d, want 3/3", row.Must, row.Should)
			}
			if len(row.Aliases) != 2 {
				t.Errorf("Progressive.Disclosure aliases = %v, want 2 entries", row.Aliases)
			}
		}
	}
}

func TestPatternsCmd_IncludesProjectRules(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, `rules:
  - id: button-has-text
    description: buttons carry a visible label
    appliesTo: button
    level: must
    expr: node.text != ""
`)

	stdout, _, err := runCommand(t, NewPatternsCmd(), "--project", dir, "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []patternInfo
	if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
		t.Fatalf("decoding stdout: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d patterns, want 5 with project rules", len(rows))
	}
	found := false
	for _, row := range rows {
		if row.Name == "Project.Custom" {
			found = true
			if row.Must != 1 || row.Should != 0 {
				t.Errorf("Project.Custom counts = %d/%d, want 1/0", row.Must, row.Should)
			}
		}
	}
	if !found {
		t.Error("Project.Custom missing from pattern list")
	}
}

func TestPatternsCmd_BrokenConfigReported(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "patterns: [unclosed")

	_, _, err := runCommand(t, NewPatternsCmd(), "--project", dir)
	if err == nil {
		t.Fatal("expected error for malformed project configuration")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("unexpected error message: %v", err)
	}
}
