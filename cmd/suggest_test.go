package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestSuggestCmd_TextOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeScaffold(t, dir, "signup.json", passingFormScaffold)

	stdout, _, err := runCommand(t, NewSuggestCmd(newDefaultScaffoldIO()),
		path, "--project", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Form.Basic  high (0.90)  tree contains a Form node") {
		t.Errorf("expected form suggestion line, got: %s", stdout)
	}
	if !strings.Contains(stdout, "coverage") {
		t.Errorf("expected coverage line, got: %s", stdout)
	}
}

func TestSuggestCmd_NoSignals(t *testing.T) {
	dir := t.TempDir()
	path := writeScaffold(t, dir, "plain.json", plainTextScaffold)

	stdout, _, err := runCommand(t, NewSuggestCmd(newDefaultScaffoldIO()),
		path, "--project", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "no pattern signals found") {
		t.Errorf("expected empty-signal notice, got: %s", stdout)
	}
}

func TestSuggestCmd_JSONWithGaps(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, `patterns:
  activated: []
  auto: false
`)
	path := writeScaffold(t, dir, "signup.json", passingFormScaffold)

	stdout, _, err := runCommand(t, NewSuggestCmd(newDefaultScaffoldIO()),
		path, "--project", dir, "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out suggestOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("decoding stdout: %v", err)
	}
	if len(out.Suggestions) != 1 || out.Suggestions[0].Pattern != "Form.Basic" {
		t.Errorf("suggestions = %v, want one Form.Basic entry", out.Suggestions)
	}
	if out.Coverage.Activated != 0 || out.Coverage.NTotal != 4 {
		t.Errorf("coverage = %d/%d, want 0/4", out.Coverage.Activated, out.Coverage.NTotal)
	}
	if len(out.Coverage.Gaps) != 1 || out.Coverage.Gaps[0].Pattern != "Form.Basic" {
		t.Errorf("gaps = %v, want one Form.Basic gap", out.Coverage.Gaps)
	}
}

func TestSuggestCmd_AutoActivationClosesGaps(t *testing.T) {
	dir := t.TempDir()
	path := writeScaffold(t, dir, "signup.json", passingFormScaffold)

	stdout, _, err := runCommand(t, NewSuggestCmd(newDefaultScaffoldIO()),
		path, "--project", dir, "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out suggestOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("decoding stdout: %v", err)
	}
	if len(out.Coverage.Gaps) != 0 {
		t.Errorf("gaps = %v, want none under auto activation", out.Coverage.Gaps)
	}
	if out.Coverage.Activated != 1 {
		t.Errorf("activated = %d, want 1", out.Coverage.Activated)
	}
}

func TestSuggestCmd_ReadError(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCommand(t, NewSuggestCmd(&mockScaffoldIO{err: errors.New("disk error")}),
		"whatever.json", "--project", dir)
	if err == nil {
		t.Fatal("expected error when the scaffold cannot be read")
	}
	if !strings.Contains(err.Error(), "reading scaffold") {
		t.Errorf("unexpected error message: %v", err)
	}
}
