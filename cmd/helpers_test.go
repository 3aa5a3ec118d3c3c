package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// passingFormScaffold validates cleanly under Form.Basic and triggers a
// high-confidence Form.Basic suggestion.
const passingFormScaffold = `{
  "version": "1.0.0",
  "root": {
    "id": "root",
    "type": "stack",
    "children": [
      {
        "id": "signup",
        "type": "form",
        "fields": [
          {"id": "email", "type": "field", "label": "Email", "required": true}
        ],
        "actions": [
          {"id": "submit", "type": "button", "text": "Create account", "roleHint": "primary"}
        ]
      }
    ]
  }
}`

// hiddenPrimaryScaffold buries a primary button inside an initially
// collapsed section, a must-level Progressive.Disclosure failure.
const hiddenPrimaryScaffold = `{
  "version": "1.0.0",
  "root": {
    "id": "root",
    "type": "stack",
    "children": [
      {"id": "name", "type": "field", "label": "Name", "required": true},
      {"id": "toggle", "type": "button", "text": "Show advanced"},
      {
        "id": "adv",
        "type": "box",
        "behaviors": {
          "disclosure": {"collapsible": true, "controlsId": "toggle", "defaultState": "collapsed"}
        },
        "child": {"id": "submit", "type": "button", "text": "Submit", "roleHint": "primary"}
      }
    ]
  }
}`

// wideTableScaffold passes Table.Simple's must rules but fails both of its
// should rules (too many columns, no caption).
const wideTableScaffold = `{
  "version": "1.0.0",
  "root": {
    "id": "root",
    "type": "stack",
    "children": [
      {"id": "orders", "type": "table", "columns": ["a","b","c","d","e","f","g","h","i"]}
    ]
  }
}`

// plainTextScaffold carries no pattern signals at all.
const plainTextScaffold = `{
  "version": "1.0.0",
  "root": {
    "id": "root",
    "type": "stack",
    "children": [
      {"id": "greeting", "type": "text", "text": "Welcome"}
    ]
  }
}`

// writeScaffold writes a scaffold fixture into dir and returns its path.
func writeScaffold(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeProjectConfig writes .uxlint/uxlint.yaml under root.
func writeProjectConfig(t *testing.T, root, body string) {
	t.Helper()
	dir := filepath.Join(root, ".uxlint")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "uxlint.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

// runCommand executes c with args, capturing stdout and stderr.
func runCommand(t *testing.T, c *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	c.SetOut(out)
	c.SetErr(errOut)
	c.SetArgs(args)
	err = c.Execute()
	return out.String(), errOut.String(), err
}

// mockScaffoldIO returns canned scaffold bytes or a canned error.
type mockScaffoldIO struct {
	data []byte
	err  error
}

func (m *mockScaffoldIO) ReadScaffold(_ context.Context, _ string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}
