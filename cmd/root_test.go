package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd()
	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"validate", "suggest", "patterns", "score", "watch", "history", "init"} {
		if !names[want] {
			t.Errorf("expected %q subcommand registered on root command", want)
		}
	}
}

func TestNewRootCmd_AllCommandsWireRunE(t *testing.T) {
	root := NewRootCmd()
	for _, sub := range root.Commands() {
		c := sub
		t.Run(c.Name(), func(t *testing.T) {
			if c.RunE == nil {
				t.Errorf("command %q has nil RunE; must wire RunE for error visibility", c.Name())
			}
		})
	}
}

func TestRootCmd_Help(t *testing.T) {
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"--help"})

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "uxl") {
		t.Errorf("expected help output to contain \"uxl\", got: %s", out.String())
	}
}

func TestRootRunE_ReturnsNil(t *testing.T) {
	if err := rootRunE(nil, nil); err != nil {
		t.Errorf("rootRunE() = %v, want nil", err)
	}
}

func TestResolveProjectDir_UsesProjectWhenSet(t *testing.T) {
	got, err := resolveProjectDir("/my/project", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/my/project" {
		t.Errorf("got %q, want %q", got, "/my/project")
	}
}

func TestResolveProjectDir_UsesCWDWhenProjectEmpty(t *testing.T) {
	got, err := resolveProjectDir("", func() (string, error) { return "/cwd", nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/cwd" {
		t.Errorf("got %q, want %q", got, "/cwd")
	}
}

func TestResolveProjectDir_ReturnsErrorWhenGetCWDFails(t *testing.T) {
	_, err := resolveProjectDir("", func() (string, error) { return "", errors.New("getwd failed") })
	if err == nil {
		t.Error("expected error when getwd fails")
	}
}

func TestSanitizeText_ReplacesControlCharacters(t *testing.T) {
	got := sanitizeText("ok\x1b[31mred\x7f")
	want := "ok?[31mred?"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
