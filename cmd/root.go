// Package cmd implements the uxl CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uxforge/uxlint/internal/config"
)

// NewRootCmd creates the root uxl command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "uxl",
		Short:         "uxl - UX heuristic linter for UI scaffold trees",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewValidateCmd(newDefaultScaffoldIO()))
	root.AddCommand(NewSuggestCmd(newDefaultScaffoldIO()))
	root.AddCommand(NewPatternsCmd())
	root.AddCommand(NewScoreCmd(newDefaultScaffoldIO()))
	root.AddCommand(NewWatchCmd(newDefaultScaffoldIO()))
	root.AddCommand(NewHistoryCmd())
	root.AddCommand(NewInitCmd())
	return root
}

func rootRunE(_ *cobra.Command, _ []string) error {
	return nil
}

// resolveProjectDir returns the project directory for a command: the
// --project flag value when given, the working directory otherwise.
func resolveProjectDir(project string, getwd func() (string, error)) (string, error) {
	if project != "" {
		return project, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return cwd, nil
}

// openProject loads the configuration governing projectDir.
func openProject(project string, getwd func() (string, error)) (*config.Project, error) {
	dir, err := resolveProjectDir(project, getwd)
	if err != nil {
		return nil, err
	}
	return config.Open(dir)
}

// sanitizeText replaces control characters (runes < 0x20 or == 0x7F) with
// '?' before including scaffold-derived values in human-readable output,
// preventing ANSI injection from node ids and messages.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '?'
		}
		return r
	}, s)
}
