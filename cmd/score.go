package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uxforge/uxlint/internal/report"
)

// NewScoreCmd creates the score subcommand.
func NewScoreCmd(io ScaffoldIO) *cobra.Command {
	return newScoreCmdWithGetCWD(io, os.Getwd)
}

func newScoreCmdWithGetCWD(io ScaffoldIO, getwd func() (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "score <scaffold>",
		Short:        "Report the fidelity score for a scaffold",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			patterns, _ := cmd.Flags().GetStringArray("pattern")
			jsonMode, _ := cmd.Flags().GetBool("json")
			pretty, _ := cmd.Flags().GetBool("pretty")
			htmlFlag, _ := cmd.Flags().GetBool("html")

			proj, err := openProject(project, getwd)
			if err != nil {
				return err
			}

			res, err := runValidation(cmd.Context(), io, proj, args[0], patterns)
			if err != nil {
				return err
			}

			if htmlFlag {
				if err := writeArtifacts(res, proj, true); err != nil {
					return err
				}
			}

			switch {
			case jsonMode:
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(res.Score); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
			case pretty:
				fmt.Fprint(cmd.OutOrStdout(), report.RenderPretty(res.Artifact))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "score %d (%s)\n", res.Score.Score, res.Score.Band)
			}
			return nil
		},
	}

	cmd.Flags().String("project", "", "project directory (default: current directory)")
	cmd.Flags().StringArray("pattern", nil, "pattern to validate (repeatable; overrides configuration)")
	cmd.Flags().Bool("json", false, "output the score as JSON")
	cmd.Flags().Bool("pretty", false, "styled console report")
	cmd.Flags().Bool("html", false, "also write flow.json and report.html")

	return cmd
}
