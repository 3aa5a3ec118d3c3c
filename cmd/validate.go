package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uxforge/uxlint/internal/report"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd(io ScaffoldIO) *cobra.Command {
	return newValidateCmdWithGetCWD(io, os.Getwd)
}

func newValidateCmdWithGetCWD(io ScaffoldIO, getwd func() (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate <scaffold>",
		Short:        "Validate a scaffold against activated patterns and write flow.json",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			patterns, _ := cmd.Flags().GetStringArray("pattern")
			jsonMode, _ := cmd.Flags().GetBool("json")
			pretty, _ := cmd.Flags().GetBool("pretty")
			htmlFlag, _ := cmd.Flags().GetBool("html")
			strict, _ := cmd.Flags().GetBool("strict")

			proj, err := openProject(project, getwd)
			if err != nil {
				return err
			}

			res, err := runValidation(cmd.Context(), io, proj, args[0], patterns)
			if err != nil {
				return err
			}

			if err := writeArtifacts(res, proj, htmlFlag || proj.Config.Output.HTML); err != nil {
				return err
			}
			if err := saveHistory(cmd.Context(), proj, res.Artifact); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: saving history: %v\n", err)
			}

			switch {
			case jsonMode:
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(res.Artifact); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
			case pretty || proj.Config.Output.Pretty:
				fmt.Fprint(cmd.OutOrStdout(), report.RenderPretty(res.Artifact))
			default:
				fmt.Fprint(cmd.OutOrStdout(), report.RenderText(res.Artifact))
			}

			mustFailed, shouldFailed := failureCounts(res.Summary)
			if res.Summary.HasMustFailures {
				return fmt.Errorf("validation failed: %d must-level failure(s)", mustFailed)
			}
			if strict && shouldFailed > 0 {
				return fmt.Errorf("strict mode: %d should-level failure(s)", shouldFailed)
			}
			return nil
		},
	}

	cmd.Flags().String("project", "", "project directory (default: current directory)")
	cmd.Flags().StringArray("pattern", nil, "pattern to validate (repeatable; overrides configuration)")
	cmd.Flags().Bool("json", false, "write the flow.json artifact to stdout")
	cmd.Flags().Bool("pretty", false, "styled console summary")
	cmd.Flags().Bool("html", false, "also write report.html")
	cmd.Flags().Bool("strict", false, "treat should-level failures as errors")

	return cmd
}
