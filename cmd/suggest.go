package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uxforge/uxlint/internal/scaffold"
	"github.com/uxforge/uxlint/internal/validate"
)

// suggestOutput is the JSON output schema for the suggest command.
type suggestOutput struct {
	Suggestions []validate.PatternSuggestion `json:"suggestions"`
	Coverage    validate.CoverageResult      `json:"coverage"`
}

// NewSuggestCmd creates the suggest subcommand.
func NewSuggestCmd(io ScaffoldIO) *cobra.Command {
	return newSuggestCmdWithGetCWD(io, os.Getwd)
}

func newSuggestCmdWithGetCWD(io ScaffoldIO, getwd func() (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "suggest <scaffold>",
		Short:        "Suggest patterns worth activating for a scaffold",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			jsonMode, _ := cmd.Flags().GetBool("json")

			proj, err := openProject(project, getwd)
			if err != nil {
				return err
			}

			raw, err := io.ReadScaffold(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reading scaffold: %w", err)
			}
			sc, err := scaffold.Parse(cmd.Context(), raw)
			if err != nil {
				return fmt.Errorf("parsing scaffold: %w", err)
			}

			reg, err := proj.Config.Registry()
			if err != nil {
				return err
			}
			suggestions := validate.SuggestPatterns(sc.Root)
			activated, _, err := resolveActivation(reg, proj.Config, nil, suggestions)
			if err != nil {
				return err
			}
			cov := validate.ComputeCoverage(reg, suggestions, activated)

			if jsonMode {
				out := suggestOutput{Suggestions: suggestions, Coverage: cov}
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(out); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
				return nil
			}

			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pattern signals found")
			}
			for _, s := range suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%.2f)  %s\n",
					s.Pattern, s.Confidence, s.ConfidenceScore, s.Reason)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "coverage %v%% (%d/%d activated)\n",
				cov.Percent, cov.Activated, cov.NTotal)
			for _, g := range cov.Gaps {
				fmt.Fprintf(cmd.OutOrStdout(), "gap %s: %s\n", g.Pattern, g.Reason)
			}
			return nil
		},
	}

	cmd.Flags().String("project", "", "project directory (default: current directory)")
	cmd.Flags().Bool("json", false, "output suggestions and coverage as JSON")

	return cmd
}
