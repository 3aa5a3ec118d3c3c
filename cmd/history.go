package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uxforge/uxlint/internal/history"
)

// NewHistoryCmd creates the history subcommand with its prune child.
func NewHistoryCmd() *cobra.Command {
	return newHistoryCmdWithGetCWD(os.Getwd)
}

func newHistoryCmdWithGetCWD(getwd func() (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "history",
		Short:        "List recent validation runs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			limit, _ := cmd.Flags().GetInt("limit")
			jsonMode, _ := cmd.Flags().GetBool("json")

			proj, err := openProject(project, getwd)
			if err != nil {
				return err
			}

			store, err := history.Open(proj.HistoryPath())
			if err != nil {
				return fmt.Errorf("opening history: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}

			if jsonMode {
				if runs == nil {
					runs = []history.Run{}
				}
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(runs); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
				return nil
			}

			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  score %d (%s)  must %d  should %d  %s\n",
					r.RanAt, r.Score, r.Band, r.MustFailed, r.ShouldFailed,
					sanitizeText(r.ScaffoldPath))
			}
			return nil
		},
	}

	cmd.Flags().String("project", "", "project directory (default: current directory)")
	cmd.Flags().Int("limit", 10, "number of runs to list")
	cmd.Flags().Bool("json", false, "output runs as JSON")

	cmd.AddCommand(newHistoryPruneCmd(getwd))

	return cmd
}

func newHistoryPruneCmd(getwd func() (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "prune",
		Short:        "Delete old runs, keeping the most recent",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			keep, _ := cmd.Flags().GetInt("keep")

			proj, err := openProject(project, getwd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("keep") {
				keep = proj.Config.History.Keep
			}
			if keep < 0 {
				return fmt.Errorf("keep must be zero or positive, got %d", keep)
			}

			store, err := history.Open(proj.HistoryPath())
			if err != nil {
				return fmt.Errorf("opening history: %w", err)
			}
			defer store.Close()

			removed, err := store.Prune(cmd.Context(), keep)
			if err != nil {
				return fmt.Errorf("pruning history: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d run(s), kept at most %d\n", removed, keep)
			return nil
		},
	}

	cmd.Flags().String("project", "", "project directory (default: current directory)")
	cmd.Flags().Int("keep", 0, "runs to keep (default: configured retention)")

	return cmd
}
