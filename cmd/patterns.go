package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// patternInfo is the JSON row for one registered pattern.
type patternInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
	Must    int      `json:"must"`
	Should  int      `json:"should"`
}

// NewPatternsCmd creates the patterns subcommand.
func NewPatternsCmd() *cobra.Command {
	return newPatternsCmdWithGetCWD(os.Getwd)
}

func newPatternsCmdWithGetCWD(getwd func() (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "patterns",
		Short:        "List registered patterns with aliases and rule counts",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			jsonMode, _ := cmd.Flags().GetBool("json")

			proj, err := openProject(project, getwd)
			if err != nil {
				return err
			}
			reg, err := proj.Config.Registry()
			if err != nil {
				return err
			}

			rows := make([]patternInfo, 0, reg.Len())
			for _, p := range reg.All() {
				aliases := reg.Aliases(p.Name)
				if aliases == nil {
					aliases = []string{}
				}
				rows = append(rows, patternInfo{
					Name:    p.Name,
					Aliases: aliases,
					Must:    len(p.Must),
					Should:  len(p.Should),
				})
			}

			if jsonMode {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(rows); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
				return nil
			}

			for _, row := range rows {
				line := fmt.Sprintf("%s  must %d  should %d", row.Name, row.Must, row.Should)
				if len(row.Aliases) > 0 {
					line += "  aliases: " + strings.Join(row.Aliases, ", ")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().String("project", "", "project directory (default: current directory)")
	cmd.Flags().Bool("json", false, "output the pattern list as JSON")

	return cmd
}
