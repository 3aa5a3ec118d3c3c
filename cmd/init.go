package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uxforge/uxlint/internal/config"
)

// NewInitCmd creates the init subcommand.
func NewInitCmd() *cobra.Command {
	return newInitCmdWithGetCWD(os.Getwd)
}

func newInitCmdWithGetCWD(getwd func() (string, error)) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Initialize a uxlint project in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			dir, err := resolveProjectDir(project, getwd)
			if err != nil {
				return err
			}

			created, err := config.InitDir(dir)
			if err != nil {
				return err
			}
			if !created {
				if !force {
					return fmt.Errorf(".uxlint/uxlint.yaml already exists in %s; use --force to overwrite", dir)
				}
				if err := config.WriteDefault(dir); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: overwriting existing configuration")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Initialized "+dir)
			return nil
		},
	}

	cmd.Flags().String("project", "", "project directory (default: current directory)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration")

	return cmd
}
