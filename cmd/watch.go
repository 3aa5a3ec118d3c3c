package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/uxforge/uxlint/internal/config"
	"github.com/uxforge/uxlint/internal/logging"
)

// NewWatchCmd creates the watch subcommand.
func NewWatchCmd(io ScaffoldIO) *cobra.Command {
	return newWatchCmdWithGetCWD(io, os.Getwd)
}

func newWatchCmdWithGetCWD(io ScaffoldIO, getwd func() (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "watch <scaffold>",
		Short:        "Re-validate a scaffold whenever its directory changes",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			patterns, _ := cmd.Flags().GetStringArray("pattern")

			proj, err := openProject(project, getwd)
			if err != nil {
				return err
			}
			log, err := logging.New(proj.Root)
			if err != nil {
				return err
			}
			defer log.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "watching %s (log: %s)\n", args[0], log.Path())
			return watchLoop(cmd, io, proj, log, args[0], patterns)
		},
	}

	cmd.Flags().String("project", "", "project directory (default: current directory)")
	cmd.Flags().StringArray("pattern", nil, "pattern to validate (repeatable; overrides configuration)")

	return cmd
}

func watchLoop(cmd *cobra.Command, io ScaffoldIO, proj *config.Project,
	log *logging.Logger, scaffoldPath string, patterns []string) error {

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch init: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(scaffoldPath)
	outDir := proj.OutDir()
	if err := addWatchRecursive(watcher, dir, outDir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	// Initial pass so artifacts exist before the first change arrives.
	watchRun(cmd.Context(), cmd, io, proj, log, scaffoldPath, patterns)

	debounce := time.Duration(proj.Config.Watch.DebounceMs) * time.Millisecond
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if watchIgnored(ev.Name, outDir, proj.Root) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				watchRun(ctx, cmd, io, proj, log, scaffoldPath, patterns)
			})
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", werr)
			fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", werr)
		}
	}
}

// watchRun executes one validation pass and persists its artifacts. Run
// errors are reported and logged, never fatal: the watcher keeps going.
func watchRun(ctx context.Context, cmd *cobra.Command, io ScaffoldIO,
	proj *config.Project, log *logging.Logger, scaffoldPath string, patterns []string) {

	res, err := runValidation(ctx, io, proj, scaffoldPath, patterns)
	if err != nil {
		log.Printf("run failed: %v", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
		return
	}
	if err := writeArtifacts(res, proj, proj.Config.Output.HTML); err != nil {
		log.Printf("write failed: %v", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
		return
	}
	if err := saveHistory(ctx, proj, res.Artifact); err != nil {
		log.Printf("history failed: %v", err)
	}

	must, should := failureCounts(res.Summary)
	log.Printf("validated %s: score %d (%s), must %d, should %d",
		scaffoldPath, res.Score.Score, res.Score.Band, must, should)
	fmt.Fprintf(cmd.OutOrStdout(), "%s  score %d (%s)  %d issue(s)\n",
		time.Now().Format("15:04:05"), res.Score.Score, res.Score.Band, res.Summary.TotalIssues)
}

// watchIgnored reports whether a change event belongs to uxlint's own
// output (the .uxlint tree or the artifact directory), which would
// otherwise retrigger validation forever.
func watchIgnored(path, outDir, root string) bool {
	return underDir(path, filepath.Join(root, config.UxlintDir)) || underDir(path, outDir)
}

// underDir reports whether path is dir or lies beneath it.
func underDir(path, dir string) bool {
	if dir == "" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// addWatchRecursive watches every directory under root except uxlint's
// own output tree.
func addWatchRecursive(w *fsnotify.Watcher, root, skip string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if filepath.Base(path) == config.UxlintDir || underDir(path, skip) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
