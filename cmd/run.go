package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/uxforge/uxlint/internal/config"
	"github.com/uxforge/uxlint/internal/history"
	"github.com/uxforge/uxlint/internal/layout"
	"github.com/uxforge/uxlint/internal/pattern"
	"github.com/uxforge/uxlint/internal/reach"
	"github.com/uxforge/uxlint/internal/report"
	"github.com/uxforge/uxlint/internal/scaffold"
	"github.com/uxforge/uxlint/internal/validate"
)

// ScaffoldIO reads scaffold documents for the commands that evaluate them.
type ScaffoldIO interface {
	ReadScaffold(ctx context.Context, path string) ([]byte, error)
}

// runResult carries everything one validation run produced.
type runResult struct {
	Scaffold    *scaffold.Scaffold
	Activated   []string
	Summary     validate.Summary
	Suggestions []validate.PatternSuggestion
	Coverage    validate.CoverageResult
	Score       validate.FidelityScore
	Artifact    report.Artifact
}

// runValidation executes the pipeline for one scaffold: ingest, pattern
// activation, validation, suggestions, coverage, score, artifact assembly.
// It performs no writes; callers decide which artifacts to persist.
func runValidation(ctx context.Context, io ScaffoldIO, proj *config.Project,
	scaffoldPath string, flagPatterns []string) (*runResult, error) {

	raw, err := io.ReadScaffold(ctx, scaffoldPath)
	if err != nil {
		return nil, fmt.Errorf("reading scaffold: %w", err)
	}
	sc, err := scaffold.Parse(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("parsing scaffold: %w", err)
	}

	reg, err := proj.Config.Registry()
	if err != nil {
		return nil, err
	}
	suggestions := validate.SuggestPatterns(sc.Root)

	activated, ps, err := resolveActivation(reg, proj.Config, flagPatterns, suggestions)
	if err != nil {
		return nil, err
	}

	sum := validate.Patterns(ps, sc.Root)
	cov := validate.ComputeCoverage(reg, suggestions, activated)
	score := validate.ScoreSummary(sum)

	artifact, err := report.NewArtifact(scaffoldPath, raw, activated, sum, suggestions, cov, score)
	if err != nil {
		return nil, fmt.Errorf("assembling artifact: %w", err)
	}

	return &runResult{
		Scaffold:    sc,
		Activated:   activated,
		Summary:     sum,
		Suggestions: suggestions,
		Coverage:    cov,
		Score:       score,
		Artifact:    artifact,
	}, nil
}

// resolveActivation decides which patterns a run validates, in activation
// order. Explicit --pattern flags override the configuration entirely;
// config-driven runs add medium and high confidence suggestions when auto
// activation is on, and the project's custom pattern when rules exist.
// An unknown name is reported here, at the CLI boundary.
func resolveActivation(reg *pattern.Registry, cfg config.Config, flagPatterns []string,
	suggestions []validate.PatternSuggestion) ([]string, []pattern.Pattern, error) {

	requested := flagPatterns
	fromConfig := len(flagPatterns) == 0
	if fromConfig {
		requested = cfg.Patterns.Activated
	}

	names := []string{}
	ps := []pattern.Pattern{}
	seen := make(map[string]bool)
	add := func(name string) error {
		p, ok := reg.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown pattern %q (run 'uxl patterns' to list)", name)
		}
		if seen[p.Name] {
			return nil
		}
		seen[p.Name] = true
		names = append(names, p.Name)
		ps = append(ps, p)
		return nil
	}

	for _, name := range requested {
		if err := add(name); err != nil {
			return nil, nil, err
		}
	}
	if fromConfig {
		if cfg.Patterns.Auto {
			for _, s := range suggestions {
				if s.Confidence == validate.ConfidenceLow {
					continue
				}
				if err := add(s.Pattern); err != nil {
					return nil, nil, err
				}
			}
		}
		if len(cfg.Rules) > 0 {
			if err := add(pattern.CustomPatternName); err != nil {
				return nil, nil, err
			}
		}
	}
	return names, ps, nil
}

// writeArtifacts writes flow.json, and the HTML report when enabled, into
// the project output directory.
func writeArtifacts(res *runResult, proj *config.Project, html bool) error {
	if err := report.WriteJSONAtomic(proj.FlowPath(), res.Artifact); err != nil {
		return fmt.Errorf("writing %s: %w", proj.FlowPath(), err)
	}
	if html {
		frames := layout.Compute(res.Scaffold.Root, res.Scaffold.Settings)
		order := reach.TabOrder(res.Scaffold.Root)
		if err := report.WriteHTML(proj.HTMLPath(), res.Artifact, frames, order); err != nil {
			return fmt.Errorf("writing %s: %w", proj.HTMLPath(), err)
		}
	}
	return nil
}

// saveHistory appends a run row and prunes by the configured retention.
// History failures never fail a validation run; callers downgrade the
// returned error to a warning.
func saveHistory(ctx context.Context, proj *config.Project, a report.Artifact) error {
	store, err := history.Open(proj.HistoryPath())
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save(ctx, history.FromArtifact(a)); err != nil {
		return err
	}
	if keep := proj.Config.History.Keep; keep > 0 {
		if _, err := store.Prune(ctx, keep); err != nil {
			return err
		}
	}
	return nil
}

// failureCounts sums must and should level failures across patterns.
func failureCounts(sum validate.Summary) (mustFailed, shouldFailed int) {
	for _, p := range sum.Patterns {
		mustFailed += p.MustFailed
		shouldFailed += p.ShouldFailed
	}
	return mustFailed, shouldFailed
}

// fileScaffoldIO implements ScaffoldIO using OS file I/O.
type fileScaffoldIO struct{}

func newDefaultScaffoldIO() *fileScaffoldIO {
	return &fileScaffoldIO{}
}

// ReadScaffold reads the scaffold file at path.
func (r *fileScaffoldIO) ReadScaffold(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}
