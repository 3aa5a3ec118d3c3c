// Package validate runs patterns against a scaffold tree and aggregates
// rule outcomes into results a caller can serialize, suggests patterns
// worth activating based on structural hints, measures registry coverage,
// and grades runs with a fidelity score.
package validate

import (
	"github.com/uxforge/uxlint/internal/pattern"
	"github.com/uxforge/uxlint/internal/scaffold"
)

// PatternResult tallies one pattern's rule outcomes against one tree.
// Each rule contributes exactly one pass or fail count regardless of how
// many issues it emitted, so MustPassed+MustFailed always equals the
// pattern's MUST rule count (and likewise for SHOULD).
type PatternResult struct {
	Pattern      string          `json:"pattern"`
	MustPassed   int             `json:"mustPassed"`
	MustFailed   int             `json:"mustFailed"`
	ShouldPassed int             `json:"shouldPassed"`
	ShouldFailed int             `json:"shouldFailed"`
	Issues       []pattern.Issue `json:"issues"`
}

// Summary aggregates one validation run across patterns.
type Summary struct {
	Patterns        []PatternResult `json:"patterns"`
	HasMustFailures bool            `json:"hasMustFailures"`
	TotalIssues     int             `json:"totalIssues"`
}

// Pattern runs every rule of p against root, MUST rules first, each in
// declaration order. Issues keep the order their rules emitted them.
// Issues that do not already carry a source or suggestion are decorated
// with the pattern's source and the remediation template for their rule id.
func Pattern(p pattern.Pattern, root *scaffold.Node) PatternResult {
	src := p.Source
	mustPassed, mustFailed, mustIssues := runRules(p.Must, root, &src)
	shouldPassed, shouldFailed, shouldIssues := runRules(p.Should, root, &src)
	return PatternResult{
		Pattern:      p.Name,
		MustPassed:   mustPassed,
		MustFailed:   mustFailed,
		ShouldPassed: shouldPassed,
		ShouldFailed: shouldFailed,
		Issues:       append(append([]pattern.Issue{}, mustIssues...), shouldIssues...),
	}
}

// Patterns validates root against each pattern in order and aggregates
// the results. HasMustFailures is true when any pattern failed a MUST
// rule; TotalIssues counts every issue across patterns.
func Patterns(ps []pattern.Pattern, root *scaffold.Node) Summary {
	sum := Summary{Patterns: []PatternResult{}}
	for _, p := range ps {
		res := Pattern(p, root)
		sum.Patterns = append(sum.Patterns, res)
		if res.MustFailed > 0 {
			sum.HasMustFailures = true
		}
		sum.TotalIssues += len(res.Issues)
	}
	return sum
}

func runRules(rules []pattern.Rule, root *scaffold.Node, src *pattern.Source) (passed, failed int, issues []pattern.Issue) {
	for _, r := range rules {
		found := r.Check(root)
		if len(found) == 0 {
			passed++
			continue
		}
		failed++
		for _, iss := range found {
			iss.Severity = r.Level.Severity()
			if iss.Source == nil {
				iss.Source = src
			}
			if iss.Suggestion == "" {
				if hint, ok := pattern.Suggestion(iss.ID, iss.NodeID); ok {
					iss.Suggestion = hint
				}
			}
			issues = append(issues, iss)
		}
	}
	return passed, failed, issues
}
