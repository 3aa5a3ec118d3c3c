package validate

import (
	"math"
	"strings"

	"github.com/uxforge/uxlint/internal/pattern"
)

// Gap is a recommended pattern the current run did not activate.
type Gap struct {
	Pattern string `json:"pattern"`
	Reason  string `json:"reason"`
}

// CoverageResult reports how much of the registry a run exercised.
type CoverageResult struct {
	Activated int     `json:"activated"`
	NTotal    int     `json:"nTotal"`
	Percent   float64 `json:"percent"`
	Gaps      []Gap   `json:"gaps"`
}

// ComputeCoverage relates the activated pattern set to the registry size
// and lists the medium and high confidence suggestions left unactivated.
// Activation matching is case-insensitive; percent is rounded to two
// decimals.
func ComputeCoverage(reg *pattern.Registry, suggestions []PatternSuggestion, activatedNames []string) CoverageResult {
	active := make(map[string]bool, len(activatedNames))
	for _, name := range activatedNames {
		active[strings.ToLower(name)] = true
	}

	res := CoverageResult{
		Activated: len(activatedNames),
		NTotal:    reg.Len(),
		Gaps:      []Gap{},
	}
	if res.NTotal > 0 {
		res.Percent = round2(float64(res.Activated) / float64(res.NTotal) * 100)
	}
	for _, s := range suggestions {
		if s.Confidence == ConfidenceLow || active[strings.ToLower(s.Pattern)] {
			continue
		}
		res.Gaps = append(res.Gaps, Gap{Pattern: s.Pattern, Reason: s.Reason})
	}
	return res
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
