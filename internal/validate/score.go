package validate

// Fidelity score weights and band cut points.
const (
	mustPenalty   = 15
	shouldPenalty = 5

	excellentMin = 90
	goodMin      = 75
	fairMin      = 50
)

// Band labels for a fidelity score.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPoor      = "poor"
)

// FidelityScore grades a validation run. Score starts at 100 and loses 15
// per failed MUST rule and 5 per failed SHOULD rule, floored at zero.
type FidelityScore struct {
	Score        int    `json:"score"`
	Band         string `json:"band"`
	MustFailed   int    `json:"mustFailed"`
	ShouldFailed int    `json:"shouldFailed"`
}

// ScoreBand classifies a 0-100 fidelity score.
func ScoreBand(score int) string {
	switch {
	case score >= excellentMin:
		return BandExcellent
	case score >= goodMin:
		return BandGood
	case score >= fairMin:
		return BandFair
	default:
		return BandPoor
	}
}

// ScoreCounts grades a pair of failure counts.
func ScoreCounts(mustFailed, shouldFailed int) FidelityScore {
	score := 100 - mustPenalty*mustFailed - shouldPenalty*shouldFailed
	if score < 0 {
		score = 0
	}
	return FidelityScore{
		Score:        score,
		Band:         ScoreBand(score),
		MustFailed:   mustFailed,
		ShouldFailed: shouldFailed,
	}
}

// ScorePattern grades a single pattern's result.
func ScorePattern(res PatternResult) FidelityScore {
	return ScoreCounts(res.MustFailed, res.ShouldFailed)
}

// ScoreSummary grades a whole run by its failure counts across patterns.
func ScoreSummary(sum Summary) FidelityScore {
	var must, should int
	for _, p := range sum.Patterns {
		must += p.MustFailed
		should += p.ShouldFailed
	}
	return ScoreCounts(must, should)
}
