package validate

import (
	"github.com/uxforge/uxlint/internal/pattern"
	"github.com/uxforge/uxlint/internal/scaffold"
)

// Confidence bands a suggestion's numeric score into low, medium or high.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Scores the structural heuristics assign and the thresholds that band
// them. A direct structural hit (the node kind a pattern is about) lands
// high, a paired flow signal lands medium, a lone flow signal stays low.
const (
	scoreStructuralHit = 0.9
	scoreFlowPair      = 0.75
	scoreFlowSingle    = 0.4

	highThreshold   = 0.8
	mediumThreshold = 0.5
)

// ConfidenceBand classifies a numeric confidence score.
func ConfidenceBand(score float64) Confidence {
	switch {
	case score >= highThreshold:
		return ConfidenceHigh
	case score >= mediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// PatternSuggestion proposes activating a pattern based on structure
// found in the tree.
type PatternSuggestion struct {
	Pattern         string     `json:"pattern"`
	Confidence      Confidence `json:"confidence"`
	ConfidenceScore float64    `json:"confidenceScore"`
	Reason          string     `json:"reason"`
}

// SuggestPatterns scans the visible tree for structural signals and
// proposes patterns worth activating. A tree with no hints yields an
// empty list. The output order is fixed (form, table, disclosure, flow)
// so repeated runs over the same tree produce identical bytes.
func SuggestPatterns(root *scaffold.Node) []PatternSuggestion {
	var hasForm, hasTable, hasCollapsible bool
	scaffold.Walk(root, scaffold.WalkOptions{}, func(n *scaffold.Node) bool {
		switch n.Data.(type) {
		case *scaffold.FormData:
			hasForm = true
		case *scaffold.TableData:
			hasTable = true
		}
		if n.IsCollapsible() {
			hasCollapsible = true
		}
		return true
	})

	suggestions := []PatternSuggestion{}
	if hasForm {
		suggestions = append(suggestions, suggestion(pattern.NameFormBasic, scoreStructuralHit,
			"tree contains a Form node"))
	}
	if hasTable {
		suggestions = append(suggestions, suggestion(pattern.NameTableSimple, scoreStructuralHit,
			"tree contains a Table node"))
	}
	if hasCollapsible {
		suggestions = append(suggestions, suggestion(pattern.NameProgressiveDisclosure, scoreStructuralHit,
			"tree contains a collapsible section"))
	}
	advance, retreat := pattern.FlowSignals(root)
	switch {
	case advance && retreat:
		suggestions = append(suggestions, suggestion(pattern.NameGuidedFlow, scoreFlowPair,
			"tree contains both forward and backward navigation buttons"))
	case advance || retreat:
		suggestions = append(suggestions, suggestion(pattern.NameGuidedFlow, scoreFlowSingle,
			"tree contains a single navigation-style button"))
	}
	return suggestions
}

func suggestion(name string, score float64, reason string) PatternSuggestion {
	return PatternSuggestion{
		Pattern:         name,
		Confidence:      ConfidenceBand(score),
		ConfidenceScore: score,
		Reason:          reason,
	}
}
