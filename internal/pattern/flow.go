package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// Navigation vocabularies for multi-step flows. Whole-word and
// case-insensitive, like the disclosure control vocabulary.
var (
	advanceKeywordRE  = regexp.MustCompile(`(?i)\b(next|continue|proceed|finish|done)\b`)
	retreatKeywordRE  = regexp.MustCompile(`(?i)\b(back|previous|prev)\b`)
	progressIndicatRE = regexp.MustCompile(`(?i)\bstep\s*\d+\s*(of|/)\s*\d+\b`)
)

// GuidedFlow returns the pattern guarding multi-step flows: users must be
// able to move forward and back, should see where they stand, and the
// forward action should be the prominent one.
func GuidedFlow() Pattern {
	return Pattern{
		Name: NameGuidedFlow,
		Source: Source{
			Pattern: NameGuidedFlow,
			Name:    "Wizards and Guided Flows",
			URL:     "https://www.nngroup.com/articles/wizards/",
		},
		Must: []Rule{
			{
				ID:          RuleFlowNoAdvance,
				Level:       LevelMust,
				Description: "the flow has a visible advance control",
				Check:       checkFlowNoAdvance,
			},
			{
				ID:          RuleFlowNoRetreat,
				Level:       LevelMust,
				Description: "the flow has a visible way back",
				Check:       checkFlowNoRetreat,
			},
		},
		Should: []Rule{
			{
				ID:          RuleFlowNoProgress,
				Level:       LevelShould,
				Description: "the flow shows progress (e.g. \"Step 2 of 4\")",
				Check:       checkFlowNoProgress,
			},
			{
				ID:          RuleFlowAdvanceNotPrimary,
				Level:       LevelShould,
				Description: "advance controls are marked primary",
				Check:       checkFlowAdvanceNotPrimary,
			},
		},
	}
}

// visibleButtons returns visible Button nodes in document order, paired
// with their payloads.
func visibleButtons(root *scaffold.Node) []*scaffold.Node {
	var out []*scaffold.Node
	scaffold.Walk(root, scaffold.WalkOptions{}, func(n *scaffold.Node) bool {
		if _, ok := n.Data.(*scaffold.ButtonData); ok {
			out = append(out, n)
		}
		return true
	})
	return out
}

func isAdvanceButton(n *scaffold.Node) bool {
	bd, ok := n.Data.(*scaffold.ButtonData)
	return ok && advanceKeywordRE.MatchString(strings.TrimSpace(bd.Text))
}

func isRetreatButton(n *scaffold.Node) bool {
	bd, ok := n.Data.(*scaffold.ButtonData)
	return ok && retreatKeywordRE.MatchString(strings.TrimSpace(bd.Text))
}

func checkFlowNoAdvance(root *scaffold.Node) []Issue {
	for _, b := range visibleButtons(root) {
		if isAdvanceButton(b) {
			return nil
		}
	}
	return []Issue{{
		ID:       RuleFlowNoAdvance,
		Severity: SeverityError,
		Message:  "flow has no visible advance control (e.g. \"Next\")",
	}}
}

func checkFlowNoRetreat(root *scaffold.Node) []Issue {
	for _, b := range visibleButtons(root) {
		if isRetreatButton(b) {
			return nil
		}
	}
	return []Issue{{
		ID:       RuleFlowNoRetreat,
		Severity: SeverityError,
		Message:  "flow has no visible way back (e.g. \"Previous\")",
	}}
}

func checkFlowNoProgress(root *scaffold.Node) []Issue {
	found := false
	scaffold.Walk(root, scaffold.WalkOptions{}, func(n *scaffold.Node) bool {
		if td, ok := n.Data.(*scaffold.TextData); ok && progressIndicatRE.MatchString(td.Text) {
			found = true
			return false
		}
		return true
	})
	if found {
		return nil
	}
	return []Issue{{
		ID:       RuleFlowNoProgress,
		Severity: SeverityWarn,
		Message:  "flow shows no progress indicator (e.g. \"Step 2 of 4\")",
	}}
}

func checkFlowAdvanceNotPrimary(root *scaffold.Node) []Issue {
	var issues []Issue
	for _, b := range visibleButtons(root) {
		if !isAdvanceButton(b) {
			continue
		}
		bd := b.Data.(*scaffold.ButtonData)
		if bd.RoleHint == "primary" {
			continue
		}
		issues = append(issues, Issue{
			ID:       RuleFlowAdvanceNotPrimary,
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("advance button %q is not marked primary", b.ID),
			NodeID:   b.ID,
		})
	}
	return issues
}

// FlowSignals reports whether the visible tree contains buttons that
// look like forward and backward navigation. Both present together is
// the strongest hint that the scaffold is a step-by-step flow.
func FlowSignals(root *scaffold.Node) (advance, retreat bool) {
	for _, b := range visibleButtons(root) {
		if isAdvanceButton(b) {
			advance = true
		}
		if isRetreatButton(b) {
			retreat = true
		}
		if advance && retreat {
			return true, true
		}
	}
	return advance, retreat
}
