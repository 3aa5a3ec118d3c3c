package pattern

import (
	"fmt"
	"strings"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// ProgressiveDisclosure returns the pattern guarding collapsible sections:
// every section needs a discoverable control, must not bury the primary
// action, and needs a label; controls should sit close by, affordance cues
// should be consistent, and optional sections should not precede required
// input.
func ProgressiveDisclosure() Pattern {
	return Pattern{
		Name: NameProgressiveDisclosure,
		Source: Source{
			Pattern: NameProgressiveDisclosure,
			Name:    "Progressive Disclosure",
			URL:     "https://www.nngroup.com/articles/progressive-disclosure/",
		},
		Must: []Rule{
			{
				ID:          RuleDisclosureNoControl,
				Level:       LevelMust,
				Description: "every collapsible section has a discoverable control button",
				Check:       checkDisclosureNoControl,
			},
			{
				ID:          RuleDisclosureHidesPrimary,
				Level:       LevelMust,
				Description: "a collapsed section never hides the primary action",
				Check:       checkDisclosureHidesPrimary,
			},
			{
				ID:          RuleDisclosureMissingLabel,
				Level:       LevelMust,
				Description: "every collapsible section has a discernible label",
				Check:       checkDisclosureMissingLabel,
			},
		},
		Should: []Rule{
			{
				ID:          RuleDisclosureControlFar,
				Level:       LevelShould,
				Description: "a section's control sits within one sibling of the section",
				Check:       checkDisclosureControlFar,
			},
			{
				ID:          RuleDisclosureInconsistentAffordance,
				Level:       LevelShould,
				Description: "sibling sections share at least one affordance cue",
				Check:       checkDisclosureInconsistentAffordance,
			},
			{
				ID:          RuleDisclosureEarlySection,
				Level:       LevelShould,
				Description: "collapsible sections come after required input",
				Check:       checkDisclosureEarlySection,
			},
		},
	}
}

func checkDisclosureNoControl(root *scaffold.Node) []Issue {
	var issues []Issue
	for _, c := range Collapsibles(root) {
		if FindControl(c.Node, c.Siblings) != nil {
			continue
		}
		expected := "a visible control button among the section's siblings or as its first child"
		found := "none"
		if d := c.Node.Disclosure(); d.ControlsID != "" {
			expected = fmt.Sprintf("a visible button with id %q", d.ControlsID)
			found = "no visible button with that id in reach"
		}
		issues = append(issues, Issue{
			ID:       RuleDisclosureNoControl,
			Severity: SeverityError,
			Message:  fmt.Sprintf("collapsible section %q has no discoverable control", c.Node.ID),
			NodeID:   c.Node.ID,
			Details: map[string]any{
				"expected": expected,
				"found":    found,
			},
		})
	}
	return issues
}

func checkDisclosureHidesPrimary(root *scaffold.Node) []Issue {
	var issues []Issue
	for _, c := range Collapsibles(root) {
		if !HasPrimaryHidden(c.Node) {
			continue
		}
		issues = append(issues, Issue{
			ID:       RuleDisclosureHidesPrimary,
			Severity: SeverityError,
			Message:  fmt.Sprintf("collapsible section %q hides a primary action while collapsed", c.Node.ID),
			NodeID:   c.Node.ID,
		})
	}
	return issues
}

func checkDisclosureMissingLabel(root *scaffold.Node) []Issue {
	var issues []Issue
	for _, c := range Collapsibles(root) {
		control := FindControl(c.Node, c.Siblings)
		if HasLabel(c.Node, c.Siblings, control) {
			continue
		}
		issues = append(issues, Issue{
			ID:       RuleDisclosureMissingLabel,
			Severity: SeverityError,
			Message:  fmt.Sprintf("collapsible section %q has no discernible label", c.Node.ID),
			NodeID:   c.Node.ID,
		})
	}
	return issues
}

func checkDisclosureControlFar(root *scaffold.Node) []Issue {
	var issues []Issue
	for _, c := range Collapsibles(root) {
		control := FindControl(c.Node, c.Siblings)
		if control == nil {
			continue
		}
		dist := SiblingDistance(c.Node.ID, control.ID, c.Siblings)
		if dist <= 1 {
			// Distance -1 means the control is not a sibling (for
			// example the section's own child); only sibling controls
			// are judged for distance.
			continue
		}
		issues = append(issues, Issue{
			ID:       RuleDisclosureControlFar,
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("control %q is %d siblings away from section %q", control.ID, dist, c.Node.ID),
			NodeID:   c.Node.ID,
			Details: map[string]any{
				"control":  control.ID,
				"distance": dist,
			},
		})
	}
	return issues
}

func checkDisclosureInconsistentAffordance(root *scaffold.Node) []Issue {
	type group struct {
		members []*scaffold.Node
	}
	var order []string
	groups := make(map[string]*group)

	for _, c := range Collapsibles(root) {
		key := siblingKey(c.Siblings)
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, c.Node)
	}

	var issues []Issue
	for _, key := range order {
		g := groups[key]

		var sets []map[string]bool
		var cued []*scaffold.Node
		for _, m := range g.members {
			toks := AffordanceTokens(m)
			if len(toks) == 0 {
				continue
			}
			set := make(map[string]bool, len(toks))
			for _, t := range toks {
				set[t] = true
			}
			sets = append(sets, set)
			cued = append(cued, m)
		}
		if len(sets) < 2 {
			continue
		}
		if intersectionNonEmpty(sets) {
			continue
		}

		sections := make([]string, len(cued))
		for i, m := range cued {
			sections[i] = m.ID
		}
		issues = append(issues, Issue{
			ID:       RuleDisclosureInconsistentAffordance,
			Severity: SeverityWarn,
			Message:  "sibling collapsible sections use disjoint affordance cues",
			NodeID:   cued[0].ID,
			Details: map[string]any{
				"sections": sections,
			},
		})
	}
	return issues
}

// siblingKey derives a stable grouping key from a sibling list. Node ids
// are tree-unique, so two collapsibles share a key iff they share a
// container.
func siblingKey(siblings []*scaffold.Node) string {
	ids := make([]string, len(siblings))
	for i, s := range siblings {
		ids[i] = s.ID
	}
	return strings.Join(ids, "\x00")
}

func intersectionNonEmpty(sets []map[string]bool) bool {
	for tok := range sets[0] {
		inAll := true
		for _, s := range sets[1:] {
			if !s[tok] {
				inAll = false
				break
			}
		}
		if inAll {
			return true
		}
	}
	return false
}

func checkDisclosureEarlySection(root *scaffold.Node) []Issue {
	req := FirstRequiredField(root)
	if req == nil {
		return nil
	}
	var issues []Issue
	for _, c := range Collapsibles(root) {
		if !AppearsBefore(c.Node.ID, req.ID, root) {
			continue
		}
		issues = append(issues, Issue{
			ID:       RuleDisclosureEarlySection,
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("collapsible section %q appears before the first required field %q", c.Node.ID, req.ID),
			NodeID:   c.Node.ID,
			Details: map[string]any{
				"requiredField": req.ID,
			},
		})
	}
	return issues
}
