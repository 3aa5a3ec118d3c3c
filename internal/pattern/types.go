// Package pattern implements the heuristic engine: named bundles of
// MUST/SHOULD rules evaluated against a scaffold tree, the disclosure
// inference that binds collapsible sections to their control buttons, and
// the remediation suggestion templates keyed by rule id.
package pattern

import (
	"fmt"
	"strings"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// Level classifies a rule as blocking or advisory.
type Level string

const (
	LevelMust   Level = "must"
	LevelShould Level = "should"
)

// ParseLevel parses a rule level from configuration text.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelMust:
		return LevelMust, nil
	case LevelShould:
		return LevelShould, nil
	}
	return "", fmt.Errorf("unknown rule level %q (want %q or %q)", s, LevelMust, LevelShould)
}

// Severity returns the issue severity a failed rule of this level emits.
func (l Level) Severity() Severity {
	if l == LevelMust {
		return SeverityError
	}
	return SeverityWarn
}

// Severity of an emitted issue. A failed MUST rule emits error issues, a
// failed SHOULD rule emits warn issues.
type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warn"
)

// Canonical names of the built-in patterns.
const (
	NameProgressiveDisclosure = "Progressive.Disclosure"
	NameFormBasic             = "Form.Basic"
	NameTableSimple           = "Table.Simple"
	NameGuidedFlow            = "Guided.Flow"
)

// Rule identifiers. Stable: they key suggestion templates, appear in
// flow.json artifacts, and are matched by downstream tooling.
const (
	RuleDisclosureNoControl              = "disclosure-no-control"
	RuleDisclosureHidesPrimary           = "disclosure-hides-primary"
	RuleDisclosureMissingLabel           = "disclosure-missing-label"
	RuleDisclosureControlFar             = "disclosure-control-far"
	RuleDisclosureInconsistentAffordance = "disclosure-inconsistent-affordance"
	RuleDisclosureEarlySection           = "disclosure-early-section"

	RuleFormEmpty                 = "form-empty"
	RuleFormNoSubmit              = "form-no-submit"
	RuleFormFieldUnlabeled        = "form-field-unlabeled"
	RuleFormMultiplePrimary       = "form-multiple-primary"
	RuleFormRequiredAfterOptional = "form-required-after-optional"

	RuleTableNoColumns = "table-no-columns"
	RuleTableTooWide   = "table-too-wide"
	RuleTableNoCaption = "table-no-caption"

	RuleFlowNoAdvance         = "flow-no-advance"
	RuleFlowNoRetreat         = "flow-no-retreat"
	RuleFlowNoProgress        = "flow-no-progress"
	RuleFlowAdvanceNotPrimary = "flow-advance-not-primary"
)

// Source identifies the heuristic catalogue entry a pattern embodies, so
// issues can cite where the guidance comes from.
type Source struct {
	Pattern string `json:"pattern"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

// Issue is one finding against one node (or against the tree as a whole
// when NodeID is empty). A rule may emit several issues sharing its id,
// one per offending node.
type Issue struct {
	ID         string         `json:"id"`
	Severity   Severity       `json:"severity"`
	Message    string         `json:"message"`
	NodeID     string         `json:"nodeId,omitempty"`
	Source     *Source        `json:"source,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// Rule is a pure check over a scaffold tree. Check must be total: it never
// mutates the tree and never fails for a well-typed tree; a node it cannot
// classify simply yields no issue. Rules are plain values held in slices,
// so adding a pattern never touches the validator.
type Rule struct {
	ID          string
	Level       Level
	Description string
	Check       func(root *scaffold.Node) []Issue
}

// Pattern is a named, immutable bundle of MUST and SHOULD rules.
type Pattern struct {
	Name   string
	Source Source
	Must   []Rule
	Should []Rule
}
