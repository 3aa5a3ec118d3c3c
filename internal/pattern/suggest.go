package pattern

import "fmt"

// defaultNodeRef stands in for the node identifier when an issue carries
// none, keeping suggestion output total over all inputs.
const defaultNodeRef = "node"

// suggestionTemplates maps rule ids to remediation text builders. Each
// builder is a pure function of the node identifier, so output is
// byte-identical across calls with identical inputs.
var suggestionTemplates = map[string]func(nodeID string) string{
	RuleDisclosureNoControl: func(id string) string {
		return fmt.Sprintf("Add a toggle button (e.g. \"Show advanced\") next to %s, or point behaviors.disclosure.controlsId at an existing button id.", id)
	},
	RuleDisclosureHidesPrimary: func(id string) string {
		return fmt.Sprintf("Move the primary action out of %s, or set defaultState to \"expanded\" so it is visible by default.", id)
	},
	RuleDisclosureMissingLabel: func(id string) string {
		return fmt.Sprintf("Label %s: place a text node directly before it or as its first child.", id)
	},
	RuleDisclosureControlFar: func(id string) string {
		return fmt.Sprintf("Move the toggle button directly next to %s (at most one sibling away).", id)
	},
	RuleDisclosureInconsistentAffordance: func(id string) string {
		return fmt.Sprintf("Use one affordance token (e.g. \"chevron\") for %s and its sibling sections.", id)
	},
	RuleDisclosureEarlySection: func(id string) string {
		return fmt.Sprintf("Move %s below the required fields so optional content does not interrupt the main path.", id)
	},
	RuleFormEmpty: func(id string) string {
		return fmt.Sprintf("Add at least one input field to %s.", id)
	},
	RuleFormNoSubmit: func(id string) string {
		return fmt.Sprintf("Add an action button (e.g. \"Submit\") to %s.", id)
	},
	RuleFormFieldUnlabeled: func(id string) string {
		return fmt.Sprintf("Set a label on %s.", id)
	},
	RuleFormMultiplePrimary: func(id string) string {
		return fmt.Sprintf("Keep a single primary action in %s and demote the others to secondary.", id)
	},
	RuleFormRequiredAfterOptional: func(id string) string {
		return fmt.Sprintf("Move required field %s ahead of the optional fields.", id)
	},
	RuleTableNoColumns: func(id string) string {
		return fmt.Sprintf("Declare at least one column on %s.", id)
	},
	RuleTableTooWide: func(id string) string {
		return fmt.Sprintf("Trim %s to at most %d columns or split it into focused views.", id, maxTableColumns)
	},
	RuleTableNoCaption: func(id string) string {
		return fmt.Sprintf("Introduce %s with a caption: place a text node directly before it.", id)
	},
	RuleFlowNoAdvance: func(id string) string {
		_ = id
		return "Add a primary advance button (e.g. \"Next\") so users can move forward."
	},
	RuleFlowNoRetreat: func(id string) string {
		_ = id
		return "Add a back control (e.g. \"Previous\") so users can revisit earlier steps."
	},
	RuleFlowNoProgress: func(id string) string {
		_ = id
		return "Add a progress indicator text such as \"Step 2 of 4\"."
	},
	RuleFlowAdvanceNotPrimary: func(id string) string {
		return fmt.Sprintf("Mark the advance button %s with roleHint \"primary\".", id)
	},
}

// Suggestion returns the remediation text for an issue id, templated with
// the offending node id (or a generic reference when nodeID is empty).
// Unknown ids return ok=false; callers tolerate the absence.
func Suggestion(issueID, nodeID string) (string, bool) {
	tmpl, ok := suggestionTemplates[issueID]
	if !ok {
		return "", false
	}
	if nodeID == "" {
		nodeID = defaultNodeRef
	}
	return tmpl(nodeID), true
}
