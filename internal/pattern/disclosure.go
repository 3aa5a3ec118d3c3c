package pattern

import (
	"regexp"
	"strings"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// disclosureKeywordRE matches the fixed control vocabulary as whole words,
// case-insensitively. The token set is closed; no dynamic construction.
var disclosureKeywordRE = regexp.MustCompile(`(?i)\b(show|hide|expand|collapse|advanced|details|more)\b`)

// controlAffordances are the affordance tokens that mark a button as a
// disclosure control even when its text carries no keyword.
var controlAffordances = map[string]bool{
	"chevron": true,
	"details": true,
}

// isControlCandidate reports whether n is a visible Button whose trimmed
// text matches the disclosure vocabulary or whose affordances include a
// control cue.
func isControlCandidate(n *scaffold.Node) bool {
	if n == nil || !n.IsVisible() {
		return false
	}
	bd, ok := n.Data.(*scaffold.ButtonData)
	if !ok {
		return false
	}
	if disclosureKeywordRE.MatchString(strings.TrimSpace(bd.Text)) {
		return true
	}
	for _, tok := range AffordanceTokens(n) {
		if controlAffordances[tok] {
			return true
		}
	}
	return false
}

// FindDisclosureControl infers the control button for a collapsible node
// from its sibling context: preceding siblings nearest first, then
// following siblings nearest first, then the node's own first structural
// child. Returns nil when node is not in siblings or no candidate exists.
func FindDisclosureControl(node *scaffold.Node, siblings []*scaffold.Node) *scaffold.Node {
	idx := indexOf(node.ID, siblings)
	if idx < 0 {
		return nil
	}
	for i := idx - 1; i >= 0; i-- {
		if isControlCandidate(siblings[i]) {
			return siblings[i]
		}
	}
	for i := idx + 1; i < len(siblings); i++ {
		if isControlCandidate(siblings[i]) {
			return siblings[i]
		}
	}
	if kids := scaffold.Children(node); len(kids) > 0 && isControlCandidate(kids[0]) {
		return kids[0]
	}
	return nil
}

// FindControl resolves the control button for a collapsible node. An
// explicit controlsId takes absolute precedence: the node's own subtree and
// then each sibling's subtree are searched for a visible Button with that
// id, and failure to resolve is failure: there is no fallback to proximity
// inference. Without a controlsId the control is inferred by
// FindDisclosureControl.
func FindControl(node *scaffold.Node, siblings []*scaffold.Node) *scaffold.Node {
	d := node.Disclosure()
	if d != nil && d.ControlsID != "" {
		if b := findVisibleButton(node, d.ControlsID); b != nil {
			return b
		}
		for _, s := range siblings {
			if s.ID == node.ID {
				continue
			}
			if b := findVisibleButton(s, d.ControlsID); b != nil {
				return b
			}
		}
		return nil
	}
	return FindDisclosureControl(node, siblings)
}

// findVisibleButton searches the visible subtree of root for a Button with
// the given id.
func findVisibleButton(root *scaffold.Node, id string) *scaffold.Node {
	var found *scaffold.Node
	scaffold.Walk(root, scaffold.WalkOptions{}, func(n *scaffold.Node) bool {
		if n.ID != id {
			return true
		}
		if _, ok := n.Data.(*scaffold.ButtonData); ok {
			found = n
		}
		return false
	})
	return found
}
