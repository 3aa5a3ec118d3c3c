package pattern

import (
	"strings"

	"github.com/uxforge/uxlint/internal/scaffold"
)

// Collapsible pairs a collapsible node with the child list of the container
// it sits in (the node itself included, in container order).
type Collapsible struct {
	Node     *scaffold.Node
	Siblings []*scaffold.Node
}

// forEachVisible walks visible nodes in document order, handing each node
// its container's full child list. Invisible subtrees are skipped wholesale;
// the sibling list itself is not filtered, since candidate checks decide
// visibility per sibling. The root is visited with a singleton list.
func forEachVisible(root *scaffold.Node, fn func(n *scaffold.Node, siblings []*scaffold.Node)) {
	if root == nil {
		return
	}
	var walk func(n *scaffold.Node, siblings []*scaffold.Node)
	walk = func(n *scaffold.Node, siblings []*scaffold.Node) {
		if !n.IsVisible() {
			return
		}
		fn(n, siblings)
		kids := scaffold.Children(n)
		for _, c := range kids {
			walk(c, kids)
		}
	}
	walk(root, []*scaffold.Node{root})
}

// Collapsibles returns every visible collapsible node in document order,
// each with its sibling context.
func Collapsibles(root *scaffold.Node) []Collapsible {
	var out []Collapsible
	forEachVisible(root, func(n *scaffold.Node, siblings []*scaffold.Node) {
		if n.IsCollapsible() {
			out = append(out, Collapsible{Node: n, Siblings: siblings})
		}
	})
	return out
}

// HasPrimaryHidden reports whether node is a collapsed-by-default
// collapsible that buries a primary action: any descendant, hidden regions
// included, is a Button with roleHint "primary".
func HasPrimaryHidden(node *scaffold.Node) bool {
	d := node.Disclosure()
	if d == nil || !d.Collapsible || d.EffectiveState() != scaffold.StateCollapsed {
		return false
	}
	hidden := false
	scaffold.Walk(node, scaffold.WalkOptions{IncludeInvisible: true}, func(n *scaffold.Node) bool {
		if n == node {
			return true
		}
		if bd, ok := n.Data.(*scaffold.ButtonData); ok && bd.RoleHint == "primary" {
			hidden = true
			return false
		}
		return true
	})
	return hidden
}

// HasLabel reports whether a collapsible section has a discernible label:
// a control whose trimmed text is at least two characters, or an
// immediately preceding visible Text sibling with non-empty text, or a
// first-level visible Text child with non-empty text.
func HasLabel(node *scaffold.Node, siblings []*scaffold.Node, control *scaffold.Node) bool {
	if control != nil {
		if bd, ok := control.Data.(*scaffold.ButtonData); ok {
			if len(strings.TrimSpace(bd.Text)) >= 2 {
				return true
			}
		}
	}
	if idx := indexOf(node.ID, siblings); idx > 0 {
		if isVisibleText(siblings[idx-1]) {
			return true
		}
	}
	for _, c := range scaffold.Children(node) {
		if isVisibleText(c) {
			return true
		}
	}
	return false
}

// isVisibleText reports whether n is a visible Text node with non-empty
// trimmed text.
func isVisibleText(n *scaffold.Node) bool {
	if n == nil || !n.IsVisible() {
		return false
	}
	td, ok := n.Data.(*scaffold.TextData)
	return ok && strings.TrimSpace(td.Text) != ""
}

// SiblingDistance returns the absolute index difference between two ids in
// a sibling list, or -1 when either id is absent.
func SiblingDistance(aID, bID string, siblings []*scaffold.Node) int {
	ai := indexOf(aID, siblings)
	bi := indexOf(bID, siblings)
	if ai < 0 || bi < 0 {
		return -1
	}
	if ai > bi {
		return ai - bi
	}
	return bi - ai
}

func indexOf(id string, siblings []*scaffold.Node) int {
	for i, s := range siblings {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// AffordanceTokens returns node's affordance tokens lower-cased and
// trimmed, preserving order and duplicates. Empty tokens are dropped.
func AffordanceTokens(node *scaffold.Node) []string {
	if len(node.Affordances) == 0 {
		return nil
	}
	out := make([]string, 0, len(node.Affordances))
	for _, a := range node.Affordances {
		t := strings.ToLower(strings.TrimSpace(a))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// FirstRequiredField returns the first visible required Field in document
// order, or nil.
func FirstRequiredField(root *scaffold.Node) *scaffold.Node {
	var found *scaffold.Node
	scaffold.Walk(root, scaffold.WalkOptions{}, func(n *scaffold.Node) bool {
		if fd, ok := n.Data.(*scaffold.FieldData); ok && fd.Required {
			found = n
			return false
		}
		return true
	})
	return found
}

// AppearsBefore reports whether node aID precedes node bID in visible
// document order. False when either is absent.
func AppearsBefore(aID, bID string, root *scaffold.Node) bool {
	ai, bi := -1, -1
	pos := 0
	scaffold.Walk(root, scaffold.WalkOptions{}, func(n *scaffold.Node) bool {
		switch n.ID {
		case aID:
			ai = pos
		case bID:
			bi = pos
		}
		pos++
		return ai < 0 || bi < 0
	})
	return ai >= 0 && bi >= 0 && ai < bi
}
