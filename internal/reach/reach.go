// Package reach derives keyboard reachability for a scaffold: the
// document-order sequence of nodes that can take focus at the initial
// disclosure state. Invisible subtrees and the content of initially
// collapsed sections are out of reach until revealed.
package reach

import (
	"github.com/uxforge/uxlint/internal/scaffold"
)

// Focusable reports whether a node can take keyboard focus. Buttons and
// fields are focusable; containers, text and tables are not.
func Focusable(n *scaffold.Node) bool {
	switch n.Data.(type) {
	case *scaffold.ButtonData, *scaffold.FieldData:
		return true
	}
	return false
}

// TabOrder returns the focusable nodes in document order. The walk is
// its own descent rather than the shared traversal because a collapsed
// section's node stays visible while its content must be skipped.
func TabOrder(root *scaffold.Node) []*scaffold.Node {
	order := []*scaffold.Node{}
	var descend func(n *scaffold.Node)
	descend = func(n *scaffold.Node) {
		if n == nil || !n.IsVisible() {
			return
		}
		if Focusable(n) {
			order = append(order, n)
		}
		if disc := n.Disclosure(); disc != nil && disc.Collapsible && disc.EffectiveState() == scaffold.StateCollapsed {
			return
		}
		for _, c := range scaffold.Children(n) {
			descend(c)
		}
	}
	descend(root)
	return order
}

// Position returns the zero-based tab position of the node with the
// given id, or -1 when it is not reachable.
func Position(root *scaffold.Node, id string) int {
	for i, n := range TabOrder(root) {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Reachable reports whether the node with the given id receives focus at
// the initial disclosure state.
func Reachable(root *scaffold.Node, id string) bool {
	return Position(root, id) >= 0
}
