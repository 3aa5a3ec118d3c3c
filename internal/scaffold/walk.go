package scaffold

// WalkOptions configures a traversal.
type WalkOptions struct {
	// IncludeInvisible visits nodes whose visible flag is false. When
	// unset, an invisible node is skipped together with its entire
	// subtree: nothing inside a hidden region is observable.
	IncludeInvisible bool
}

// Walk visits the subtree rooted at n in document order (parent before
// children, children in declaration order), calling fn for each visited
// node. Walk stops early and returns false when fn returns false.
func Walk(n *Node, opts WalkOptions, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !opts.IncludeInvisible && !n.IsVisible() {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range Children(n) {
		if !Walk(c, opts, fn) {
			return false
		}
	}
	return true
}

// Preorder returns the document-order sequence of nodes in the subtree
// rooted at n, subject to opts. The result for a given tree is always the
// same: traversal order is declaration order, never map order.
func Preorder(n *Node, opts WalkOptions) []*Node {
	var out []*Node
	Walk(n, opts, func(x *Node) bool {
		out = append(out, x)
		return true
	})
	return out
}
