package scaffold

// FindByID returns the first node in document order whose ID matches, or
// nil when no node matches. Identity lookup is structural: invisible nodes
// are searched too, since an id reference may point into a hidden region.
func FindByID(root *Node, id string) *Node {
	var found *Node
	Walk(root, WalkOptions{IncludeInvisible: true}, func(n *Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}
