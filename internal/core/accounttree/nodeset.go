package accounttree

// NodeSet tracks which tree nodes a client currently has expanded. It is
// a plain id-set toggle for display state and carries no data
// invariants.
type NodeSet map[string]struct{}

// NewNodeSet returns an empty set (everything collapsed).
func NewNodeSet() NodeSet { return make(NodeSet) }

// Expand marks id as expanded.
func (s NodeSet) Expand(id string) { s[id] = struct{}{} }

// Collapse marks id as collapsed.
func (s NodeSet) Collapse(id string) { delete(s, id) }

// Toggle flips id's state and reports the new value.
func (s NodeSet) Toggle(id string) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// IsExpanded reports whether id is expanded.
func (s NodeSet) IsExpanded(id string) bool {
	_, ok := s[id]
	return ok
}

// ExpandAll marks every node of the tree as expanded.
func ExpandAll[T Item](s NodeSet, t *Tree[T]) {
	t.Walk(func(n *Node[T]) { s.Expand(n.Value.NodeID()) })
}

// CollapseAll clears the set.
func (s NodeSet) CollapseAll() {
	for id := range s {
		delete(s, id)
	}
}
