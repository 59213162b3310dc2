// Package accounttree builds and queries the hierarchical chart of
// accounts. It is pure computation over a flat slice of nodes: no
// storage, no locking. Cost center hierarchies reuse the same machinery
// because they share the tree shape.
package accounttree

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrCycle is returned when a node's ancestor chain reaches itself.
	// A cyclic chart of accounts is a fatal configuration error.
	ErrCycle = errors.New("account hierarchy contains a cycle")

	// ErrMissingParent is returned when a node references a parent that
	// is not part of the input set.
	ErrMissingParent = errors.New("account references a missing parent")

	// ErrDuplicateID is returned when two nodes share an id.
	ErrDuplicateID = errors.New("duplicate node id in hierarchy")
)

// Item is anything that can live in a hierarchy: accounts and cost
// centers both satisfy it.
type Item interface {
	NodeID() string
	ParentNodeID() string
	SortCode() string
}

// Node is one resolved position in the forest.
type Node[T Item] struct {
	Value    T
	Level    int // root = 1
	Children []*Node[T]
}

// Tree is an arena of nodes indexed by id. Parent/child links are
// expressed through the index, never as embedded mutable back-pointers.
type Tree[T Item] struct {
	roots []*Node[T]
	index map[string]*Node[T]
}

// Build groups items by parent reference into a forest in O(n) using an
// id -> node map, assigns levels, and rejects cycles and dangling parent
// references. Sibling order is by SortCode, which keeps account-code
// ordering stable across rebuilds.
func Build[T Item](items []T) (*Tree[T], error) {
	index := make(map[string]*Node[T], len(items))
	for _, it := range items {
		id := it.NodeID()
		if _, exists := index[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		index[id] = &Node[T]{Value: it}
	}

	t := &Tree[T]{index: index}
	for _, it := range items {
		node := index[it.NodeID()]
		parentID := it.ParentNodeID()
		if parentID == "" {
			t.roots = append(t.roots, node)
			continue
		}
		parent, ok := index[parentID]
		if !ok {
			return nil, fmt.Errorf("%w: node %s -> parent %s", ErrMissingParent, it.NodeID(), parentID)
		}
		parent.Children = append(parent.Children, node)
	}

	sortSiblings(t.roots)
	for _, node := range index {
		sortSiblings(node.Children)
	}

	// Level assignment doubles as cycle detection: any node a root walk
	// cannot reach sits on (or under) a parent cycle.
	visited := 0
	var walk func(n *Node[T], level int)
	walk = func(n *Node[T], level int) {
		n.Level = level
		visited++
		for _, c := range n.Children {
			walk(c, level+1)
		}
	}
	for _, r := range t.roots {
		walk(r, 1)
	}
	if visited != len(items) {
		return nil, ErrCycle
	}

	return t, nil
}

func sortSiblings[T Item](nodes []*Node[T]) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Value.SortCode() < nodes[j].Value.SortCode()
	})
}

// Roots returns the top-level nodes in code order.
func (t *Tree[T]) Roots() []*Node[T] { return t.roots }

// Len returns the number of nodes in the forest.
func (t *Tree[T]) Len() int { return len(t.index) }

// Lookup returns the node for id, if present.
func (t *Tree[T]) Lookup(id string) (*Node[T], bool) {
	n, ok := t.index[id]
	return n, ok
}

// Ancestors returns the chain from id's parent up to its root.
func (t *Tree[T]) Ancestors(id string) []*Node[T] {
	var chain []*Node[T]
	n, ok := t.index[id]
	if !ok {
		return nil
	}
	for {
		parentID := n.Value.ParentNodeID()
		if parentID == "" {
			return chain
		}
		parent, ok := t.index[parentID]
		if !ok {
			return chain
		}
		chain = append(chain, parent)
		n = parent
	}
}

// Walk visits every node depth-first in display order.
func (t *Tree[T]) Walk(visit func(*Node[T])) {
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		visit(n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range t.roots {
		walk(r)
	}
}

// Flatten returns every item depth-first in display order.
func (t *Tree[T]) Flatten() []T {
	out := make([]T, 0, len(t.index))
	t.Walk(func(n *Node[T]) { out = append(out, n.Value) })
	return out
}

// Filter returns the sub-forest of nodes matching keep plus every
// ancestor of a match, preserving the original ordering. A parent that
// fails the predicate is retained whenever any descendant matches;
// dropping non-matching parents would orphan matching leaves and break
// tree display, so this ancestor-preserving behavior is a contract.
func (t *Tree[T]) Filter(keep func(T) bool) *Tree[T] {
	out := &Tree[T]{index: make(map[string]*Node[T])}

	var filter func(n *Node[T]) *Node[T]
	filter = func(n *Node[T]) *Node[T] {
		var kept []*Node[T]
		for _, c := range n.Children {
			if fc := filter(c); fc != nil {
				kept = append(kept, fc)
			}
		}
		if len(kept) == 0 && !keep(n.Value) {
			return nil
		}
		clone := &Node[T]{Value: n.Value, Level: n.Level, Children: kept}
		out.index[n.Value.NodeID()] = clone
		return clone
	}

	for _, r := range t.roots {
		if fr := filter(r); fr != nil {
			out.roots = append(out.roots, fr)
		}
	}
	return out
}
