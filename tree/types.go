package tree

// NodeID indexes into a Graph's parents/children arrays. Index 0 is always
// the root.
type NodeID = int

// Graph is the CSR-style children index derived from a flat parents array.
// It is built once by Build and is safe to read concurrently from many
// goroutines thereafter (spec.md 5): nothing in this package mutates a
// Graph after construction.
type Graph struct {
	parents  []NodeID // original input, parents[0] == 0
	heads    []NodeID // heads[i]..tails[i] is i's half-open range into children
	tails    []NodeID
	children []NodeID // child indices, original input order
	maxwidth int       // max(tails[i]-heads[i]) across i; scratch buffer sizing
}

// Len returns the number of nodes in the tree.
func (g *Graph) Len() int {
	return len(g.parents)
}

// Parent returns i's parent. Parent(0) == 0 (the root is its own parent).
// Out-of-range i is undefined (spec.md 4.9); this package does not
// bounds-check in non-debug builds.
func (g *Graph) Parent(i NodeID) NodeID {
	return g.parents[i]
}

// Children returns the half-open range [start, end) of node IDs into the
// flat child list that are i's children, in original input order.
func (g *Graph) Children(i NodeID) []NodeID {
	return g.children[g.heads[i]:g.tails[i]]
}

// NumChildren returns len(g.Children(i)) without slicing.
func (g *Graph) NumChildren(i NodeID) int {
	return g.tails[i] - g.heads[i]
}

// MaxWidth returns the maximum fan-out of any node, used to size scratch
// packing buffers that are shared across all sibling groups.
func (g *Graph) MaxWidth() int {
	return g.maxwidth
}

// IsRoot reports whether i is the tree's root (index 0).
func (g *Graph) IsRoot(i NodeID) bool {
	return i == 0
}
