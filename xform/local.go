package xform

import "github.com/katalvlaran/circlepack/tree"

// localDiskFunc returns the local disk (tx, ty, r) that node i occupies in
// its own parent's unit frame, reinterpreted as the Transform that maps a
// point from i's frame into its parent's frame. i must not be the root.
type localDiskFunc func(i tree.NodeID) Transform

// composeDownward walks the chain of nodes strictly between ancestor
// (exclusive) and descendant (inclusive), and composes their local
// transforms in root-to-leaf order. The result maps descendant's frame
// into ancestor's frame.
func composeDownward(localDisk localDiskFunc, g *tree.Graph, ancestor, descendant tree.NodeID) Transform {
	path := make([]tree.NodeID, 0, g.Depth(descendant)-g.Depth(ancestor))
	for n := descendant; n != ancestor; n = g.Parent(n) {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	t := Identity()
	for _, n := range path {
		t = Compose(t, localDisk(n))
	}
	return t
}

// TransformLocal finds the transform that maps a point in node a's local
// frame to the corresponding point in node b's local frame, given the tree
// shape g and a lookup from node to its own local disk (spec.md 4.6).
//
// Strategy, via the lowest common ancestor L of a and b:
//
//   - a == b: identity.
//   - b is a descendant of a (L == a): compose the path a -> ... -> b,
//     which yields b's-frame -> a's-frame, then invert it.
//   - a is a descendant of b (L == b): compose the path b -> ... -> a,
//     which already yields a's-frame -> b's-frame directly.
//   - otherwise: compose a's-frame -> L's-frame with L's-frame -> b's-frame.
//
// This subsumes the root-route fallback: when a and b share no ancestor
// but the root, L is simply the root and the general case applies without
// any special-casing.
func TransformLocal(g *tree.Graph, localDisk localDiskFunc, a, b tree.NodeID) Transform {
	if a == b {
		return Identity()
	}

	l := g.LCA(a, b)
	switch l {
	case a:
		return Invert(composeDownward(localDisk, g, a, b))
	case b:
		return composeDownward(localDisk, g, b, a)
	default:
		aToL := composeDownward(localDisk, g, l, a)
		lToB := Invert(composeDownward(localDisk, g, l, b))
		return Compose(lToB, aToL)
	}
}
