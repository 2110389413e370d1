package query

import (
	"github.com/katalvlaran/circlepack/diagram"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/tree"
)

// Pick returns the deepest node whose Global-coordinate disk contains
// (x, y), since children are drawn on top of their parents (spec.md 4.7).
// Ok is false if (x, y) falls outside the root's disk entirely.
//
// Because sibling disks never overlap, at most one child can contain the
// point at each level, so the search degenerates into a single downward
// walk rather than a true branching DFS — no explicit stack is needed
// here the way Cull needs one.
func Pick(d *diagram.Diagram, x, y float64) (tree.NodeID, bool) {
	if d.Len() == 0 || !diskContains(d.Disk(0), x, y) {
		return 0, false
	}

	cur := tree.NodeID(0)
	for {
		next, ok := firstContaining(d, cur, x, y)
		if !ok {
			return cur, true
		}
		cur = next
	}
}

func firstContaining(d *diagram.Diagram, node tree.NodeID, x, y float64) (tree.NodeID, bool) {
	for _, c := range d.Tree.Children(node) {
		if diskContains(d.Disk(c), x, y) {
			return c, true
		}
	}
	return 0, false
}

func diskContains(d geom.Disk, x, y float64) bool {
	dx, dy := x-d.X, y-d.Y
	return dx*dx+dy*dy <= d.R*d.R
}
