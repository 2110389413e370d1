package query

import (
	"github.com/katalvlaran/circlepack/diagram"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/tree"
	"github.com/katalvlaran/circlepack/xform"
)

// PickLocal finds the node under (x, y) in root's frame via FindEnclosing
// with a zero-size probe box, then walks back up from that node toward
// root, stopping at the first ancestor (inclusive of the match itself)
// whose own disk radius, expressed in root's frame, is at least minradius,
// or at root itself when no node below it qualifies. This lets a deep-zoom renderer refuse to pick a node too small to be a
// sensible hit target (spec.md 4.7).
//
// Loop bounds are re-derived directly from the tree shape rather than from
// a depth counter relative to root, since a depth-indexed stop condition
// misbehaves whenever root is not the overall tree root (spec.md 9).
func PickLocal(d *diagram.Diagram, x, y float64, root tree.NodeID, minradius float64) (tree.NodeID, bool) {
	target, ok := FindEnclosing(d, geom.PointAABB(x, y), root)
	if !ok {
		return 0, false
	}

	g := d.Tree
	localDisk := xform.FromDiagram(d)
	effectiveR := xform.TransformLocal(g, localDisk, target, root).S

	cur := target
	for {
		if effectiveR >= minradius {
			return cur, true
		}
		if cur == root {
			return root, true
		}
		effectiveR /= localDisk(cur).S
		cur = g.Parent(cur)
	}
}
