package query

import (
	"github.com/katalvlaran/circlepack/diagram"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/tree"
	"github.com/katalvlaran/circlepack/xform"
)

// selfDisk is every node's own disk in its own local frame: centered at the
// origin with radius 1, by the local coordinate system's definition.
var selfDisk = geom.Disk{X: 0, Y: 0, R: 1}

// FindEnclosing returns the deepest node, reached from root, whose own
// local disk fully encloses aabb (aabb given in root's own frame). If
// root's disk does not enclose aabb, the search ascends toward the
// overall tree root, transforming aabb into each parent's frame in turn,
// until it finds an enclosing node or runs out of ancestors (spec.md 4.7).
func FindEnclosing(d *diagram.Diagram, aabb geom.AABB, root tree.NodeID) (tree.NodeID, bool) {
	if d.Len() == 0 {
		return 0, false
	}

	g := d.Tree
	localDisk := xform.FromDiagram(d)
	cur := root
	box := aabb

	for !geom.DiskEnclosesAABB(selfDisk, box) {
		if cur == 0 {
			return 0, false
		}
		box = xform.ApplyAABB(localDisk(cur), box)
		cur = g.Parent(cur)
	}

	for {
		next, nextBox, ok := firstEnclosingChild(g, localDisk, cur, box)
		if !ok {
			return cur, true
		}
		cur, box = next, nextBox
	}
}

func firstEnclosingChild(g *tree.Graph, localDisk func(tree.NodeID) xform.Transform, node tree.NodeID, box geom.AABB) (tree.NodeID, geom.AABB, bool) {
	for _, c := range g.Children(node) {
		childBox := xform.ApplyAABB(xform.Invert(localDisk(c)), box)
		if geom.DiskEnclosesAABB(selfDisk, childBox) {
			return c, childBox, true
		}
	}
	return 0, geom.AABB{}, false
}
