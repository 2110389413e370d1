package query

import (
	"github.com/katalvlaran/circlepack/diagram"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/tree"
	"github.com/katalvlaran/circlepack/xform"
)

// survivor records one node that passed a cull test, in the compact index
// space of the output Diagram.
type survivor struct {
	orig      tree.NodeID
	newParent int
	disk      geom.Disk
}

// buildCulled turns a flat survivor list (in the order they were appended
// — parents always appended before their children, since a node is only
// queued after its own parent has already passed) into an output Diagram.
func buildCulled(survivors []survivor) *diagram.Diagram {
	if len(survivors) == 0 {
		return &diagram.Diagram{}
	}

	parents := make([]tree.NodeID, len(survivors))
	disks := make([]geom.Disk, len(survivors))
	ids := make([]int, len(survivors))
	for i, s := range survivors {
		if s.newParent < 0 {
			parents[i] = 0
		} else {
			parents[i] = s.newParent
		}
		disks[i] = s.disk
		ids[i] = s.orig
	}

	t, err := tree.Build(parents)
	if err != nil {
		// Derived from a DFS over an already-valid tree, so parents[0] == 0
		// and every other entry points at an earlier, already-built index.
		panic(err)
	}
	return &diagram.Diagram{Tree: t, Disks: disks, IDs: ids}
}

// Cull copies every node of a Global-coordinate Diagram whose disk
// intersects aabb and whose radius is at least minradius into a new
// Diagram, via an explicit-stack DFS from the root. Descent stops the
// moment a node fails either test, so an entire failing subtree is skipped
// rather than merely excluded node-by-node (spec.md 4.7, 9).
func Cull(d *diagram.Diagram, aabb geom.AABB, minradius float64) *diagram.Diagram {
	if d.Len() == 0 {
		return &diagram.Diagram{}
	}

	type frame struct {
		node      tree.NodeID
		parentNew int
	}

	var survivors []survivor
	stack := []frame{{0, -1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		disk := d.Disk(f.node)
		if !geom.DiskIntersectsAABB(disk, aabb) || disk.R < minradius {
			continue
		}

		myNew := len(survivors)
		survivors = append(survivors, survivor{orig: f.node, newParent: f.parentNew, disk: disk})

		for _, c := range d.Tree.Children(f.node) {
			stack = append(stack, frame{c, myNew})
		}
	}

	return buildCulled(survivors)
}

// CullLocal is Cull's Local-coordinate counterpart: it never reads a
// node's world position, instead composing each node's transform into
// root's frame on the fly as the DFS descends, and writes out every
// surviving disk already expressed in root's frame — so the output
// Diagram's own root sits at exactly (0, 0, 1) (spec.md 4.7).
func CullLocal(d *diagram.Diagram, aabb geom.AABB, minradius float64, root tree.NodeID) *diagram.Diagram {
	if d.Len() == 0 {
		return &diagram.Diagram{}
	}

	localDisk := xform.FromDiagram(d)

	type frame struct {
		node      tree.NodeID
		parentNew int
		toRoot    xform.Transform
	}

	var survivors []survivor
	stack := []frame{{root, -1, xform.Identity()}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		disk := xform.Apply(f.toRoot, selfDisk)
		if !geom.DiskIntersectsAABB(disk, aabb) || disk.R < minradius {
			continue
		}

		myNew := len(survivors)
		survivors = append(survivors, survivor{orig: f.node, newParent: f.parentNew, disk: disk})

		for _, c := range d.Tree.Children(f.node) {
			stack = append(stack, frame{c, myNew, xform.Compose(f.toRoot, localDisk(c))})
		}
	}

	return buildCulled(survivors)
}
