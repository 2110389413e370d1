package xform

import (
	"github.com/katalvlaran/circlepack/diagram"
	"github.com/katalvlaran/circlepack/tree"
)

// FromDiagram adapts a Local-coordinate Diagram into the localDiskFunc
// TransformLocal needs: node i's own disk, read straight out of d, already
// is the transform mapping i's frame into its parent's frame (spec.md 4.6).
//
// d must have been packed with WithCoords(Local); calling this against a
// Global diagram produces nonsense transforms silently, since a Global
// disk's (X, Y, R) are world-space, not parent-relative.
func FromDiagram(d *diagram.Diagram) localDiskFunc {
	return func(i tree.NodeID) Transform {
		disk := d.Disk(i)
		return Transform{Tx: disk.X, Ty: disk.Y, S: disk.R}
	}
}

// TransformLocalDiagram computes the transform from node a's local frame to node
// b's local frame within a Local-coordinate Diagram's tree.
func TransformLocalDiagram(d *diagram.Diagram, a, b tree.NodeID) Transform {
	return TransformLocal(d.Tree, FromDiagram(d), a, b)
}
