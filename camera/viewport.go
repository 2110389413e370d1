package camera

import (
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/xform"
)

// Viewport is a camera position: centered at (X, Y) with visible width W
// (the visible area is always square, per spec.md 4.8's (x,y,w) triple).
type Viewport struct {
	X, Y, W float64
}

// xywFromAABB reads a Viewport back out of an LBRT box.
func xywFromAABB(box geom.AABB) Viewport {
	return Viewport{
		X: 0.5 * (box.X0 + box.X1),
		Y: 0.5 * (box.Y0 + box.Y1),
		W: box.X1 - box.X0,
	}
}

// aabbFromXYW converts a Viewport to its LBRT box.
func aabbFromXYW(v Viewport) geom.AABB {
	half := v.W / 2
	return geom.AABB{X0: v.X - half, Y0: v.Y - half, X1: v.X + half, Y1: v.Y + half}
}

// applyXYW re-homes v through t: scales W by t.S and maps (X, Y) like any
// other point (spec.md 4.6's transform composition, specialized to a
// viewport triple rather than a disk).
func applyXYW(t xform.Transform, v Viewport) Viewport {
	return Viewport{X: t.S*v.X + t.Tx, Y: t.S*v.Y + t.Ty, W: t.S * v.W}
}
