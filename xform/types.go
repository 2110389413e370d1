package xform

import "github.com/katalvlaran/circlepack/geom"

// Transform is the affine map (x, y) -> (s*x + tx, s*y + ty): a uniform
// scale followed by a translation (spec.md 4.6).
type Transform struct {
	Tx, Ty, S float64
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return Transform{Tx: 0, Ty: 0, S: 1}
}

// Compose returns the transform equivalent to applying b first, then a:
// Compose(a, b).Apply(p) == a.Apply(b.Apply(p)).
func Compose(a, b Transform) Transform {
	return Transform{
		Tx: a.S*b.Tx + a.Tx,
		Ty: a.S*b.Ty + a.Ty,
		S:  a.S * b.S,
	}
}

// Invert returns t's inverse. Invert panics if t.S == 0, which cannot occur
// for any transform built from a packed diagram's disk radii (zero-radius
// disks are excluded by construction).
func Invert(t Transform) Transform {
	if t.S == 0 {
		panic("xform: cannot invert a transform with zero scale")
	}
	return Transform{
		Tx: -t.Tx / t.S,
		Ty: -t.Ty / t.S,
		S:  1 / t.S,
	}
}

// Apply maps d through t: a disk centered at (d.X, d.Y) with radius d.R in
// t's source frame becomes a disk in t's target frame.
func Apply(t Transform, d geom.Disk) geom.Disk {
	return geom.Disk{
		X: t.S*d.X + t.Tx,
		Y: t.S*d.Y + t.Ty,
		R: t.S * d.R,
	}
}

// ApplyAABB maps box through t. A uniform scale plus translation keeps an
// axis-aligned box axis-aligned, so this only needs to map two opposite
// corners and re-sort them (t.S < 0 never occurs for a transform built from
// packed disk radii, but the sort makes this defensive anyway).
func ApplyAABB(t Transform, box geom.AABB) geom.AABB {
	x0, y0 := t.S*box.X0+t.Tx, t.S*box.Y0+t.Ty
	x1, y1 := t.S*box.X1+t.Tx, t.S*box.Y1+t.Ty
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return geom.AABB{X0: x0, Y0: y0, X1: x1, Y1: y1}
}
