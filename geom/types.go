package geom

import "gonum.org/v1/gonum/spatial/r2"

// Disk is a circle (X, Y, R) in double precision. Depending on the caller,
// the coordinates are either a global (world) frame or a node-local frame
// in which the node's parent maps to (0, 0, 1); see package xform.
type Disk struct {
	X, Y, R float64
}

// Center returns the disk's center as an r2.Vec, for use with gonum's
// vector helpers.
func (d Disk) Center() r2.Vec {
	return r2.Vec{X: d.X, Y: d.Y}
}

// AABB is an axis-aligned bounding box with X0 <= X1 and Y0 <= Y1.
type AABB struct {
	X0, Y0, X1, Y1 float64
}

// PointAABB returns the degenerate, zero-area box at (x, y); used by
// pick_local to probe a single point via find_enclosing.
func PointAABB(x, y float64) AABB {
	return AABB{X0: x, Y0: y, X1: x, Y1: y}
}

// AABB returns the tight bounding box of a disk.
func (d Disk) AABB() AABB {
	return AABB{X0: d.X - d.R, Y0: d.Y - d.R, X1: d.X + d.R, Y1: d.Y + d.R}
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		X0: min(a.X0, b.X0),
		Y0: min(a.Y0, b.Y0),
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
	}
}
