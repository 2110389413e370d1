package geom

import "math"

// secPiOver8 is sec(pi/8), the ratio between a regular octagon's
// circumradius and its apothem (inradius). Used by CircumscribedOctagon to
// turn a disk radius into the octagon's circumradius.
var secPiOver8 = 1 / math.Cos(math.Pi/8)

// PlaceTangent returns the center of a disk of radius rc placed tangent to
// both a and b, on the counter-clockwise side of the oriented line from a
// to b. This is the closed-form "isoceles triangle" construction: the
// returned point is at distance (a.R+rc) from a.Center() and (b.R+rc) from
// b.Center().
//
// Degenerate case: if a and b coincide, or a.R+rc == 0, c is placed on the
// +x axis of a at distance a.R+rc (per spec.md 4.1); this keeps the function
// total with no panics.
func PlaceTangent(a, b Disk, rc float64) (x, y float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	d2 := dx*dx + dy*dy

	da := a.R + rc
	if d2 == 0 || da == 0 {
		return a.X + da, a.Y
	}

	db := b.R + rc
	da2 := da * da
	db2 := db * db

	// Projection of c's foot along a->b, as a fraction of d2, from the law
	// of cosines applied to the triangle (a, b, c).
	t := (d2 + da2 - db2) / (2 * d2)
	h2 := da2/d2 - t*t
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	return a.X + t*dx - h*dy, a.Y + t*dy + h*dx
}

// CircleThrough returns the circle passing through three points, computed
// from the intersection of two perpendicular bisectors via the determinant
// form. ok is false when the points are (numerically) collinear, in which
// case the returned Disk is the zero value; callers of this kernel function
// are expected to avoid collinear input (spec.md 4.1).
func CircleThrough(p1, p2, p3 [2]float64) (d Disk, ok bool) {
	ax, ay := p1[0], p1[1]
	bx, by := p2[0], p2[1]
	cx, cy := p3[0], p3[1]

	dd := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if dd == 0 {
		return Disk{}, false
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / dd
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / dd

	r := math.Hypot(ax-ux, ay-uy)
	return Disk{X: ux, Y: uy, R: r}, true
}

// CircumscribedOctagon returns the 8 vertices of a regular octagon that
// circumscribes d (d's boundary is tangent to every octagon edge), so the
// octagon is a strict upper bound on d. Its circumradius is d.R*sec(pi/8).
// Used by package enclose to approximate a set of disks by a point set
// before running Welzl's algorithm.
func CircumscribedOctagon(d Disk) [8][2]float64 {
	R := d.R * secPiOver8
	var pts [8][2]float64
	for i := 0; i < 8; i++ {
		theta := float64(i) * math.Pi / 4
		pts[i] = [2]float64{d.X + R*math.Cos(theta), d.Y + R*math.Sin(theta)}
	}
	return pts
}
