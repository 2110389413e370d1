package enclose

import (
	"math"

	"github.com/katalvlaran/circlepack/geom"
)

// EnclosePoints returns the smallest disk containing every point in pts.
// Returns the zero Disk for an empty input.
func EnclosePoints(pts [][2]float64) geom.Disk {
	n := len(pts)
	if n == 0 {
		return geom.Disk{}
	}
	if n == 1 {
		return geom.Disk{X: pts[0][0], Y: pts[0][1], R: 0}
	}

	d := diskOf2(pts[0], pts[1])
	for i := 2; i < n; i++ {
		if !contains(d, pts[i]) {
			d = withBoundaryPoint(pts[:i+1], pts[i])
		}
	}
	return d
}

// withBoundaryPoint finds the smallest disk containing pts[:len(pts)-1]
// (the prefix before q) that also has q on its boundary.
func withBoundaryPoint(pts [][2]float64, q [2]float64) geom.Disk {
	d := geom.Disk{X: q[0], Y: q[1], R: 0}
	for j := 0; j < len(pts)-1; j++ {
		if !contains(d, pts[j]) {
			d = withTwoBoundaryPoints(pts[:j+1], pts[j], q)
		}
	}
	return d
}

// withTwoBoundaryPoints finds the smallest disk containing pts[:len(pts)-1]
// that has both p and q on its boundary.
func withTwoBoundaryPoints(pts [][2]float64, p, q [2]float64) geom.Disk {
	d := diskOf2(p, q)
	for k := 0; k < len(pts)-1; k++ {
		if !contains(d, pts[k]) {
			if c, ok := geom.CircleThrough(p, q, pts[k]); ok {
				d = c
			}
			// Collinear p, q, pts[k]: the diameter circle of whichever two
			// of the three are farthest apart already contains the third,
			// so d is left unchanged (a degenerate geometry case that
			// never surfaces as a failure, per spec.md 4.9).
		}
	}
	return d
}

// diskOf2 returns the smallest disk with p and q as diameter endpoints.
func diskOf2(p, q [2]float64) geom.Disk {
	cx := (p[0] + q[0]) / 2
	cy := (p[1] + q[1]) / 2
	r := math.Hypot(p[0]-cx, p[1]-cy)
	return geom.Disk{X: cx, Y: cy, R: r}
}

// contains reports whether d contains point q, with a small tolerance for
// floating-point error on points meant to lie exactly on the boundary.
func contains(d geom.Disk, q [2]float64) bool {
	dx := q[0] - d.X
	dy := q[1] - d.Y
	return dx*dx+dy*dy <= d.R*d.R*(1+1e-12)+1e-12
}

// EncloseDisks returns a disk that strictly contains every disk in disks,
// approximating each by the 8 vertices of its circumscribing octagon
// (geom.CircumscribedOctagon) before finding the smallest enclosing disk of
// the combined point set.
func EncloseDisks(disks []geom.Disk) geom.Disk {
	if len(disks) == 0 {
		return geom.Disk{}
	}
	pts := make([][2]float64, 0, len(disks)*8)
	for _, d := range disks {
		oct := geom.CircumscribedOctagon(d)
		for _, p := range oct {
			pts = append(pts, p)
		}
	}
	return EnclosePoints(pts)
}
