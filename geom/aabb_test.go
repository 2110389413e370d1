package geom_test

import (
	"testing"

	"github.com/katalvlaran/circlepack/geom"
)

// TestDiskIntersectsAABB exercises the strict clamp-distance predicate
// against a disk that touches, straddles, and misses a unit box.
func TestDiskIntersectsAABB(t *testing.T) {
	box := geom.AABB{X0: 0, Y0: 0, X1: 1, Y1: 1}
	cases := []struct {
		name string
		d    geom.Disk
		want bool
	}{
		{"center inside", geom.Disk{X: 0.5, Y: 0.5, R: 0.1}, true},
		{"overlapping corner", geom.Disk{X: -0.5, Y: -0.5, R: 1}, true},
		{"tangent to edge (not strict)", geom.Disk{X: -1, Y: 0.5, R: 1}, false},
		{"far away", geom.Disk{X: 10, Y: 10, R: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geom.DiskIntersectsAABB(tc.d, box); got != tc.want {
				t.Errorf("DiskIntersectsAABB(%+v, %+v) = %v; want %v", tc.d, box, got, tc.want)
			}
		})
	}
}

// TestDiskEnclosesAABB checks the four-corner containment predicate.
func TestDiskEnclosesAABB(t *testing.T) {
	box := geom.AABB{X0: -1, Y0: -1, X1: 1, Y1: 1}
	cases := []struct {
		name string
		d    geom.Disk
		want bool
	}{
		{"exact circumscribed circle", geom.Disk{X: 0, Y: 0, R: 1.4142135623730951}, true},
		{"slightly too small", geom.Disk{X: 0, Y: 0, R: 1.4}, false},
		{"centered large", geom.Disk{X: 0, Y: 0, R: 5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geom.DiskEnclosesAABB(tc.d, box); got != tc.want {
				t.Errorf("DiskEnclosesAABB(%+v, %+v) = %v; want %v", tc.d, box, got, tc.want)
			}
		})
	}
}

// TestAABBUnion verifies the union of two disjoint boxes bounds both.
func TestAABBUnion(t *testing.T) {
	a := geom.AABB{X0: 0, Y0: 0, X1: 1, Y1: 1}
	b := geom.AABB{X0: 2, Y0: -3, X1: 4, Y1: -1}
	u := a.Union(b)
	want := geom.AABB{X0: 0, Y0: -3, X1: 4, Y1: 1}
	if u != want {
		t.Errorf("Union = %+v; want %+v", u, want)
	}
}
