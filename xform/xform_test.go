package xform_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/circlepack/diagram"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/tree"
	"github.com/katalvlaran/circlepack/xform"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertTransform(t *testing.T, got xform.Transform, want xform.Transform, eps float64) {
	t.Helper()
	if !approxEqual(got.Tx, want.Tx, eps) || !approxEqual(got.Ty, want.Ty, eps) || !approxEqual(got.S, want.S, eps) {
		t.Errorf("transform = %+v; want %+v", got, want)
	}
}

func TestIdentity(t *testing.T) {
	p := geom.Disk{X: 3, Y: -2, R: 1.5}
	got := xform.Apply(xform.Identity(), p)
	if got != p {
		t.Errorf("Apply(Identity(), %+v) = %+v; want unchanged", p, got)
	}
}

func TestComposeInvert(t *testing.T) {
	a := xform.Transform{Tx: 1, Ty: 2, S: 2}
	b := xform.Transform{Tx: -1, Ty: 0.5, S: 0.5}

	composed := xform.Compose(a, b)
	p := geom.Disk{X: 1, Y: 1, R: 1}
	direct := xform.Apply(a, xform.Apply(b, p))
	viaComposed := xform.Apply(composed, p)
	if !approxEqual(direct.X, viaComposed.X, 1e-12) || !approxEqual(direct.Y, viaComposed.Y, 1e-12) || !approxEqual(direct.R, viaComposed.R, 1e-12) {
		t.Errorf("Compose mismatch: direct=%+v composed=%+v", direct, viaComposed)
	}

	roundTrip := xform.Compose(xform.Invert(a), a)
	assertTransform(t, roundTrip, xform.Identity(), 1e-12)
}

// TestTransformLocal_SameNode checks the a == b identity shortcut.
func TestTransformLocal_SameNode(t *testing.T) {
	parents := []tree.NodeID{0, 0, 0}
	d, err := diagram.PackHierarchical(parents, diagram.WithCoords(diagram.Local))
	if err != nil {
		t.Fatalf("PackHierarchical: %v", err)
	}
	got := xform.TransformLocalDiagram(d, 1, 1)
	assertTransform(t, got, xform.Identity(), 1e-12)
}

// TestTransformLocal_ParentChild checks that the transform from a child's
// frame to its parent's frame matches the child's own local disk directly.
func TestTransformLocal_ParentChild(t *testing.T) {
	parents := []tree.NodeID{0, 0, 0, 0}
	d, err := diagram.PackHierarchical(parents, diagram.WithCoords(diagram.Local))
	if err != nil {
		t.Fatalf("PackHierarchical: %v", err)
	}
	child := d.Disk(1)
	got := xform.TransformLocalDiagram(d, 1, 0)
	assertTransform(t, got, xform.Transform{Tx: child.X, Ty: child.Y, S: child.R}, 1e-12)
}

// TestTransformLocal_Cousins exercises the general LCA-routed case: two
// grandchildren under different children of the root.
func TestTransformLocal_Cousins(t *testing.T) {
	// 0 root; 1,2 children of root; 3 child of 1; 4 child of 2.
	parents := []tree.NodeID{0, 0, 0, 1, 2}
	d, err := diagram.PackHierarchical(parents, diagram.WithCoords(diagram.Local))
	if err != nil {
		t.Fatalf("PackHierarchical: %v", err)
	}

	// A point at node 3's own center, pushed into node 4's frame, then back
	// into node 3's frame, must round-trip to the origin.
	fwd := xform.TransformLocalDiagram(d, 3, 4)
	back := xform.TransformLocalDiagram(d, 4, 3)
	roundTrip := xform.Compose(back, fwd)
	assertTransform(t, roundTrip, xform.Identity(), 1e-9)

	origin := geom.Disk{X: 0, Y: 0, R: 1}
	moved := xform.Apply(fwd, origin)
	// node 3's world position, expressed via composing through the root,
	// should match what Apply(fwd, origin) produces when mapped back out to
	// the root frame through node 4's own chain.
	backToRoot := xform.TransformLocalDiagram(d, 4, 0)
	gotWorld := xform.Apply(backToRoot, moved)

	rootWorld := xform.Apply(xform.TransformLocalDiagram(d, 3, 0), origin)
	if !approxEqual(gotWorld.X, rootWorld.X, 1e-9) || !approxEqual(gotWorld.Y, rootWorld.Y, 1e-9) {
		t.Errorf("cousin route mismatch: got=%+v want=%+v", gotWorld, rootWorld)
	}
}

// TestTransformLocal_Descendant checks the ancestor/descendant shortcut
// against manual composition through an intermediate node.
func TestTransformLocal_Descendant(t *testing.T) {
	parents := []tree.NodeID{0, 0, 1}
	d, err := diagram.PackHierarchical(parents, diagram.WithCoords(diagram.Local))
	if err != nil {
		t.Fatalf("PackHierarchical: %v", err)
	}

	rootToGrandchild := xform.TransformLocalDiagram(d, 0, 2)
	viaChild := xform.Compose(xform.TransformLocalDiagram(d, 1, 2), xform.TransformLocalDiagram(d, 0, 1))
	assertTransform(t, rootToGrandchild, viaChild, 1e-9)
}
