package camera_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circlepack/camera"
	"github.com/katalvlaran/circlepack/diagram"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/tree"
)

// TestBlend_Symmetry pins scenario S6: blend(u0,u1,t) == blend(u1,u0,1-t).
func TestBlend_Symmetry(t *testing.T) {
	cases := []struct {
		u0, u1 camera.Viewport
		t      float64
	}{
		{camera.Viewport{X: 0, Y: 0, W: 1}, camera.Viewport{X: 10, Y: 5, W: 0.001}, 0.3},
		{camera.Viewport{X: -2, Y: 3, W: 4}, camera.Viewport{X: 2, Y: -1, W: 40}, 0.75},
		{camera.Viewport{X: 0, Y: 0, W: 1}, camera.Viewport{X: 0, Y: 0, W: 0.01}, 0.5},
	}
	for _, c := range cases {
		a := camera.Blend(c.u0, c.u1, c.t)
		b := camera.Blend(c.u1, c.u0, 1-c.t)
		assert.InDelta(t, a.X, b.X, 1e-9)
		assert.InDelta(t, a.Y, b.Y, 1e-9)
		assert.InDelta(t, a.W, b.W, 1e-9)
	}
}

func TestBlend_Endpoints(t *testing.T) {
	u0 := camera.Viewport{X: 0, Y: 0, W: 1}
	u1 := camera.Viewport{X: 5, Y: 5, W: 100}

	start := camera.Blend(u0, u1, 0)
	assert.InDelta(t, u0.X, start.X, 1e-9)
	assert.InDelta(t, u0.W, start.W, 1e-9)

	end := camera.Blend(u0, u1, 1)
	assert.InDelta(t, u1.X, end.X, 1e-6)
	assert.InDelta(t, u1.W, end.W, 1e-6)
}

func TestBlend_ZeroLateralDistanceFallsBackToExponential(t *testing.T) {
	u0 := camera.Viewport{X: 3, Y: 3, W: 2}
	u1 := camera.Viewport{X: 3, Y: 3, W: 8}

	got := camera.Blend(u0, u1, 0.5)
	want := u0.W * math.Pow(u1.W/u0.W, 0.5)
	assert.InDelta(t, want, got.W, 1e-9)
	assert.Equal(t, u0.X, got.X)
	assert.Equal(t, u0.Y, got.Y)
}

func buildRig(t *testing.T) *camera.Rig {
	t.Helper()
	// 0 root; 1,2 children of root; 3 child of 1; 4 child of 3.
	parents := []tree.NodeID{0, 0, 0, 1, 3}
	d, err := diagram.PackHierarchical(parents, diagram.WithCoords(diagram.Local))
	require.NoError(t, err)
	return camera.NewRig(d, geom.AABB{X0: -1, Y0: -1, X1: 1, Y1: 1})
}

func TestRig_IdleUntilZoomed(t *testing.T) {
	rig := buildRig(t)
	require.Equal(t, camera.Idle, rig.State())
	_, ok := rig.Tick(0, 0)
	assert.False(t, ok, "Tick on an Idle rig should return ok=false")
}

func TestRig_ZoomIgnoredWhileAnimating(t *testing.T) {
	rig := buildRig(t)
	rig.Zoom(0, 0, 4, false)
	require.Equal(t, camera.Animating, rig.State())

	rig.Zoom(0, 0, 2, true) // ignored: rig is already animating toward node 4
	_, ok := rig.Tick(0.1, 0)
	assert.True(t, ok, "rig should still be animating toward the first target")
}

const stepsEnough = 2.0

func TestRig_NearModeReachesIdle(t *testing.T) {
	rig := buildRig(t)
	rig.Zoom(0, 0, 4, false)

	var finalViewport geom.AABB
	for now := 0.0; now <= stepsEnough; now += 0.1 {
		vp, ok := rig.Tick(now, 0)
		if !ok {
			break
		}
		finalViewport = vp
	}
	assert.Equal(t, camera.Idle, rig.State())
	assert.NotEqual(t, geom.AABB{}, finalViewport)
}

func TestRig_DistantModeMultiStep(t *testing.T) {
	rig := buildRig(t)
	// Target node 2 is a sibling subtree of node 1's chain; from node 3
	// (under node 1), this should force a multi-root sequence.
	rig.Zoom(0, 3, 2, true)
	require.Equal(t, camera.Animating, rig.State())

	steps := 0
	for now := 0.0; now <= 10.0; now += 0.1 {
		_, ok := rig.Tick(now, 3)
		if !ok {
			break
		}
		steps++
	}
	assert.Equal(t, camera.Idle, rig.State())
	assert.Greater(t, steps, 0)
}
