package camera

import (
	"github.com/katalvlaran/circlepack/diagram"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/query"
	"github.com/katalvlaran/circlepack/tree"
	"github.com/katalvlaran/circlepack/xform"
)

// State is the rig's animation state (spec.md 4.8's state machine).
type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "Animating"
	}
	return "Idle"
}

const (
	// stepDuration is how long each root-sequence step's Van Wijk blend
	// takes, in the same time units the caller's now passes to Tick.
	stepDuration = 0.5
	// targetHalfWidth sizes the destination viewport around a zoom
	// target: visible width 2.5x the target's own radius.
	targetHalfWidth = 1.25
)

// Rig is the camera's owned animation state: which root sequence an
// in-flight zoom is walking, which step it is on, and the viewport to
// draw this frame. Unlike the source's file-scope camera globals, a Rig
// is a plain value a host can construct as many of as it needs
// (spec.md 9).
type Rig struct {
	d    *diagram.Diagram
	tree *tree.Graph

	state     State
	viewport  geom.AABB
	startTime float64

	initialViewport geom.AABB
	finalViewport   geom.AABB
	rootSequence    []tree.NodeID
	stepIndex       int
	targetNode      tree.NodeID
}

// NewRig returns an Idle rig over a Local-coordinate Diagram, with its
// initial viewport set to initial.
func NewRig(d *diagram.Diagram, initial geom.AABB) *Rig {
	return &Rig{d: d, tree: d.Tree, state: Idle, viewport: initial}
}

// State reports the rig's current animation state.
func (r *Rig) State() State {
	return r.state
}

// Viewport returns the viewport the rig last computed (or its initial
// viewport, if Tick has never advanced).
func (r *Rig) Viewport() geom.AABB {
	return r.viewport
}

// Zoom starts an animated transition from root's current viewport toward
// target, ignored if the rig is already Animating (spec.md 4.8's state
// table). When distant is false, the rig performs a single Van Wijk blend
// in root's own frame. When distant is true, it builds a multi-root
// sequence through the LCA of root and the target's enclosing root, so no
// single blend has to span more orders of magnitude than the local
// coordinate system can resolve.
func (r *Rig) Zoom(now float64, root, target tree.NodeID, distant bool) {
	if r.state == Animating {
		return
	}

	r.state = Animating
	r.startTime = now
	r.stepIndex = 0
	r.targetNode = target
	r.initialViewport = r.viewport

	destAABB := geom.AABB{X0: -targetHalfWidth, Y0: -targetHalfWidth, X1: targetHalfWidth, Y1: targetHalfWidth}
	localDisk := xform.FromDiagram(r.d)

	targetRoot, ok := query.FindEnclosing(r.d, destAABB, target)
	if !ok {
		targetRoot = 0
	}

	if !distant {
		t := xform.TransformLocal(r.tree, localDisk, target, root)
		r.finalViewport = xform.ApplyAABB(t, destAABB)
		r.rootSequence = []tree.NodeID{root}
		return
	}

	t := xform.TransformLocal(r.tree, localDisk, target, targetRoot)
	r.finalViewport = xform.ApplyAABB(t, destAABB)
	r.rootSequence = buildRootSequence(r.tree, root, targetRoot)
}

// buildRootSequence walks up from root to the LCA of root and targetRoot,
// then down from the LCA to targetRoot, and duplicates the final entry.
// The duplicate is intentional (ported from the reference rig's "by
// design, the last node appears twice"): it adds one full extra step of
// stepDuration, in which Tick blends from the last root's own unit view to
// the precomputed final viewport before snapping to it.
func buildRootSequence(g *tree.Graph, root, targetRoot tree.NodeID) []tree.NodeID {
	lca := g.LCA(root, targetRoot)

	up := []tree.NodeID{root}
	for n := root; n != lca; {
		n = g.Parent(n)
		up = append(up, n)
	}

	down := []tree.NodeID{}
	for n := targetRoot; n != lca; n = g.Parent(n) {
		down = append(down, n)
	}
	for i, j := 0, len(down)-1; i < j; i, j = i+1, j-1 {
		down[i], down[j] = down[j], down[i]
	}

	seq := append(up, down...)
	return append(seq, seq[len(seq)-1])
}

// Tick advances an in-flight animation and returns the viewport to draw
// this frame, expressed in root's frame. Ok is false when the rig is
// Idle. When the animation's last step finishes, Tick snaps the viewport
// to the precomputed final value and returns the rig to Idle.
func (r *Rig) Tick(now float64, root tree.NodeID) (geom.AABB, bool) {
	if r.state != Animating {
		return geom.AABB{}, false
	}

	localDisk := xform.FromDiagram(r.d)
	elapsed := now - r.startTime
	seq := r.rootSequence

	if elapsed >= stepDuration {
		r.stepIndex++
		if r.stepIndex >= len(seq) {
			final := xywFromAABB(r.finalViewport)
			t := xform.TransformLocal(r.tree, localDisk, seq[len(seq)-1], root)
			final = applyXYW(t, final)
			r.viewport = aabbFromXYW(final)
			r.state = Idle
			return r.viewport, true
		}
		r.startTime = now
		elapsed = 0
	}

	animRoot := seq[r.stepIndex]
	crosshairT := xform.TransformLocal(r.tree, localDisk, r.targetNode, animRoot)
	crosshairX, crosshairY := crosshairT.Tx, crosshairT.Ty

	var src Viewport
	if r.stepIndex == 0 {
		src = xywFromAABB(r.initialViewport)
	} else {
		prevT := xform.TransformLocal(r.tree, localDisk, seq[r.stepIndex-1], animRoot)
		if r.targetNode == 0 {
			crosshairX, crosshairY = prevT.Tx, prevT.Ty
		}
		src = Viewport{X: crosshairX, Y: crosshairY, W: 2 * prevT.S}
	}

	dst := Viewport{X: crosshairX, Y: crosshairY, W: 2}
	if r.targetNode == 0 {
		dst.X, dst.Y = 0, 0
	}
	if r.stepIndex == len(seq)-1 {
		dst = xywFromAABB(r.finalViewport)
	}

	desired := Blend(src, dst, elapsed/stepDuration)

	toRoot := xform.TransformLocal(r.tree, localDisk, animRoot, root)
	desired = applyXYW(toRoot, desired)

	r.viewport = aabbFromXYW(desired)
	return r.viewport, true
}
