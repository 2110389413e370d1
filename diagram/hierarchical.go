package diagram

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/circlepack/frontchain"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/tree"
)

// PackHierarchical builds the full recursive packing of parents: a nominal
// radius per node from its descendant shape, then a per-parent layout pass
// that packs each sibling group and rescales it to fit the parent's disk
// (spec.md 4.5). An empty parents array returns an empty Diagram.
func PackHierarchical(parents []tree.NodeID, opts ...Option) (*Diagram, error) {
	if len(parents) == 0 {
		return empty(), nil
	}

	g, err := tree.Build(parents)
	if err != nil {
		return nil, err
	}

	o := NewPackOptions(opts...)
	nominal := nominalRadii(g)

	disks := make([]geom.Disk, g.Len())
	if o.Coords == Global {
		disks[0] = geom.Disk{X: 0, Y: 0, R: o.RootRadius}
	} else {
		disks[0] = geom.Disk{X: 0, Y: 0, R: 1}
	}

	packer := frontchain.NewPacker(g.MaxWidth())

	// Top-down traversal with an explicit stack: a parent's disk must be
	// written before its children's layout pass can run, so this cannot be
	// a bottom-up walk like nominalRadii's (spec.md 9's recursion note:
	// hpack is one of the call sites an explicit stack replaces).
	stack := make([]tree.NodeID, 0, g.MaxWidth()+1)
	stack = append(stack, 0)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kids := g.Children(node)
		if len(kids) == 0 {
			continue
		}
		layoutChildren(disks, packer, node, kids, nominal, o)
		stack = append(stack, kids...)
	}

	if o.Orientation == Vertical {
		for i := range disks {
			disks[i].X, disks[i].Y = disks[i].Y, disks[i].X
		}
	}

	return &Diagram{Tree: g, Disks: disks}, nil
}

// layoutChildren runs the two-iteration pad-solve loop for one parent's
// sibling group and writes the resulting disks (scaled and translated into
// the parent's frame) into disks.
func layoutChildren(disks []geom.Disk, packer *frontchain.Packer, parent tree.NodeID, kids []tree.NodeID, nominal []float64, o PackOptions) {
	k := len(kids)
	radii := make([]float64, k)
	for i, c := range kids {
		radii[i] = nominal[c]
	}

	// Iteration 1: zero-padding pack, to measure the cluster's natural
	// scale.
	pos1 := packer.Pack(radii)
	e1 := packedEnclosure(pos1, radii)
	pad := 0.0
	if e1.R > 0 {
		pad = o.Pad1 / e1.R
	}

	// Iteration 2: re-pack with every radius inflated by the same
	// scale-invariant fraction, so inter-sibling gutters end up
	// proportional rather than a fixed absolute size (spec.md 4.5's
	// padding rationale).
	inflated := make([]float64, k)
	for i, r := range radii {
		inflated[i] = r * (1 + pad)
	}
	pos2 := packer.Pack(inflated)
	e2 := packedEnclosure(pos2, inflated)
	e2.R *= 1 + o.Pad2

	// Global mode scales by P.r/E'.r and translates into the parent's world
	// position; Local mode scales by 1/E'.r with no translation, so every
	// child ends up expressed purely in units of the parent's own radius
	// (spec.md 4.5 step 3).
	p := disks[parent]
	var s, tx, ty float64
	if o.Coords == Global {
		if e2.R > 0 {
			s = p.R / e2.R
		}
		tx, ty = p.X, p.Y
	} else {
		if e2.R > 0 {
			s = 1 / e2.R
		}
	}

	for i, c := range kids {
		dx := pos2[i].X - e2.X
		dy := pos2[i].Y - e2.Y
		disks[c] = geom.Disk{
			X: tx + s*dx,
			Y: ty + s*dy,
			R: s * (radii[i] - pad*e2.R),
		}
	}
}

// packedEnclosure computes the cheap AABB-midpoint + max-reach enclosure
// heuristic used by the pad-solve loop (spec.md 4.5): center is the
// midpoint of the packed disks' bounding box, radius is the farthest
// center-to-center distance plus that child's own radius.
func packedEnclosure(pos []r2.Vec, radii []float64) geom.Disk {
	if len(pos) == 0 {
		return geom.Disk{}
	}

	box := geom.Disk{X: pos[0].X, Y: pos[0].Y, R: radii[0]}.AABB()
	for i := 1; i < len(pos); i++ {
		box = box.Union(geom.Disk{X: pos[i].X, Y: pos[i].Y, R: radii[i]}.AABB())
	}
	cx := (box.X0 + box.X1) / 2
	cy := (box.Y0 + box.Y1) / 2

	maxReach := 0.0
	for i, p := range pos {
		dx := p.X - cx
		dy := p.Y - cy
		reach := hypot(dx, dy) + radii[i]
		if reach > maxReach {
			maxReach = reach
		}
	}
	return geom.Disk{X: cx, Y: cy, R: maxReach}
}

func hypot(dx, dy float64) float64 {
	return r2.Norm(r2.Vec{X: dx, Y: dy})
}
