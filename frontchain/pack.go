package frontchain

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/circlepack/geom"
)

// Pack lays out len(radii) disks with no overlaps, compactly clustered, and
// returns their centers in the same order as radii. Radii must all be > 0;
// behavior for n <= 3 is exactly the triangle initialization described
// below (spec.md 4.3's tie-break invariant: "when no disks remain, the
// initialization already produced the final layout").
//
// Pack reuses p's scratch ring across calls; it is not safe for concurrent
// use on the same Packer.
func (p *Packer) Pack(radii []float64) []r2.Vec {
	n := len(radii)
	if n == 0 {
		return nil
	}

	p.ensureCap(n)
	p.n = n
	copy(p.radii, radii)

	if n == 1 {
		p.xs[0], p.ys[0] = 0, 0
		return []r2.Vec{{X: 0, Y: 0}}
	}

	// Initialization: disk 0 at (-r0,0), disk 1 at (+r1,0) — exactly
	// tangent, since the gap between centers is r0+r1.
	p.xs[0], p.ys[0] = -radii[0], 0
	p.xs[1], p.ys[1] = radii[1], 0

	if n == 2 {
		return p.positions()
	}

	d0 := geom.Disk{X: p.xs[0], Y: p.ys[0], R: radii[0]}
	d1 := geom.Disk{X: p.xs[1], Y: p.ys[1], R: radii[1]}
	p.xs[2], p.ys[2] = geom.PlaceTangent(d0, d1, radii[2])

	// Front-chain ring 0 -> 1 -> 2 -> 0 (counter-clockwise).
	p.next[0], p.next[1], p.next[2] = 1, 2, 0
	p.prev[0], p.prev[1], p.prev[2] = 2, 0, 1

	if n == 3 {
		return p.positions()
	}

	// Cm starts at whichever of the three initial disks is farthest from
	// the origin. The source reads as "closest" in its comment but the
	// comparison it actually performs is ">" on squared distance, i.e.
	// farthest; spec.md 9's open question says to pin the observed
	// behavior rather than the comment, so that is what this implements.
	cm := 0
	bestD2 := p.xs[0]*p.xs[0] + p.ys[0]*p.ys[0]
	for i := 1; i < 3; i++ {
		d2 := p.xs[i]*p.xs[i] + p.ys[i]*p.ys[i]
		if d2 > bestD2 {
			bestD2 = d2
			cm = i
		}
	}

	for i := 3; i < n; i++ {
		cm = p.insert(i, radii[i], cm)
	}

	return p.positions()
}

// insert places disk i into the chain, retrying as collisions shrink the
// candidate segment, and returns the chain position i should be inserted
// after for the next iteration (spec.md 4.3's "set Cm := i").
func (p *Packer) insert(i int, ri float64, cm int) int {
	for {
		cn := p.next[cm]

		x, y := geom.PlaceTangent(
			geom.Disk{X: p.xs[cn], Y: p.ys[cn], R: p.radii[cn]},
			geom.Disk{X: p.xs[cm], Y: p.ys[cm], R: p.radii[cm]},
			ri,
		)

		// Two independent bounded walks around the ring — forward from
		// cn's successor back to cn, backward from cm's predecessor back
		// to cm — rather than a single two-pointer walk looking for the
		// pointers to meet, which never happens on an even-sized ring
		// (par_bubbles__collide, par_bubbles.h:208).
		fwdHit, nf := p.walkForward(x, y, ri, cn)
		bwdHit, nb := p.walkBackward(x, y, ri, cm)

		switch {
		case fwdHit < 0 && bwdHit < 0:
			p.xs[i], p.ys[i] = x, y
			p.next[cm], p.prev[i] = i, cm
			p.next[i], p.prev[cn] = cn, i
			return i

		case bwdHit < 0 || (fwdHit >= 0 && nf <= nb):
			// Conflict was ahead of cn, or equidistant (forward wins
			// ties, spec.md 4.3): shrink the chain so cn becomes hit,
			// keep cm, and retry the same disk i.
			p.next[cm], p.prev[fwdHit] = fwdHit, cm

		default:
			// Conflict was behind cm: shrink the chain so cm becomes
			// hit, keep the original cn as the far end, and retry.
			p.next[bwdHit], p.prev[cn] = cn, bwdHit
			cm = bwdHit
		}
	}
}

// walkForward scans the ring from cn's successor around to cn, returning the
// first node that the candidate disk (x,y,r) overlaps and the number of
// steps taken to reach it, or (-1, totalSteps) if the whole ring is clear.
func (p *Packer) walkForward(x, y, r float64, cn int) (hit, steps int) {
	for node := p.next[cn]; node != cn; node = p.next[node] {
		if p.overlaps(x, y, r, node) {
			return node, steps
		}
		steps++
	}
	return -1, steps
}

// walkBackward is walkForward's mirror, scanning from cm's predecessor
// around to cm.
func (p *Packer) walkBackward(x, y, r float64, cm int) (hit, steps int) {
	for node := p.prev[cm]; node != cm; node = p.prev[node] {
		if p.overlaps(x, y, r, node) {
			return node, steps
		}
		steps++
	}
	return -1, steps
}

func (p *Packer) positions() []r2.Vec {
	out := make([]r2.Vec, p.n)
	for i := 0; i < p.n; i++ {
		out[i] = geom.Disk{X: p.xs[i], Y: p.ys[i]}.Center()
	}
	return out
}
