package diagram

import (
	"github.com/katalvlaran/circlepack/enclose"
	"github.com/katalvlaran/circlepack/frontchain"
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/tree"
)

// PackFlat packs a flat sequence of radii with no enclosing constraint,
// using the front-chain algorithm directly (spec.md 4.3). The returned
// Diagram wraps the packed cluster in a synthetic two-level tree: node 0 is
// a virtual root disk (the smallest disk enclosing the whole cluster, via
// package enclose) and nodes 1..n are the packed disks in input order,
// unscaled and untranslated — so PackFlat([1,1,1]) places disks 1,2,3 at
// exactly the front-chain's raw output (spec.md 8 scenario S1).
//
// An empty radii list returns an empty Diagram (spec.md 7).
func PackFlat(radii []float64) *Diagram {
	n := len(radii)
	if n == 0 {
		return empty()
	}

	parents := make([]tree.NodeID, n+1)
	for i := 1; i <= n; i++ {
		parents[i] = 0
	}
	g, err := tree.Build(parents)
	if err != nil {
		// parents[0] == 0 by construction, so Build cannot fail here.
		panic(err)
	}

	pos := frontchain.NewPacker(n).Pack(radii)

	disks := make([]geom.Disk, n+1)
	for i, p := range pos {
		disks[i+1] = geom.Disk{X: p.X, Y: p.Y, R: radii[i]}
	}
	disks[0] = enclose.EncloseDisks(disks[1:])

	return &Diagram{Tree: g, Disks: disks}
}
