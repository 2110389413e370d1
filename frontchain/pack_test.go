package frontchain_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/circlepack/frontchain"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// TestPack_ThreeEqualDisks pins scenario S1 from spec.md 8: packing three
// unit disks must produce an equilateral triangle of centers.
func TestPack_ThreeEqualDisks(t *testing.T) {
	p := frontchain.NewPacker(3)
	pos := p.Pack([]float64{1, 1, 1})

	want := [][2]float64{{-1, 0}, {1, 0}, {0, math.Sqrt(3)}}
	for i, w := range want {
		if !approxEqual(pos[i].X, w[0], 1e-9) || !approxEqual(pos[i].Y, w[1], 1e-9) {
			t.Errorf("pos[%d] = (%v,%v); want (%v,%v)", i, pos[i].X, pos[i].Y, w[0], w[1])
		}
	}
}

// TestPack_NoOverlap packs a larger, irregular radius sequence and checks
// invariant 1 from spec.md 8: every pair of disks is non-overlapping within
// the packer's own 0.999 slack.
func TestPack_NoOverlap(t *testing.T) {
	radii := []float64{1, 2, 0.5, 3, 1.5, 0.8, 2.2, 1.1, 0.3, 4, 0.6, 1.9}
	p := frontchain.NewPacker(len(radii))
	pos := p.Pack(radii)

	for i := 0; i < len(radii); i++ {
		for j := i + 1; j < len(radii); j++ {
			dx := pos[i].X - pos[j].X
			dy := pos[i].Y - pos[j].Y
			dist := math.Hypot(dx, dy)
			minDist := radii[i] + radii[j]
			if dist < minDist-minDist*0.001-1e-9 {
				t.Errorf("disks %d,%d overlap: dist=%v, minDist=%v", i, j, dist, minDist)
			}
		}
	}
}

// TestPack_Degenerate exercises n=0,1,2 which bypass the front-chain loop
// entirely per spec.md 4.3.
func TestPack_Degenerate(t *testing.T) {
	p := frontchain.NewPacker(4)

	if got := p.Pack(nil); got != nil {
		t.Errorf("Pack(nil) = %v; want nil", got)
	}

	single := p.Pack([]float64{2})
	if len(single) != 1 || single[0].X != 0 || single[0].Y != 0 {
		t.Errorf("Pack([2]) = %v; want [(0,0)]", single)
	}

	two := p.Pack([]float64{1, 2})
	wantDist := 3.0
	gotDist := math.Hypot(two[0].X-two[1].X, two[0].Y-two[1].Y)
	if !approxEqual(gotDist, wantDist, 1e-9) {
		t.Errorf("Pack([1,2]) distance = %v; want %v", gotDist, wantDist)
	}
}

// TestPack_ReusableAcrossCalls verifies the Packer's scratch arena can be
// reused for successive, differently-sized calls (the arena-reset pattern
// the hierarchical packer depends on for sibling groups of varying width).
func TestPack_ReusableAcrossCalls(t *testing.T) {
	p := frontchain.NewPacker(2)

	first := p.Pack([]float64{1, 1})
	if len(first) != 2 {
		t.Fatalf("first Pack len = %d; want 2", len(first))
	}

	second := p.Pack([]float64{1, 1, 1, 1, 1, 1})
	if len(second) != 6 {
		t.Fatalf("second Pack len = %d; want 6", len(second))
	}
}
