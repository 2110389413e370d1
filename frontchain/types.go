package frontchain

// overlapSlack is the 0.999 conservative factor from spec.md 4.3: a pair of
// disks is only considered overlapping if 0.999*(ri+rj)^2 > dx^2+dy^2,
// deliberately slightly generous to absorb floating-point error.
const overlapSlack = 0.999

// Packer holds the scratch front-chain ring and position/radius buffers for
// one flat-packing call. It is a reusable arena: the hierarchical packer
// allocates one Packer sized to the tree's maxwidth and calls Pack for each
// sibling group, which overwrites the buffers in place instead of
// allocating fresh slices per node.
type Packer struct {
	prev, next []int
	xs, ys     []float64
	radii      []float64
	n          int
}

// NewPacker returns a Packer with scratch capacity for up to capacity disks.
// Capacity grows automatically (never shrinks) if Pack is later called with
// more radii than the buffers hold, mirroring the "buffers grow, never
// shrink" lifecycle rule for culled diagrams in spec.md 3.
func NewPacker(capacity int) *Packer {
	p := &Packer{}
	p.ensureCap(capacity)
	return p
}

func (p *Packer) ensureCap(n int) {
	if cap(p.prev) >= n {
		return
	}
	p.prev = make([]int, n)
	p.next = make([]int, n)
	p.xs = make([]float64, n)
	p.ys = make([]float64, n)
	p.radii = make([]float64, n)
}

func (p *Packer) overlaps(x, y, r float64, j int) bool {
	dx := x - p.xs[j]
	dy := y - p.ys[j]
	sumR := r + p.radii[j]
	return overlapSlack*sumR*sumR > dx*dx+dy*dy
}
