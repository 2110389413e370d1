package diagram

import (
	"github.com/katalvlaran/circlepack/geom"
	"github.com/katalvlaran/circlepack/tree"
)

// Diagram is a packing result: the tree graph plus a disk per node, in the
// order the graph's node IDs name them. IDs is only populated on secondary
// diagrams built by query.Cull / query.CullLocal, mapping a culled disk
// back to its index in the source Diagram (spec.md 3).
type Diagram struct {
	Tree  *tree.Graph
	Disks []geom.Disk
	IDs   []int
}

// Disk returns node i's disk. Out-of-range i is undefined, per spec.md 4.9.
func (d *Diagram) Disk(i tree.NodeID) geom.Disk {
	return d.Disks[i]
}

// Len returns the number of nodes (and disks) in the diagram.
func (d *Diagram) Len() int {
	return len(d.Disks)
}

// empty returns a zero-node Diagram, the documented return value for
// packing an empty tree or an empty radii list (spec.md 7's EmptyInput
// policy: "returned as an empty Diagram rather than an error where
// semantically defensible").
func empty() *Diagram {
	return &Diagram{}
}
