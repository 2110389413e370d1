package monolith

import "github.com/katalvlaran/circlepack/tree"

// Pack remaps c's sparse hex ids to the dense [0, N) index space that
// tree.Build and diagram.PackHierarchical expect (spec.md 6): each
// original id becomes the index of its last occurrence in c.IDs (its only
// occurrence when ids are unique).
//
// The reference format marks the root clade by listing itself as its own
// parent; Build requires that clade to sit at dense index 0, so Pack
// rotates it there by swapping it with whatever landed on index 0, fixing
// up every parent reference that pointed at either swapped slot.
func Pack(c Clades) (parents []tree.NodeID, labels []string, err error) {
	n := c.Len()
	if n == 0 {
		return nil, nil, nil
	}

	mapping := make(map[int32]int32, n)
	for j, id := range c.IDs {
		mapping[id] = int32(j)
	}

	dense := make([]tree.NodeID, n)
	for j, p := range c.Parents {
		dense[j] = int(mapping[p])
	}

	root := -1
	for j, p := range dense {
		if p == j {
			root = j
			break
		}
	}
	if root < 0 {
		return nil, nil, ErrNoRoot
	}

	labels = append([]string(nil), c.Labels...)
	if root != 0 {
		rotateRootToZero(dense, labels, root)
	}

	return dense, labels, nil
}

// rotateRootToZero swaps slot root into slot 0 in place, rewriting every
// parent reference that pointed at either swapped slot so the tree shape
// is unchanged.
func rotateRootToZero(dense []tree.NodeID, labels []string, root int) {
	for j, p := range dense {
		switch p {
		case 0:
			dense[j] = root
		case root:
			dense[j] = 0
		}
	}
	dense[0], dense[root] = dense[root], dense[0]
	labels[0], labels[root] = labels[root], labels[0]
}
