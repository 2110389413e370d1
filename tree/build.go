package tree

// Build derives a Graph from a flat parents array, where parents[0] must be
// 0 (the root is its own parent) and parents[i] for i>0 is the index of
// i's parent, with parents[i] < i not required by this package (callers
// that remap sparse ids, e.g. package monolith, are expected to produce a
// valid rooted-forest-as-single-tree ordering; see spec.md 6).
//
// Construction is two passes over parents:
//  1. Count children per parent into tails (used as a per-parent cursor),
//     then prefix-sum tails into heads.
//  2. Walk parents again, dropping each child into children[] at the
//     cursor position tails[parent] and advancing that cursor, so tails
//     ends up equal to heads shifted — each tails[i] becomes the
//     one-past-end index for i's children, exactly the CSR invariant.
//
// Slot 0 is special-cased: parents[0]==0 would otherwise register the root
// as its own child, so heads[0] and tails[0] are forced to 1 after the
// count pass (spec.md 3: "heads[0] = tails[0] = 1").
//
// Complexity: O(N) time and space.
func Build(parents []NodeID) (*Graph, error) {
	n := len(parents)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if parents[0] != 0 {
		return nil, ErrInvalidRoot
	}

	// Pass 1: count children per parent via a running tally in tails. The
	// root's self-edge (parents[0] == 0) is counted too, reserving slot 0.
	tails := make([]NodeID, n)
	for i := 0; i < n; i++ {
		tails[parents[i]]++
	}

	// Prefix-sum counts into heads, and start each parent's cursor in tails
	// at its head.
	heads := make([]NodeID, n)
	running := 0
	for i := 0; i < n; i++ {
		heads[i] = running
		running += tails[i]
		tails[i] = heads[i]
	}

	// Exclude the root's self-edge: it occupies slot 0 but the root is
	// never listed as its own child.
	heads[0] = 1
	tails[0] = 1

	// Pass 2: assign children[] using tails as the per-parent write cursor;
	// once every child is placed, tails[i] is i's one-past-end index.
	children := make([]NodeID, running)
	maxDepthCheck := 0
	for i := 1; i < n; i++ {
		p := parents[i]
		children[tails[p]] = i
		tails[p]++
		if i > maxDepthCheck {
			maxDepthCheck = i
		}
	}

	maxwidth := 0
	for i := 0; i < n; i++ {
		if w := tails[i] - heads[i]; w > maxwidth {
			maxwidth = w
		}
	}

	g := &Graph{
		parents:  append([]NodeID(nil), parents...),
		heads:    heads,
		tails:    tails,
		children: children,
		maxwidth: maxwidth,
	}

	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}

	return g, nil
}

// checkAcyclic walks every node to the root and fails if any walk exceeds
// the tree's own size, which can only happen on a cyclic parents array
// (spec.md 7's ErrCycle).
func (g *Graph) checkAcyclic() error {
	n := len(g.parents)
	for i := 0; i < n; i++ {
		cur := i
		for steps := 0; cur != 0; steps++ {
			if steps > n {
				return ErrCycle
			}
			cur = g.parents[cur]
		}
	}
	return nil
}
