// Package diagram assigns every node of a tree.Graph a disk, producing a
// Diagram: the packing result that every other circlepack package (query,
// xform, camera) consumes.
//
// What:
//
//   - PackFlat(radii) packs a flat sequence of radii with no hierarchy —
//     used directly by tests pinning the front-chain algorithm's output,
//     and exposed on the Diagram API surface as pack_flat.
//   - PackHierarchical(parents, opts...) recursively assigns each parent a
//     nominal radius from its subtree's shape, packs its children with a
//     reused frontchain.Packer scratch arena, then rescales and translates
//     the packed cluster into the parent's own frame (global world
//     coordinates, or a node-local unit frame where every parent maps to
//     (0,0,1); see package xform for how local disks compose back up).
//
// Why:
//
//   - Packing once, top-down, with disks written into a single flat array
//     indexed by node ID is what lets the rest of the engine treat a
//     Diagram as an immutable, concurrently-readable value (spec.md 5) —
//     no tree walking is needed again until a query or transform asks for
//     it.
//
// Complexity:
//
//   - Nominal-radius pass: O(N).
//   - Layout pass: O(N) amortized total, since each parent's flat packing
//     of k children is itself O(k) amortized and sum(k) == N-1.
//
// Options:
//
//   - WithCoords(Global | Local) selects whether disks are written in
//     world coordinates or in each node's parent-local unit frame;
//     WithRootRadius(r) sets the root's world radius in Global mode.
//   - WithOrientation(Horizontal | Vertical) picks which axis the initial
//     front-chain triangle is seeded along.
//   - WithPadding(pad1, pad2) overrides the two padding constants from the
//     two-pass pad-solve loop (spec.md 9's open question: the reference
//     sources disagree between 0.15/0.025 and 0.1/0.05; both are valid, so
//     this is exposed rather than hard-coded).
//
// Errors:
//
//   - PackHierarchical returns tree.ErrInvalidRoot / tree.ErrCycle from
//     the underlying tree.Build call unwrapped. An empty parents array is
//     not an error: it yields an empty Diagram.
package diagram
