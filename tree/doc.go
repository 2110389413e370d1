// Package tree builds and queries the CSR-style children index that every
// other circlepack package walks: a Graph derived once from a flat parents
// array and treated as read-only for the rest of its lifetime.
//
// What:
//
//   - Build(parents) two-pass construction: count children per
//     parent, prefix-sum into heads, then assign children into a single
//     children[] slice using a per-parent cursor that doubles as tails[].
//   - Children, Parent, Depth, LCA, MaxDepthLeaf, SubtreeSizes queries.
//
// Why:
//
//   - A single flat []NodeID of children plus two []NodeID offset arrays
//     (heads/tails) let hierarchical packing, culling and picking walk
//     millions of nodes without per-node pointer chasing or allocation.
//
// Complexity:
//
//   - Build: O(N) time and space.
//   - Children(i): O(1) to obtain the half-open range, O(k) to iterate it.
//   - Parent(i): O(1).
//   - Depth(i), LCA(a,b): O(depth) — bounded by the tree's height.
//   - MaxDepthLeaf: O(N) (single DFS over the whole tree).
//
// Errors:
//
//   - ErrEmptyInput: parents has length 0.
//   - ErrInvalidRoot: parents[0] is not 0 (the root must be its own parent
//     at index 0, per spec.md 3).
//   - ErrCycle: a depth walk exceeded len(parents) steps, which can only
//     happen if the input parents array is not actually a tree.
package tree
