// Package frontchain implements the front-chain "flat" packing algorithm
// (Wang et al. 2006): given an ordered sequence of radii, it produces
// pairwise non-overlapping, tightly-packed center positions with no
// enclosing constraint.
//
// What:
//
//   - Packer holds the scratch ring (a doubly-linked chain of currently
//     "front" disks, stored as prev/next arrays indexed by position in the
//     input) and is reused across sibling groups to avoid per-call
//     allocation — the arena pattern the hierarchical packer relies on.
//   - Pack(radii) places disk i tangent to two existing front-chain members
//     and walks the chain outward from both sides to detect the first
//     collision, splicing or shrinking the chain accordingly.
//
// Why:
//
//   - This is the geometric core of circle packing: each new disk must be
//     placed as close to the existing cluster as possible while remaining
//     disjoint from everything already placed. The front chain tracks only
//     the disks currently on the packing's outer envelope, giving O(n)
//     amortized behavior instead of the O(n^2) of checking every pair.
//
// Complexity:
//
//   - Time: O(n) amortized (each chain member is visited a bounded number
//     of times across the whole packing; see spec.md 4.3).
//   - Memory: O(n) for the prev/next scratch arrays, reused across Pack
//     calls.
//
// Numerical tolerance:
//
//   - The overlap test used during the collision search is conservative:
//     0.999*(ri+rj)^2 > dx^2+dy^2. The 0.999 factor is deliberate slack for
//     floating-point robustness, not a modeling choice; see property 1 in
//     spec.md 8.
package frontchain
