// Package enclose computes the smallest enclosing disk of a set of points,
// and an approximate (but strictly sufficient) smallest enclosing disk of a
// set of disks.
//
// What:
//
//   - EnclosePoints(points): the exact smallest disk containing every
//     point, via the classic incremental move-to-front construction
//     (Welzl 1991) — here written as the equivalent explicit triple-nested
//     pass so no recursion is involved at all, which sidesteps the
//     "recursion on deep trees" concern from spec.md 9 entirely for this
//     component.
//   - EncloseDisks(disks): approximates each disk by the 8 vertices of a
//     circumscribing regular octagon (geom.CircumscribedOctagon), then
//     calls EnclosePoints on the combined point set. Because the octagon
//     strictly contains its disk, the result is always a valid upper bound
//     on the true smallest enclosing disk of the disks.
//
// Why:
//
//   - Randomized input order is deliberately not implemented: spec.md 4.2
//     notes the caller always feeds a geometrically stable sequence (child
//     positions freshly out of the front-chain packer), so the expected
//     linear behavior Welzl's algorithm normally needs randomization for is
//     not a concern here.
//
// Complexity:
//
//   - EnclosePoints: O(n) expected on the packer's stable input order,
//     O(n^3) worst case (no randomization).
//   - EncloseDisks: O(n) points fed into EnclosePoints, plus O(n) to build
//     the octagons.
package enclose
