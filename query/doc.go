// Package query answers the spatial questions a renderer or a hit-test
// asks of a packed Diagram: which disk is under the pointer, which disks
// are visible in a viewport, which ancestor fully contains a region
// (spec.md 4.7).
//
// What:
//
//   - Pick walks a Global-coordinate Diagram from the root, descending
//     into whichever child's disk contains the probe point, and returns
//     the deepest match.
//   - FindEnclosing and PickLocal work against a Local-coordinate Diagram:
//     they never materialize a node's world coordinates, instead
//     transforming the query AABB on the fly between parent and child
//     frames via package xform, which is what lets them stay correct
//     arbitrarily deep into a zoomed tree.
//   - Cull and CullLocal collect every disk intersecting a viewport AABB
//     down to a minimum visible radius, pruning subtrees once a node
//     itself fails the test.
//
// Why:
//
//   - Splitting each query into a Global and a Local variant mirrors the
//     Diagram's own two coordinate systems (spec.md 3): Global queries are
//     simple nearest-available math; Local queries are the ones a deep-
//     zoom renderer actually calls every frame, since only the Local
//     Diagram avoids double-precision loss far from the origin.
//
// Complexity:
//
//   - Pick, FindEnclosing, PickLocal: O(depth) in the typical case (each
//     level prunes to at most one child), O(N) worst case on a
//     pathologically shaped tree.
//   - Cull, CullLocal: O(visited subtree size).
package query
