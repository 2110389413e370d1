// Package geom provides the geometric kernel shared by every other package
// in circlepack: disks, axis-aligned boxes, and the handful of closed-form
// constructions (tangent placement, three-point circumscription, box
// intersection) that the packer and the spatial queries build on.
//
// What:
//
//   - Disk: a circle (X, Y, R) in whatever coordinate frame the caller uses
//     (global world space or a node-local unit frame; see package xform).
//   - AABB: an axis-aligned bounding box, half-open-free ([X0,Y0]-[X1,Y1]).
//   - PlaceTangent: places a disk of a given radius tangent to two fixed
//     disks, on the counter-clockwise side of the oriented line between them.
//   - CircleThrough: the circle through three non-collinear points.
//   - DiskIntersectsAABB / DiskEnclosesAABB: the two box predicates the
//     query package drives its traversal with.
//
// Why:
//
//   - Every geometric op here is total: no panics, no errors. Degenerate
//     inputs (coincident centers, collinear points, zero radii) fall
//     through to a documented fallback rather than surfacing as failures,
//     per the no-exceptions policy for the geometry kernel.
//
// Complexity:
//
//   - All functions in this package are O(1).
package geom
