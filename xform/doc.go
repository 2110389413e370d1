// Package xform composes the per-node local-to-parent affine transforms
// that a Local-coordinate Diagram encodes, so that any node's disk can be
// expressed in any other node's frame without re-running the packer.
//
// What:
//
//   - Transform is a (tx, ty, s) triple meaning "scale by s, then translate
//     by (tx, ty)". Every non-root node's own local disk, read directly out
//     of a Local diagram.Diagram, already IS the transform that maps a
//     point in that node's own frame into its parent's frame.
//   - Compose chains two transforms; Invert reverses one.
//   - TransformLocal(g, localDisk, a, b), and TransformLocalDiagram(d, a, b)
//     for a Local diagram, find the transform mapping a's local frame into
//     b's local frame, routing through their LCA.
//
// Why:
//
//   - Local coordinates exist specifically so the engine can zoom across
//     tens of orders of magnitude without double-precision underflow
//     (spec.md 1); this package is what turns those per-node relative
//     disks back into a usable absolute transform on demand, without ever
//     materializing a full double-precision world coordinate for nodes far
//     from the current viewport.
//
// Complexity:
//
//   - Compose, Invert, Apply: O(1).
//   - TransformLocal(a, b): O(depth(a) + depth(b)) to find the LCA and
//     walk both paths.
package xform
