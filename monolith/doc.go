// Package monolith parses the tree-of-life "clade" text format used to
// seed a hierarchical packing: one clade per line, a hex node id, a hex
// parent id, and a free-form label (spec.md 6).
//
// What:
//
//   - Parse reads the raw file into parallel (ids, parents, labels)
//     slices, preserving the sparse hex ids from the file.
//   - Pack remaps those sparse ids to the dense [0, N) index space
//     diagram.PackHierarchical expects, rotating the self-parented root
//     clade into index 0 along the way.
//
// Why (supplemented beyond the distilled spec, grounded directly on
// original_source/monolith.c and src/monolith.c): those two reference
// implementations show a parse pass over a flat byte buffer followed by a
// separate "pack" pass that only remaps ids — this package keeps that
// two-stage shape, since a caller may want the raw sparse ids (to display
// or to merge multiple files) independently of ever packing them.
//
// Complexity:
//
//   - Parse: O(len(data)).
//   - Pack: O(N).
package monolith
