// Package circlepack is a hierarchical circle-packing engine with
// deep-zoom navigation over very large trees.
//
// Given a rooted tree, it assigns every node a disk such that children
// are disjoint disks lying inside their parent's disk, each set of
// sibling disks is packed tightly with a front-chain algorithm, and the
// whole layout supports interactive zoom across tens of orders of
// magnitude by storing every node's disk in the local coordinate system
// of its own parent. On top of that layout it answers spatial queries
// (pick, cull, find-enclosing-ancestor) and drives a Van Wijk camera rig
// for smooth cinematic transitions between arbitrarily distant nodes.
//
// Everything is organized under one subpackage per concern:
//
//	geom/       — the Disk/AABB kernel: tangent placement, enclosure tests
//	enclose/    — Welzl's smallest enclosing disk, for points and disks
//	frontchain/ — the Wang et al. front-chain sibling packer
//	tree/       — the flat CSR tree graph: parent/children/LCA/depth
//	diagram/    — pack_flat and pack_hierarchical, and the Diagram type
//	xform/      — relative-transform composition between any two nodes
//	query/      — pick, cull, find_enclosing and their local-frame variants
//	camera/     — the Van Wijk blend and the multi-root zoom rig
//	monolith/   — the tree-of-life clade text format parser
//
// go get github.com/katalvlaran/circlepack
package circlepack
