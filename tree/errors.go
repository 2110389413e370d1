package tree

import "errors"

// Sentinel errors for tree construction and traversal. Callers branch on
// these with errors.Is, never on the formatted string.
var (
	// ErrEmptyInput indicates Build was called with a zero-length parents
	// array; the caller should treat this as an empty tree, not panic.
	ErrEmptyInput = errors.New("tree: parents array is empty")

	// ErrInvalidRoot indicates parents[0] != 0: index 0 must be its own
	// parent (spec.md 3's tree graph invariant).
	ErrInvalidRoot = errors.New("tree: root (index 0) must be its own parent")

	// ErrCycle indicates a depth walk did not reach the root within
	// len(parents) steps, so the input is not a valid rooted tree.
	ErrCycle = errors.New("tree: parents array contains a cycle")
)
