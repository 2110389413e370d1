package monolith

import "errors"

// Sentinel errors for monolith parsing and packing. Callers branch on
// these with errors.Is, never on the formatted string.
var (
	// ErrMalformedLine indicates a line did not match
	// "<6 hex><space><6 hex><space><label>".
	ErrMalformedLine = errors.New("monolith: malformed clade line")

	// ErrNoRoot indicates no clade lists itself as its own parent, so
	// Pack has no candidate to rotate into index 0.
	ErrNoRoot = errors.New("monolith: no self-parented root clade found")
)
