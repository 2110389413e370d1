package diagram

// CoordSystem selects the frame PackHierarchical writes disks in.
type CoordSystem int

const (
	// Global writes every disk in world coordinates.
	Global CoordSystem = iota
	// Local writes every disk in its parent's local unit frame: the root
	// is (0,0,1), and every other node satisfies x^2+y^2+r <= 1.
	Local
)

// Orientation selects which axis the front-chain's initial pair of disks
// is seeded along; a cosmetic layout knob consumed by the renderer (out of
// scope here) to prefer wide or tall clusters.
type Orientation int

const (
	// Horizontal seeds the initial two disks along the x axis (the default
	// front-chain initialization in spec.md 4.3).
	Horizontal Orientation = iota
	// Vertical swaps x and y in the final packed output, seeding the
	// initial pair along the y axis instead.
	Vertical
)

// Default padding constants for the two-pass pad-solve loop (spec.md 4.5).
// A second reference implementation uses 0.1/0.05; spec.md 9 notes either
// is acceptable and that the constants should be exposed as an option,
// which PackOptions.Pad1/Pad2 do.
const (
	DefaultPad1       = 0.15
	DefaultPad2       = 0.025
	DefaultRootRadius = 1.0
)

// PackOptions configures PackHierarchical. Use NewPackOptions with
// functional Option values to build one; the zero value is not valid
// (use NewPackOptions() for defaults).
type PackOptions struct {
	Coords      CoordSystem
	Orientation Orientation
	Pad1        float64
	Pad2        float64
	RootRadius  float64 // only meaningful when Coords == Global
}

// Option configures a PackOptions.
type Option func(*PackOptions)

// NewPackOptions resolves a PackOptions from defaults plus the given
// options, in the teacher's functional-options style.
func NewPackOptions(opts ...Option) PackOptions {
	o := PackOptions{
		Coords:      Global,
		Orientation: Horizontal,
		Pad1:        DefaultPad1,
		Pad2:        DefaultPad2,
		RootRadius:  DefaultRootRadius,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithCoords selects the output coordinate system.
func WithCoords(c CoordSystem) Option {
	return func(o *PackOptions) { o.Coords = c }
}

// WithOrientation selects the front-chain seeding axis.
func WithOrientation(or Orientation) Option {
	return func(o *PackOptions) { o.Orientation = or }
}

// WithPadding overrides the two pad-solve constants.
func WithPadding(pad1, pad2 float64) Option {
	return func(o *PackOptions) { o.Pad1, o.Pad2 = pad1, pad2 }
}

// WithRootRadius overrides the root's world radius in Global mode.
func WithRootRadius(r float64) Option {
	return func(o *PackOptions) { o.RootRadius = r }
}
