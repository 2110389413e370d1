package camera

import "math"

// rho is the Van Wijk & Nuij 2003 zoom-rate constant; sqrt(2) is the value
// the closed form is derived for and the one the reference implementation
// uses (spec.md 4.8).
const rho = math.Sqrt2

// durationScale turns the dimensionless path length S into a duration on a
// scale useful to an animation host (spec.md 4.8: "Passing t = -1 returns a
// recommended duration proportional to the path length").
const durationScale = 1000.0

// blendPath holds the quantities Blend and Duration share: both need the
// same path-length integral, so this factors it out of the per-t formula.
type blendPath struct {
	dx, dy, d1, w0 float64
	r0             float64
	s              float64 // path length S
	valid          bool    // false when the closed form degenerates (zero lateral distance)
}

func computeBlendPath(u0, u1 Viewport) blendPath {
	dx, dy := u1.X-u0.X, u1.Y-u0.Y
	d2 := dx*dx + dy*dy
	d1 := math.Sqrt(d2)
	w0, w1 := u0.W, u1.W

	b0 := (w1*w1 - w0*w0 + 4*d2) / (2 * w0 * rho * rho * d1)
	b1 := (w1*w1 - w0*w0 - 4*d2) / (2 * w1 * rho * rho * d1)
	r0 := math.Log(math.Sqrt(b0*b0+1) - b0)
	r1 := math.Log(math.Sqrt(b1*b1+1) - b1)
	dr := r1 - r0

	valid := dr == dr && dr != 0 // dr == dr excludes NaN (d1 == 0 drives b0/b1 to +-Inf)
	var s float64
	if valid {
		s = dr / rho
	} else {
		s = math.Log(w1/w0) / rho
	}
	return blendPath{dx: dx, dy: dy, d1: d1, w0: w0, r0: r0, s: s, valid: valid}
}

// Blend interpolates between u0 and u1 at normalized time t in [0, 1]
// along the Van Wijk & Nuij minimum-perceived-motion path. When the two
// viewports share a center (zero lateral distance), the closed form
// degenerates and Blend falls back to a plain exponential zoom
// w0*(w1/w0)^t (spec.md 4.8).
func Blend(u0, u1 Viewport, t float64) Viewport {
	p := computeBlendPath(u0, u1)
	s := t * p.s

	if !p.valid {
		return Viewport{X: u0.X + t*p.dx, Y: u0.Y + t*p.dy, W: p.w0 * math.Exp(rho*s)}
	}

	coshR0 := math.Cosh(p.r0)
	u := p.w0 / (rho * rho * p.d1) * (coshR0*math.Tanh(rho*s+p.r0) - math.Sinh(p.r0))
	return Viewport{
		X: u0.X + u*p.dx,
		Y: u0.Y + u*p.dy,
		W: p.w0 * coshR0 / math.Cosh(rho*s+p.r0),
	}
}

// Duration returns a recommended animation duration for blending from u0
// to u1, proportional to the Van Wijk path's length.
func Duration(u0, u1 Viewport) float64 {
	p := computeBlendPath(u0, u1)
	return math.Abs(p.s * durationScale)
}
