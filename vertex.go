package contour

import (
	"fmt"
	"math"
)

// Vertex is a polyline vertex: a position plus the bulge of the segment from
// this vertex to the next one. A bulge of zero means a straight segment;
// otherwise the bulge is tan(Δ/4) of the arc's signed included angle Δ,
// positive for anticlockwise sweep. The bulge of the terminal vertex of an
// open polyline is stored but has no segment to describe.
type Vertex struct {
	X     float64
	Y     float64
	Bulge float64
}

// V returns the vertex at (x, y) with the given bulge.
func V(x, y, bulge float64) Vertex {
	return Vertex{X: x, Y: y, Bulge: bulge}
}

// Pos returns the vertex position.
func (v Vertex) Pos() Point {
	return Point{X: v.X, Y: v.Y}
}

func (v Vertex) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v.X, v.Y, v.Bulge)
}

// Validate checks the vertex against the strict single-arc representation:
// all values finite and |bulge| ≤ 1, i.e. a sweep of at most a half turn per
// segment. The [Polyline] container itself accepts any finite bulge — the
// segment formulas remain exact past a half turn — so strictness is the
// caller's choice.
func (v Vertex) Validate() error {
	for _, f := range [...]float64{v.X, v.Y, v.Bulge} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("vertex %v: non-finite value: %w", v, ErrInvalidParameter)
		}
	}
	if math.Abs(v.Bulge) > 1 {
		return fmt.Errorf("vertex %v: bulge beyond a half turn: %w", v, ErrInvalidParameter)
	}
	return nil
}

const tau = 2 * math.Pi

// sweepFromBulge returns the signed included angle of an arc with the given
// bulge.
func sweepFromBulge(bulge float64) float64 {
	return 4 * math.Atan(bulge)
}

// bulgeFromSweep returns the bulge of an arc with the given signed included
// angle.
func bulgeFromSweep(sweep float64) float64 {
	return math.Tan(sweep / 4)
}

// normalizeAngle maps an angle to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	return a
}

// sweepProgress returns how far along the sweep direction, starting at the
// start angle, the given angle lies. The result is in [0, 2π) regardless of
// the sweep's sign.
func sweepProgress(start, sweep, angle float64) float64 {
	if sweep < 0 {
		return normalizeAngle(start - angle)
	}
	return normalizeAngle(angle - start)
}

// angleWithinSweep reports whether traversing from the start angle by sweep
// passes through the given angle, within an angular tolerance.
func angleWithinSweep(start, sweep, angle, eps float64) bool {
	d := sweepProgress(start, sweep, angle)
	if d <= math.Abs(sweep)+eps {
		return true
	}
	// Progress just short of 2π means the angle sits within eps before the
	// start.
	return d >= tau-eps
}
