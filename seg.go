package contour

import (
	"math"
)

// seg is the derived curve between a vertex and its successor. It is never
// stored; segments are materialized from consecutive vertex pairs on
// iteration. The bulge of v1 describes the curve; the bulge carried by v2 belongs
// to the following segment.
type seg struct {
	v1 Vertex
	v2 Vertex
}

func (s seg) isLine() bool { return s.v1.Bulge == 0 }
func (s seg) start() Point { return s.v1.Pos() }
func (s seg) end() Point   { return s.v2.Pos() }

// arcSeg is the circle-space form of an arc segment: center, radius and the
// angular range swept from the start point to the end point.
type arcSeg struct {
	center Point
	radius float64
	start  float64
	sweep  float64
}

// endAngle returns the angle of the arc's end point.
func (a arcSeg) endAngle() float64 {
	return a.start + a.sweep
}

// pointAtAngle returns the point on the arc's circle at the given angle.
func (a arcSeg) pointAtAngle(th float64) Point {
	return a.center.Translate(VecFromAngle(th).Mul(a.radius))
}

// arc derives the arc's radius, center and angular range from the segment
// endpoints and bulge. Only valid for arc segments.
//
// The radius follows from the chord length d and the absolute bulge b as
// d(b²+1)/(4b), and the center sits radius−sagitta away from the chord
// midpoint along the chord normal, on the side determined by the bulge sign.
func (s seg) arc() arcSeg {
	b := math.Abs(s.v1.Bulge)
	chord := s.end().Sub(s.start())
	d := chord.Hypot()
	radius := d * (b*b + 1) / (4 * b)
	m := radius - b*d/2
	offs := chord.Perp().Mul(m / d)
	if s.v1.Bulge < 0 {
		offs = offs.Negate()
	}
	center := s.start().Midpoint(s.end()).Translate(offs)
	start := s.start().Sub(center).Angle()
	return arcSeg{
		center: center,
		radius: radius,
		start:  start,
		sweep:  sweepFromBulge(s.v1.Bulge),
	}
}

// length returns the arc length of the segment.
func (s seg) length() float64 {
	if s.isLine() {
		return s.start().Distance(s.end())
	}
	a := s.arc()
	return a.radius * math.Abs(a.sweep)
}

// doubleArea returns twice the segment's contribution to the signed area of a
// closed polyline: the shoelace cross term, plus for arcs the circular
// segment between chord and arc (sector minus triangle), signed by sweep
// direction.
func (s seg) doubleArea() float64 {
	result := s.v1.X*s.v2.Y - s.v2.X*s.v1.Y
	if s.isLine() {
		return result
	}
	b := math.Abs(s.v1.Bulge)
	d := s.start().Distance(s.end())
	radius := d * (b*b + 1) / (4 * b)
	sagitta := b * d / 2
	doubleSector := math.Abs(sweepFromBulge(s.v1.Bulge)) * radius * radius
	doubleTriangle := d * (radius - sagitta)
	arcSegArea := doubleSector - doubleTriangle
	if s.v1.Bulge < 0 {
		arcSegArea = -arcSegArea
	}
	return result + arcSegArea
}

// bbox returns the smallest axis-aligned rectangle enclosing the segment. For
// arcs this accounts for the axis-extrema angles that fall within the swept
// range, not just the endpoints.
func (s seg) bbox() Rect {
	r := NewRectFromPoints(s.start(), s.end())
	if s.isLine() {
		return r
	}
	a := s.arc()
	for _, th := range [...]float64{0, 0.5 * math.Pi, math.Pi, 1.5 * math.Pi} {
		if angleWithinSweep(a.start, a.sweep, th, 0) {
			r = r.UnionPoint(a.pointAtAngle(th))
		}
	}
	return r
}

// pointAt evaluates the segment at t ∈ [0, 1]. Both lines and arcs are
// uniform in arc length, so t is also the length fraction.
func (s seg) pointAt(t float64) Point {
	if s.isLine() {
		return s.start().Lerp(s.end(), t)
	}
	a := s.arc()
	return a.pointAtAngle(a.start + t*a.sweep)
}

// midpoint returns the point halfway along the segment.
func (s seg) midpoint() Point {
	return s.pointAt(0.5)
}

// closestPoint returns the point on the segment nearest to pt.
//
// For a line this is the perpendicular projection clamped to the segment; for
// an arc it is the angular projection of pt onto the circle if that falls
// within the swept range, else the nearer endpoint.
func (s seg) closestPoint(pt Point) Point {
	if s.isLine() {
		d := s.end().Sub(s.start())
		dotp := d.Dot(pt.Sub(s.start()))
		dSquared := d.Hypot2()
		if dotp <= 0 || dSquared == 0 {
			return s.start()
		} else if dotp >= dSquared {
			return s.end()
		}
		return s.start().Lerp(s.end(), dotp/dSquared)
	}
	a := s.arc()
	radial := pt.Sub(a.center)
	if radial.Hypot2() == 0 {
		// The query point is the arc center; every point on the arc is
		// equally near.
		return s.start()
	}
	if angleWithinSweep(a.start, a.sweep, radial.Angle(), 0) {
		return a.center.Translate(radial.Normalize().Mul(a.radius))
	}
	if pt.DistanceSquared(s.start()) <= pt.DistanceSquared(s.end()) {
		return s.start()
	}
	return s.end()
}

// paramOf returns the parameter t ∈ [0, 1] of a point known to lie on the
// segment. Used to order split points along a segment.
func (s seg) paramOf(pt Point) float64 {
	if s.isLine() {
		d := s.end().Sub(s.start())
		dSquared := d.Hypot2()
		if dSquared == 0 {
			return 0
		}
		return min(max(d.Dot(pt.Sub(s.start()))/dSquared, 0), 1)
	}
	a := s.arc()
	if math.Abs(a.sweep) == 0 {
		return 0
	}
	prog := sweepProgress(a.start, a.sweep, pt.Sub(a.center).Angle())
	// A point numerically just behind the start angle wraps to a progress
	// near 2π; treat it as the start rather than clamping to the end.
	const angEps = 1e-12
	if prog >= tau-angEps {
		return 0
	}
	return min(prog/math.Abs(a.sweep), 1)
}

// split cuts the segment at a point lying on it, returning the two halves
// with their bulges recomputed so the traced geometry is unchanged.
func (s seg) split(pt Point) (first, second seg) {
	if s.isLine() {
		mid := V(pt.X, pt.Y, 0)
		return seg{s.v1, mid}, seg{mid, s.v2}
	}
	a := s.arc()
	prog := sweepProgress(a.start, a.sweep, pt.Sub(a.center).Angle())
	sweep1 := math.Copysign(prog, a.sweep)
	sweep2 := a.sweep - sweep1
	v1 := V(s.v1.X, s.v1.Y, bulgeFromSweep(sweep1))
	mid := V(pt.X, pt.Y, bulgeFromSweep(sweep2))
	return seg{v1, mid}, seg{mid, s.v2}
}

// tangentAt returns an (unnormalized) tangent direction of the segment at a
// point on it, pointing along the direction of travel.
func (s seg) tangentAt(pt Point) Vec2 {
	if s.isLine() {
		return s.end().Sub(s.start())
	}
	a := s.arc()
	t := pt.Sub(a.center).Perp()
	if a.sweep < 0 {
		t = t.Negate()
	}
	return t
}
