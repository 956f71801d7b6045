package contour

import (
	"fmt"
	"math"
)

// Orientation describes the winding direction of a polyline.
type Orientation int

const (
	// Open is the orientation of any non-closed polyline.
	Open Orientation = iota
	// CW is a clockwise closed polyline (negative signed area).
	CW
	// CCW is an anticlockwise closed polyline (positive signed area).
	CCW
)

func (o Orientation) String() string {
	switch o {
	case Open:
		return "open"
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Length returns the total path length of the polyline, including the
// closing segment if the polyline is closed. It fails with
// [ErrDegenerateInput] below two vertices.
func (p *Polyline) Length() (float64, error) {
	if len(p.vertices) < 2 {
		return 0, fmt.Errorf("length of polyline with %d vertices: %w", len(p.vertices), ErrDegenerateInput)
	}
	var total float64
	for _, s := range p.segments() {
		total += s.length()
	}
	return total, nil
}

// Area returns the signed area enclosed by the polyline: positive for
// anticlockwise traversal, negative for clockwise. The value is computed for
// open polylines too (as if closed by a straight segment contribution of
// zero) but is only meaningful for closed ones. It fails with
// [ErrDegenerateInput] below two vertices.
func (p *Polyline) Area() (float64, error) {
	if len(p.vertices) < 2 {
		return 0, fmt.Errorf("area of polyline with %d vertices: %w", len(p.vertices), ErrDegenerateInput)
	}
	var double float64
	for _, s := range p.segments() {
		double += s.doubleArea()
	}
	return double / 2, nil
}

// Orientation classifies the polyline as [Open], [CCW] (positive area), or
// [CW]. Closed polylines of zero (or degenerate) area are CW by convention.
func (p *Polyline) Orientation() Orientation {
	if !p.closed {
		return Open
	}
	area, err := p.Area()
	if err == nil && area > 0 {
		return CCW
	}
	return CW
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// polyline, accounting for arc extents beyond the vertices. It fails with
// [ErrDegenerateInput] on an empty polyline.
func (p *Polyline) BoundingBox() (Rect, error) {
	if len(p.vertices) == 0 {
		return Rect{}, fmt.Errorf("bounding box of empty polyline: %w", ErrDegenerateInput)
	}
	if p.segCount() == 0 {
		pt := p.vertices[0].Pos()
		return NewRectFromPoints(pt, pt), nil
	}
	r := p.segAt(0).bbox()
	for i, s := range p.segments() {
		if i == 0 {
			continue
		}
		r = r.Union(s.bbox())
	}
	return r, nil
}

// WindingNumber returns the number of times the closed polyline wraps around
// the point, signed by traversal direction: 0 means outside, nonzero inside.
// The result for a point exactly on the boundary is unspecified. Open
// polylines and polylines without segments always report 0.
func (p *Polyline) WindingNumber(pt Point) int {
	if !p.closed {
		return 0
	}
	wn := 0
	for _, s := range p.segments() {
		wn += windingDelta(s, pt)
	}
	return wn
}

// windingDelta counts the signed crossings of the rightward horizontal ray
// from pt with a single segment. Crossings at segment endpoints are counted
// half-open (upward crossings own their start point, downward crossings their
// end point) so that a closed polyline counts each vertex exactly once.
func windingDelta(s seg, pt Point) int {
	if s.isLine() {
		p1, p2 := s.start(), s.end()
		if p1.Y <= pt.Y {
			if p2.Y > pt.Y && p2.Sub(p1).Cross(pt.Sub(p1)) > 0 {
				return 1
			}
		} else {
			if p2.Y <= pt.Y && p2.Sub(p1).Cross(pt.Sub(p1)) < 0 {
				return -1
			}
		}
		return 0
	}

	a := s.arc()
	dy := pt.Y - a.center.Y
	if math.Abs(dy) >= a.radius {
		// The ray misses or is tangent to the circle; a tangent touch does
		// not change the winding.
		return 0
	}
	const angEps = 1e-12
	h := math.Sqrt(a.radius*a.radius - dy*dy)
	wn := 0
	for _, x := range [...]float64{a.center.X + h, a.center.X - h} {
		if x <= pt.X {
			continue
		}
		th := math.Atan2(dy, x-a.center.X)
		if !angleWithinSweep(a.start, a.sweep, th, angEps) {
			continue
		}
		// The y direction of travel at the crossing.
		dir := math.Cos(th)
		if a.sweep < 0 {
			dir = -dir
		}
		if dir == 0 {
			continue
		}
		prog := sweepProgress(a.start, a.sweep, th)
		atStart := prog <= angEps || prog >= tau-angEps
		atEnd := math.Abs(prog-math.Abs(a.sweep)) <= angEps
		if dir > 0 {
			if atEnd {
				continue
			}
			wn++
		} else {
			if atStart {
				continue
			}
			wn--
		}
	}
	return wn
}
