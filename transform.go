package contour

import (
	"fmt"
	"math"
	"slices"
)

// Reverse reverses the traversal direction in place. Vertex order flips and
// each bulge is negated and re-homed to the vertex that now precedes its
// segment, so the traced curve is geometrically identical. The signed area of
// a closed polyline flips sign. An open polyline's terminal bulge, stored but
// not traced, moves to the new terminal vertex negated.
func (p *Polyline) Reverse() {
	n := len(p.vertices)
	if n < 2 {
		return
	}
	out := make([]Vertex, n)
	for i := range n {
		old := p.vertices[n-1-i]
		out[i] = V(old.X, old.Y, 0)
		if j := n - 2 - i; j >= 0 {
			out[i].Bulge = -p.vertices[j].Bulge
		} else {
			// On a closed polyline this is the closing segment's bulge; on
			// an open one it is the stored, unused terminal bulge, carried
			// so reversing twice restores the vertices exactly.
			out[i].Bulge = -p.vertices[n-1].Bulge
		}
	}
	p.vertices = out
}

// Scale scales all vertex positions by k around the origin. Bulge is
// invariant under uniform scaling. k must be positive for the traced shape to
// remain similar; a negative k mirrors, which bulges do not follow.
func (p *Polyline) Scale(k float64) {
	for i := range p.vertices {
		p.vertices[i].X *= k
		p.vertices[i].Y *= k
	}
}

// Translate moves all vertex positions by (dx, dy). Bulge is invariant under
// translation.
func (p *Polyline) Translate(dx, dy float64) {
	for i := range p.vertices {
		p.vertices[i].X += dx
		p.vertices[i].Y += dy
	}
}

// RemoveRepeated drops consecutive vertices whose positions coincide within
// eps, keeping the later vertex's bulge (the one that describes the next real
// segment). For a closed polyline the last/first pair is deduplicated too.
// Applying it twice is the same as applying it once.
func (p *Polyline) RemoveRepeated(eps float64) {
	if len(p.vertices) < 2 {
		return
	}
	out := p.vertices[:1]
	for _, v := range p.vertices[1:] {
		if last := &out[len(out)-1]; v.Pos().Coincident(last.Pos(), eps) {
			last.Bulge = v.Bulge
		} else {
			out = append(out, v)
		}
	}
	if p.closed && len(out) > 1 && out[len(out)-1].Pos().Coincident(out[0].Pos(), eps) {
		out = out[:len(out)-1]
	}
	p.vertices = out
}

// mergedBulge reports whether the vertex b between a and c is geometrically
// unnecessary: collinear and forward on a straight run, or splitting a single
// concentric arc of total sweep at most a half turn. On success it returns
// the bulge that traces a→c directly.
func mergedBulge(a, b, c Vertex, eps float64) (float64, bool) {
	s1 := seg{a, b}
	s2 := seg{b, c}
	if s1.length() <= eps {
		return b.Bulge, true
	}
	if s2.length() <= eps {
		return a.Bulge, true
	}
	if s1.isLine() != s2.isLine() {
		return 0, false
	}
	if s1.isLine() {
		ac := c.Pos().Sub(a.Pos())
		d := ac.Hypot()
		if d == 0 {
			return 0, false
		}
		ab := b.Pos().Sub(a.Pos())
		// b must sit on the line through a and c, between them.
		if math.Abs(ac.Cross(ab))/d > eps {
			return 0, false
		}
		if ab.Dot(ac) < 0 || ab.Hypot2() > ac.Hypot2() {
			return 0, false
		}
		return 0, true
	}
	a1 := s1.arc()
	a2 := s2.arc()
	if !a1.center.Coincident(a2.center, eps) || math.Abs(a1.radius-a2.radius) > eps {
		return 0, false
	}
	if math.Signbit(a1.sweep) != math.Signbit(a2.sweep) {
		return 0, false
	}
	merged := a1.sweep + a2.sweep
	if math.Abs(merged) > math.Pi {
		return 0, false
	}
	return bulgeFromSweep(merged), true
}

// RemoveRedundant drops vertices that add nothing to the traced curve:
// collinear points on a straight run and vertices splitting one concentric
// arc of total sweep ≤ π. Applying it twice is the same as applying it once.
func (p *Polyline) RemoveRedundant(eps float64) {
	if len(p.vertices) < 3 {
		return
	}
	out := p.vertices[:2:2]
	for _, c := range p.vertices[2:] {
		a, b := out[len(out)-2], out[len(out)-1]
		if bulge, ok := mergedBulge(a, b, c, eps); ok {
			out[len(out)-2].Bulge = bulge
			out[len(out)-1] = c
		} else {
			out = append(out, c)
		}
	}
	if p.closed {
		// The wrap can make the current first and last vertices redundant as
		// well.
		for len(out) > 2 {
			if bulge, ok := mergedBulge(out[len(out)-2], out[len(out)-1], out[0], eps); ok {
				out[len(out)-2].Bulge = bulge
				out = out[:len(out)-1]
				continue
			}
			if bulge, ok := mergedBulge(out[len(out)-1], out[0], out[1], eps); ok {
				out[len(out)-1].Bulge = bulge
				out = out[1:]
				continue
			}
			break
		}
	}
	p.vertices = out
}

// ToLines returns a new polyline in which every arc segment is replaced by a
// chord approximation whose maximum perpendicular deviation from the true arc
// is at most errorDistance. All bulges in the result are zero and the closed
// flag is preserved. errorDistance must be positive.
func (p *Polyline) ToLines(errorDistance float64) (*Polyline, error) {
	if !(errorDistance > 0) {
		return nil, fmt.Errorf("error distance %g: %w", errorDistance, ErrInvalidParameter)
	}
	out := &Polyline{closed: p.closed}
	for _, s := range p.segments() {
		out.Append(V(s.v1.X, s.v1.Y, 0))
		if s.isLine() {
			continue
		}
		a := s.arc()
		if errorDistance >= a.radius {
			continue
		}
		// The sagitta of a chord subtending angle φ is r(1−cos(φ/2));
		// solving for the largest admissible φ gives the subdivision count.
		maxStep := 2 * math.Acos(1-errorDistance/a.radius)
		n := int(math.Ceil(math.Abs(a.sweep) / maxStep))
		for k := 1; k < n; k++ {
			pt := a.pointAtAngle(a.start + a.sweep*float64(k)/float64(n))
			out.Append(V(pt.X, pt.Y, 0))
		}
	}
	if !p.closed && len(p.vertices) > 0 {
		last := p.vertices[len(p.vertices)-1]
		out.Append(V(last.X, last.Y, 0))
	}
	if p.closed && len(p.vertices) < 2 {
		out.vertices = slices.Clone(p.vertices)
		for i := range out.vertices {
			out.vertices[i].Bulge = 0
		}
	}
	return out, nil
}

// RotateStart re-roots a closed polyline so that vertex 0 becomes the point
// pt, which must lie on the segment at the given index (within eps). The
// segment is split at pt and the vertex array rotated so traversal order is
// preserved. It fails with [ErrDegenerateInput] on an open polyline,
// [ErrOutOfRange] for a bad index, and [ErrInvalidParameter] if pt is not on
// the segment.
func (p *Polyline) RotateStart(index int, pt Point, eps float64) error {
	if !p.closed {
		return fmt.Errorf("rotate start of open polyline: %w", ErrDegenerateInput)
	}
	if index < 0 || index >= p.segCount() {
		return fmt.Errorf("segment index %d with %d segments: %w", index, p.segCount(), ErrOutOfRange)
	}
	s := p.segAt(index)
	if s.closestPoint(pt).Distance(pt) > eps {
		return fmt.Errorf("point %v not on segment %d: %w", pt, index, ErrInvalidParameter)
	}
	n := len(p.vertices)
	next := (index + 1) % n
	var out []Vertex
	switch {
	case pt.Coincident(s.start(), eps):
		out = append(out, p.vertices[index:]...)
		out = append(out, p.vertices[:index]...)
	case pt.Coincident(s.end(), eps):
		out = append(out, p.vertices[next:]...)
		out = append(out, p.vertices[:next]...)
	default:
		first, second := s.split(pt)
		out = append(out, second.v1)
		for k := range n - 1 {
			out = append(out, p.vertices[(next+k)%n])
		}
		out = append(out, first.v1)
	}
	p.vertices = out
	return nil
}
