package contour

import (
	"fmt"
)

// Shape is a region bounded by closed polylines: counterclockwise loops
// enclose area and clockwise loops cut holes out of it.
type Shape struct {
	// CCW holds the counterclockwise outer loops.
	CCW []*Polyline
	// CW holds the clockwise hole loops.
	CW []*Polyline
}

// NewShape builds a shape from closed polylines, grouping them by
// orientation. The polylines are deep copied. An open member makes it fail
// with [ErrDegenerateInput].
func NewShape(loops []*Polyline) (*Shape, error) {
	s := &Shape{}
	for i, p := range loops {
		if !p.Closed() {
			return nil, fmt.Errorf("shape loop %d is open: %w", i, ErrDegenerateInput)
		}
		c := p.Clone()
		if c.Orientation() == CW {
			s.CW = append(s.CW, c)
		} else {
			s.CCW = append(s.CCW, c)
		}
	}
	return s, nil
}

// Offset offsets every loop of the shape by the signed distance d and
// regroups the results by their resulting orientation. Positive d shrinks
// the region: offsetting follows the left-hand normal for every loop, so
// outer loops move inward and clockwise holes grow. Loops that vanish at the
// given distance are dropped.
func (s *Shape) Offset(d float64, opts OffsetOpts) *Shape {
	out := &Shape{}
	add := func(r *Polyline) {
		if r.Orientation() == CW {
			out.CW = append(out.CW, r)
		} else {
			out.CCW = append(out.CCW, r)
		}
	}
	for _, p := range s.CCW {
		for _, r := range p.Offset(d, opts) {
			add(r)
		}
	}
	for _, p := range s.CW {
		for _, r := range p.Offset(d, opts) {
			add(r)
		}
	}
	return out
}

func (s *Shape) String() string {
	return fmt.Sprintf("Shape(outer=%d, holes=%d)", len(s.CCW), len(s.CW))
}
