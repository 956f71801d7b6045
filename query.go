package contour

import (
	"fmt"
)

// ClosestPointResult is the nearest point on a polyline to a query point.
type ClosestPointResult struct {
	// SegIndex is the index of the segment the nearest point lies on.
	SegIndex int
	// Point is the nearest point on the polyline.
	Point Point
	// Distance is the euclidean distance from the query point; always ≥ 0.
	Distance float64
}

// PointAtLengthResult is the point at a given path length along a polyline.
type PointAtLengthResult struct {
	// SegIndex is the index of the segment the point lies on.
	SegIndex int
	// Point is the point at the requested path length.
	Point Point
}

// ClosestPoint returns the globally nearest point on the polyline to pt,
// breaking ties by the lowest segment index. A result within eps of pt is
// accepted immediately, which makes boundary queries cheap. It fails with
// [ErrDegenerateInput] if the polyline has no segments.
func (p *Polyline) ClosestPoint(pt Point, eps float64) (ClosestPointResult, error) {
	if p.segCount() == 0 {
		return ClosestPointResult{}, fmt.Errorf("closest point on polyline without segments: %w", ErrDegenerateInput)
	}
	best := ClosestPointResult{SegIndex: -1}
	for i, s := range p.segments() {
		cand := s.closestPoint(pt)
		dist := cand.Distance(pt)
		if best.SegIndex == -1 || dist < best.Distance {
			best = ClosestPointResult{SegIndex: i, Point: cand, Distance: dist}
			if dist <= eps {
				break
			}
		}
	}
	return best, nil
}

// PointAtLength returns the point at path length target along the polyline,
// traversing from vertex 0. The valid domain is [0, total length); anything
// else fails with [ErrOutOfRange]. A polyline without segments fails with
// [ErrDegenerateInput].
func (p *Polyline) PointAtLength(target float64) (PointAtLengthResult, error) {
	if p.segCount() == 0 {
		return PointAtLengthResult{}, fmt.Errorf("point at length on polyline without segments: %w", ErrDegenerateInput)
	}
	if target < 0 {
		return PointAtLengthResult{}, fmt.Errorf("negative path length %g: %w", target, ErrOutOfRange)
	}
	var acc float64
	for i, s := range p.segments() {
		l := s.length()
		if target-acc < l {
			return PointAtLengthResult{
				SegIndex: i,
				Point:    s.pointAt((target - acc) / l),
			}, nil
		}
		acc += l
	}
	return PointAtLengthResult{}, fmt.Errorf("path length %g beyond total %g: %w", target, acc, ErrOutOfRange)
}
