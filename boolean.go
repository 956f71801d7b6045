package contour

import (
	"fmt"
)

// BooleanOp selects the boolean operation performed by [Polyline.Boolean].
type BooleanOp int

const (
	// Union is the region covered by either operand.
	Union BooleanOp = iota
	// Intersection is the region covered by both operands.
	Intersection
	// Difference is the region covered by the first operand but not the
	// second.
	Difference
	// SymmetricDifference is the region covered by exactly one operand.
	SymmetricDifference
)

func (op BooleanOp) String() string {
	switch op {
	case Union:
		return "union"
	case Intersection:
		return "intersection"
	case Difference:
		return "difference"
	case SymmetricDifference:
		return "symmetric_difference"
	default:
		return fmt.Sprintf("BooleanOp(%d)", int(op))
	}
}

// BooleanOpts configures [Polyline.Boolean].
type BooleanOpts struct {
	// PosEqualEps is the tolerance for point coincidence. Zero means
	// DefaultEps.
	PosEqualEps float64

	// SliceJoinEps is the tolerance for stitching result slices together.
	// Zero means DefaultEps.
	SliceJoinEps float64
}

// DefaultBooleanOpts are the options used by most callers.
var DefaultBooleanOpts = BooleanOpts{}

func (o BooleanOpts) withDefaults() BooleanOpts {
	if o.PosEqualEps == 0 {
		o.PosEqualEps = DefaultEps
	}
	if o.SliceJoinEps == 0 {
		o.SliceJoinEps = DefaultEps
	}
	return o
}

// BooleanResult holds the loops produced by a boolean operation. Pos holds
// counterclockwise loops enclosing area, Neg holds clockwise loops that are
// holes inside one of the Pos loops.
type BooleanResult struct {
	Pos []*Polyline
	Neg []*Polyline
}

type sliceClass int

const (
	sliceOutside sliceClass = iota
	sliceInside
	sliceCoincidentSame
	sliceCoincidentOpposite
)

// classifySlice places a slice relative to other by testing the slice's
// midpoint: on other's boundary (split further into same and opposite
// direction of travel), inside, or outside.
func classifySlice(s, other *Polyline, eps float64) sliceClass {
	l, err := s.Length()
	if err != nil {
		return sliceOutside
	}
	mid, err := s.PointAtLength(l / 2)
	if err != nil {
		return sliceOutside
	}
	cp, err := other.ClosestPoint(mid.Point, 0)
	if err == nil && cp.Distance <= eps {
		t1 := s.segAt(mid.SegIndex).tangentAt(mid.Point)
		t2 := other.segAt(cp.SegIndex).tangentAt(cp.Point)
		if t1.Dot(t2) > 0 {
			return sliceCoincidentSame
		}
		return sliceCoincidentOpposite
	}
	if other.WindingNumber(mid.Point) != 0 {
		return sliceInside
	}
	return sliceOutside
}

func reversedClone(p *Polyline) *Polyline {
	c := p.Clone()
	c.Reverse()
	return c
}

// ccwClone returns a counterclockwise copy of p.
func ccwClone(p *Polyline) *Polyline {
	c := p.Clone()
	if c.Orientation() == CW {
		c.Reverse()
	}
	return c
}

func splitsFromIntersects(ints IntersectsResult, first bool) map[int][]Point {
	splits := make(map[int][]Point)
	idx := func(bi BasicIntersect) int {
		if first {
			return bi.SegIndex1
		}
		return bi.SegIndex2
	}
	for _, bi := range ints.Basic {
		splits[idx(bi)] = append(splits[idx(bi)], bi.Point)
	}
	for _, ov := range ints.Overlapping {
		i := ov.SegIndex2
		if first {
			i = ov.SegIndex1
		}
		splits[i] = append(splits[i], ov.Start, ov.End)
	}
	return splits
}

// booleanNoIntersect handles operands whose boundaries never touch: one
// contains the other, or they are disjoint. Both operands are
// counterclockwise.
func booleanNoIntersect(a, b *Polyline, op BooleanOp) BooleanResult {
	aInB := b.WindingNumber(a.vertices[0].Pos()) != 0
	bInA := a.WindingNumber(b.vertices[0].Pos()) != 0
	switch op {
	case Union:
		switch {
		case aInB:
			return BooleanResult{Pos: []*Polyline{b}}
		case bInA:
			return BooleanResult{Pos: []*Polyline{a}}
		default:
			return BooleanResult{Pos: []*Polyline{a, b}}
		}
	case Intersection:
		switch {
		case aInB:
			return BooleanResult{Pos: []*Polyline{a}}
		case bInA:
			return BooleanResult{Pos: []*Polyline{b}}
		default:
			return BooleanResult{}
		}
	case Difference:
		switch {
		case aInB:
			return BooleanResult{}
		case bInA:
			return BooleanResult{Pos: []*Polyline{a}, Neg: []*Polyline{reversedClone(b)}}
		default:
			return BooleanResult{Pos: []*Polyline{a}}
		}
	default: // SymmetricDifference
		switch {
		case aInB:
			return BooleanResult{Pos: []*Polyline{b}, Neg: []*Polyline{reversedClone(a)}}
		case bInA:
			return BooleanResult{Pos: []*Polyline{a}, Neg: []*Polyline{reversedClone(b)}}
		default:
			return BooleanResult{Pos: []*Polyline{a, b}}
		}
	}
}

// selectSlices applies the per-operation keep rules to the classified slices
// of one operand. fromFirst distinguishes the first operand's slices, which
// matters for coincident boundary runs: those are kept once, from the first
// operand, and only for operations where shared boundary belongs to the
// result.
func selectSlices(slices []*Polyline, other *Polyline, op BooleanOp, fromFirst bool, eps float64) []*Polyline {
	var out []*Polyline
	for _, s := range slices {
		switch classifySlice(s, other, eps) {
		case sliceOutside:
			switch op {
			case Union, SymmetricDifference:
				out = append(out, s)
			case Difference:
				if fromFirst {
					out = append(out, s)
				}
			}
		case sliceInside:
			switch op {
			case Intersection:
				out = append(out, s)
			case Difference:
				if !fromFirst {
					out = append(out, reversedClone(s))
				}
			case SymmetricDifference:
				out = append(out, reversedClone(s))
			}
		case sliceCoincidentSame:
			if fromFirst && (op == Union || op == Intersection) {
				out = append(out, s)
			}
		case sliceCoincidentOpposite:
			// Opposite-direction shared boundary cancels.
		}
	}
	return out
}

// Boolean combines two closed polylines with the given boolean operation.
// Both operands are treated as enclosed regions regardless of their stored
// orientation. The result's Pos loops are counterclockwise, Neg loops are
// clockwise holes. Open polylines and polylines with fewer than two vertices
// make the operation fail with [ErrDegenerateInput].
func (p *Polyline) Boolean(o *Polyline, op BooleanOp, opts BooleanOpts) (BooleanResult, error) {
	opts = opts.withDefaults()
	eps := opts.PosEqualEps
	if !p.closed || p.Len() < 2 {
		return BooleanResult{}, fmt.Errorf("boolean operand 1: %w", ErrDegenerateInput)
	}
	if !o.closed || o.Len() < 2 {
		return BooleanResult{}, fmt.Errorf("boolean operand 2: %w", ErrDegenerateInput)
	}
	a := ccwClone(p)
	b := ccwClone(o)

	ints := a.FindIntersects(b, eps)
	if len(ints.Basic) == 0 && len(ints.Overlapping) == 0 {
		return booleanNoIntersect(a, b, op), nil
	}

	slicesA := a.sliceAt(splitsFromIntersects(ints, true), eps)
	slicesB := b.sliceAt(splitsFromIntersects(ints, false), eps)
	var selected []*Polyline
	selected = append(selected, selectSlices(slicesA, b, op, true, eps)...)
	selected = append(selected, selectSlices(slicesB, a, op, false, eps)...)

	var res BooleanResult
	for _, loop := range stitchSlices(selected, opts.SliceJoinEps, true) {
		loop.RemoveRepeated(eps)
		if loop.Len() < 2 {
			continue
		}
		if area, err := loop.Area(); err == nil && area < 0 {
			res.Neg = append(res.Neg, loop)
		} else {
			res.Pos = append(res.Pos, loop)
		}
	}
	return res, nil
}

// Union returns the region covered by either polyline.
func (p *Polyline) Union(o *Polyline, opts BooleanOpts) (BooleanResult, error) {
	return p.Boolean(o, Union, opts)
}

// Intersect returns the region covered by both polylines.
func (p *Polyline) Intersect(o *Polyline, opts BooleanOpts) (BooleanResult, error) {
	return p.Boolean(o, Intersection, opts)
}

// Difference returns the region covered by p but not o.
func (p *Polyline) Difference(o *Polyline, opts BooleanOpts) (BooleanResult, error) {
	return p.Boolean(o, Difference, opts)
}

// SymmetricDifference returns the region covered by exactly one of the
// polylines.
func (p *Polyline) SymmetricDifference(o *Polyline, opts BooleanOpts) (BooleanResult, error) {
	return p.Boolean(o, SymmetricDifference, opts)
}

// Containment classifies how two closed polylines relate spatially.
type Containment int

const (
	// Pline1InsidePline2 means the receiver lies entirely inside the
	// argument.
	Pline1InsidePline2 Containment = iota
	// Pline2InsidePline1 means the argument lies entirely inside the
	// receiver.
	Pline2InsidePline1
	// Disjoint means the enclosed regions do not touch.
	Disjoint
	// Intersected means the boundaries cross or share a run of curve.
	Intersected
	// ContainmentInvalid means at least one input was open or had fewer
	// than two vertices.
	ContainmentInvalid
)

func (c Containment) String() string {
	switch c {
	case Pline1InsidePline2:
		return "pline1_inside_pline2"
	case Pline2InsidePline1:
		return "pline2_inside_pline1"
	case Disjoint:
		return "disjoint"
	case Intersected:
		return "intersected"
	case ContainmentInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Containment(%d)", int(c))
	}
}

// Contains classifies the spatial relation of two closed polylines: one
// inside the other, disjoint, or intersecting.
func (p *Polyline) Contains(o *Polyline, eps float64) Containment {
	if !p.closed || p.Len() < 2 || !o.closed || o.Len() < 2 {
		return ContainmentInvalid
	}
	ints := p.FindIntersects(o, eps)
	if len(ints.Basic) > 0 || len(ints.Overlapping) > 0 {
		return Intersected
	}
	if o.WindingNumber(p.vertices[0].Pos()) != 0 {
		return Pline1InsidePline2
	}
	if p.WindingNumber(o.vertices[0].Pos()) != 0 {
		return Pline2InsidePline1
	}
	return Disjoint
}
