package contour

import (
	"math"
)

// DefaultEps is the position tolerance used when an options struct leaves a
// tolerance field zero.
const DefaultEps = 1e-5

// OffsetOpts configures [Polyline.Offset].
type OffsetOpts struct {
	// HandleSelfIntersects controls whether self-intersecting raw offset
	// loops are clipped into valid loops. When false the raw joined offset
	// is returned as-is, which is faster but can contain inverted regions.
	HandleSelfIntersects bool

	// PosEqualEps is the tolerance for point coincidence. Zero means
	// DefaultEps.
	PosEqualEps float64

	// SliceJoinEps is the tolerance for stitching clipped slices back
	// together. Zero means DefaultEps.
	SliceJoinEps float64

	// OffsetDistEps is the slack allowed when testing that a candidate
	// slice keeps the full offset distance from the source. Zero means
	// DefaultEps.
	OffsetDistEps float64
}

// DefaultOffsetOpts are the options used by most callers.
var DefaultOffsetOpts = OffsetOpts{
	HandleSelfIntersects: true,
}

func (o OffsetOpts) withDefaults() OffsetOpts {
	if o.PosEqualEps == 0 {
		o.PosEqualEps = DefaultEps
	}
	if o.SliceJoinEps == 0 {
		o.SliceJoinEps = DefaultEps
	}
	if o.OffsetDistEps == 0 {
		o.OffsetDistEps = DefaultEps
	}
	return o
}

// rawOffsetSeg is one source segment offset by the signed distance, before
// joining. origV is the source segment's end vertex, which is the pivot for
// the join with the next raw segment.
type rawOffsetSeg struct {
	s     seg
	origV Point
}

// offsetSeg offsets a single segment by d along the left-hand normal of its
// direction of travel. An arc whose radius shrinks to zero or below
// collapses to a line between the projected endpoints.
func offsetSeg(s seg, d, eps float64) (rawOffsetSeg, bool) {
	if s.isLine() {
		dir := s.end().Sub(s.start())
		if dir.Hypot() <= eps {
			return rawOffsetSeg{}, false
		}
		n := dir.Normalize().Perp().Mul(d)
		return rawOffsetSeg{
			s:     seg{V(s.v1.X+n.X, s.v1.Y+n.Y, 0), V(s.v2.X+n.X, s.v2.Y+n.Y, 0)},
			origV: s.end(),
		}, true
	}
	a := s.arc()
	r := a.radius - math.Copysign(d, s.v1.Bulge)
	p1 := a.center.Translate(VecFromAngle(a.start).Mul(r))
	p2 := a.center.Translate(VecFromAngle(a.endAngle()).Mul(r))
	if r <= eps {
		// Collapsed arc.
		if p1.Coincident(p2, eps) {
			return rawOffsetSeg{}, false
		}
		return rawOffsetSeg{
			s:     seg{V(p1.X, p1.Y, 0), V(p2.X, p2.Y, 0)},
			origV: s.end(),
		}, true
	}
	return rawOffsetSeg{
		s:     seg{V(p1.X, p1.Y, s.v1.Bulge), V(p2.X, p2.Y, 0)},
		origV: s.end(),
	}, true
}

// joinRawOffsets connects consecutive raw offset segments: coincident ends
// snap together, crossing segments are trimmed at the intersection nearest
// the join pivot, and disconnected ends are bridged with an arc of radius
// |d| centered on the pivot. The returned polyline is closed iff the source
// was.
func joinRawOffsets(raw []rawOffsetSeg, d, eps float64, closed bool) *Polyline {
	segs := make([]seg, len(raw))
	for i, r := range raw {
		segs[i] = r.s
	}
	njoin := len(raw) - 1
	if closed {
		njoin = len(raw)
	}
	joinAfter := make([][]seg, len(raw))
	for i := range njoin {
		j := (i + 1) % len(raw)
		a, b := segs[i], segs[j]
		pivot := raw[i].origV
		if a.end().Coincident(b.start(), eps) {
			segs[j].v1.X = a.v2.X
			segs[j].v1.Y = a.v2.Y
			continue
		}
		si := intersectSegs(a, b, eps)
		if si.n > 0 {
			pt := si.pts[0]
			if si.n == 2 && si.pts[1].Distance(pivot) < pt.Distance(pivot) {
				pt = si.pts[1]
			}
			trimmedA, _ := a.split(pt)
			_, trimmedB := b.split(pt)
			segs[i] = trimmedA
			segs[j] = trimmedB
			continue
		}
		startAng := a.end().Sub(pivot).Angle()
		endAng := b.start().Sub(pivot).Angle()
		sweep := math.Mod(endAng-startAng, tau)
		if sweep > math.Pi {
			sweep -= tau
		} else if sweep < -math.Pi {
			sweep += tau
		}
		bridge := seg{
			V(a.v2.X, a.v2.Y, bulgeFromSweep(sweep)),
			V(b.v1.X, b.v1.Y, 0),
		}
		joinAfter[i] = append(joinAfter[i], bridge)
	}

	out := &Polyline{closed: closed}
	emit := func(v Vertex) {
		if n := len(out.vertices); n > 0 && out.vertices[n-1].Pos().Coincident(v.Pos(), eps) {
			out.vertices[n-1].Bulge = v.Bulge
			return
		}
		out.Append(v)
	}
	for i, s := range segs {
		if s.length() > eps {
			emit(s.v1)
		}
		for _, b := range joinAfter[i] {
			emit(b.v1)
		}
	}
	if !closed && len(segs) > 0 {
		last := segs[len(segs)-1]
		emit(V(last.v2.X, last.v2.Y, 0))
	}
	if closed && len(out.vertices) > 1 &&
		out.vertices[len(out.vertices)-1].Pos().Coincident(out.vertices[0].Pos(), eps) {
		out.vertices = out.vertices[:len(out.vertices)-1]
	}
	return out
}

// keepsDistance reports whether every segment midpoint of candidate lies at
// least |d| (minus slack) away from the source polyline.
func (p *Polyline) keepsDistance(candidate *Polyline, d, slack float64) bool {
	want := math.Abs(d) - slack
	for _, s := range candidate.segments() {
		res, err := p.ClosestPoint(s.midpoint(), 0)
		if err != nil || res.Distance < want {
			return false
		}
	}
	return true
}

// Offset computes the polyline offset by the signed distance d. For a
// closed counterclockwise polyline positive d offsets inward and negative d
// outward; for clockwise the signs flip. The result can be empty (the
// polyline vanishes at the given distance) or contain multiple polylines
// (the offset splits apart). Offsetting by zero returns a clone.
func (p *Polyline) Offset(d float64, opts OffsetOpts) []*Polyline {
	opts = opts.withDefaults()
	eps := opts.PosEqualEps
	if d == 0 {
		return []*Polyline{p.Clone()}
	}
	var raw []rawOffsetSeg
	for _, s := range p.segments() {
		if ro, ok := offsetSeg(s, d, eps); ok {
			raw = append(raw, ro)
		}
	}
	if len(raw) == 0 {
		return nil
	}
	joined := joinRawOffsets(raw, d, eps, p.closed)
	if joined.segCount() == 0 {
		return nil
	}
	if !opts.HandleSelfIntersects {
		return []*Polyline{joined}
	}

	ints := joined.selfIntersects(eps)
	if len(ints.Basic) == 0 && len(ints.Overlapping) == 0 {
		if !p.keepsDistance(joined, d, opts.OffsetDistEps) {
			return nil
		}
		if p.closed && joined.Orientation() != p.Orientation() {
			return nil
		}
		return []*Polyline{joined}
	}

	splits := make(map[int][]Point)
	add := func(i int, pt Point) { splits[i] = append(splits[i], pt) }
	for _, bi := range ints.Basic {
		add(bi.SegIndex1, bi.Point)
		add(bi.SegIndex2, bi.Point)
	}
	for _, ov := range ints.Overlapping {
		add(ov.SegIndex1, ov.Start)
		add(ov.SegIndex1, ov.End)
		add(ov.SegIndex2, ov.Start)
		add(ov.SegIndex2, ov.End)
	}
	var kept []*Polyline
	for _, s := range joined.sliceAt(splits, eps) {
		if p.keepsDistance(s, d, opts.OffsetDistEps) {
			kept = append(kept, s)
		}
	}
	stitched := stitchSlices(kept, opts.SliceJoinEps, p.closed)
	if !p.closed {
		return stitched
	}
	res := stitched[:0]
	for _, s := range stitched {
		if s.Orientation() == p.Orientation() {
			res = append(res, s)
		}
	}
	return res
}
