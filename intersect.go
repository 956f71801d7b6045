package contour

import (
	"math"
)

// BasicIntersect is a single intersection point between two polyline
// segments, identified by their segment indices in each polyline.
type BasicIntersect struct {
	SegIndex1 int
	SegIndex2 int
	Point     Point
}

// OverlappingIntersect is a shared run of curve between two polyline
// segments: two collinear line segments or two arcs on the same circle.
// Start and End are ordered along the first polyline's direction of travel.
type OverlappingIntersect struct {
	SegIndex1 int
	SegIndex2 int
	Start     Point
	End       Point
}

// IntersectsResult collects all intersections found between two polylines.
type IntersectsResult struct {
	Basic       []BasicIntersect
	Overlapping []OverlappingIntersect
}

// segIntersect is the raw intersection of one segment pair. A pair has at
// most two intersection points, or at most two overlapping runs (two runs
// only happen for arcs on the same circle crossing each other's gap twice).
type segIntersect struct {
	pts [2]Point
	n   int
	ovS [2]Point
	ovE [2]Point
	nOv int
}

func (si *segIntersect) addPoint(pt Point, eps float64) {
	for i := range si.n {
		if si.pts[i].Coincident(pt, eps) {
			return
		}
	}
	if si.n < 2 {
		si.pts[si.n] = pt
		si.n++
	}
}

func (si *segIntersect) addOverlap(start, end Point) {
	if si.nOv < 2 {
		si.ovS[si.nOv] = start
		si.ovE[si.nOv] = end
		si.nOv++
	}
}

func intersectSegs(s1, s2 seg, eps float64) segIntersect {
	switch {
	case s1.isLine() && s2.isLine():
		return intersectLineLine(s1, s2, eps)
	case s1.isLine():
		return intersectLineArc(s1, s2.arc(), eps)
	case s2.isLine():
		return intersectLineArc(s2, s1.arc(), eps)
	default:
		return intersectArcArc(s1.arc(), s2.arc(), eps)
	}
}

func intersectLineLine(s1, s2 seg, eps float64) segIntersect {
	var si segIntersect
	p := s1.start()
	q := s2.start()
	d1 := s1.end().Sub(p)
	d2 := s2.end().Sub(q)
	l1 := d1.Hypot()
	l2 := d2.Hypot()
	if l1 == 0 || l2 == 0 {
		return si
	}
	qp := q.Sub(p)
	denom := d1.Cross(d2)
	if math.Abs(denom) > eps*l1*l2 {
		t := qp.Cross(d2) / denom
		u := qp.Cross(d1) / denom
		slack1 := eps / l1
		slack2 := eps / l2
		if t >= -slack1 && t <= 1+slack1 && u >= -slack2 && u <= 1+slack2 {
			t = math.Max(0, math.Min(1, t))
			si.addPoint(p.Lerp(s1.end(), t), eps)
		}
		return si
	}
	// Parallel. Coincident lines overlap where the parameter ranges meet.
	if math.Abs(qp.Cross(d1))/l1 > eps {
		return si
	}
	ta := qp.Dot(d1) / (l1 * l1)
	tb := s2.end().Sub(p).Dot(d1) / (l1 * l1)
	lo := math.Max(0, math.Min(ta, tb))
	hi := math.Min(1, math.Max(ta, tb))
	slack := eps / l1
	switch {
	case hi < lo-slack:
	case hi-lo <= slack:
		si.addPoint(p.Lerp(s1.end(), (lo+hi)/2), eps)
	default:
		si.addOverlap(p.Lerp(s1.end(), lo), p.Lerp(s1.end(), hi))
	}
	return si
}

func intersectLineArc(ln seg, a arcSeg, eps float64) segIntersect {
	var si segIntersect
	p := ln.start()
	d := ln.end().Sub(p)
	l := d.Hypot()
	if l == 0 {
		return si
	}
	angEps := eps / a.radius
	f := p.Sub(a.center)
	qa := d.Hypot2()
	qb := 2 * f.Dot(d)
	qc := f.Hypot2() - a.radius*a.radius
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		// Near tangency: accept the closest approach if it lies on both the
		// segment and the arc within eps.
		t := math.Max(0, math.Min(1, -qb/(2*qa)))
		pt := p.Lerp(ln.end(), t)
		if math.Abs(pt.Distance(a.center)-a.radius) <= eps &&
			angleWithinSweep(a.start, a.sweep, pt.Sub(a.center).Angle(), angEps) {
			si.addPoint(pt, eps)
		}
		return si
	}
	sq := math.Sqrt(disc)
	slack := eps / l
	for _, t := range [2]float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if t < -slack || t > 1+slack {
			continue
		}
		pt := p.Lerp(ln.end(), math.Max(0, math.Min(1, t)))
		if angleWithinSweep(a.start, a.sweep, pt.Sub(a.center).Angle(), angEps) {
			si.addPoint(pt, eps)
		}
	}
	return si
}

// ccwInterval returns the arc as a counterclockwise angular interval
// [lo, lo+width] with lo normalized to [0, 2π).
func ccwInterval(a arcSeg) (lo, width float64) {
	if a.sweep >= 0 {
		return normalizeAngle(a.start), a.sweep
	}
	return normalizeAngle(a.start + a.sweep), -a.sweep
}

func intersectArcArc(a1, a2 arcSeg, eps float64) segIntersect {
	var si segIntersect
	cd := a2.center.Sub(a1.center)
	d := cd.Hypot()
	angEps1 := eps / a1.radius
	angEps2 := eps / a2.radius
	if d <= eps {
		if math.Abs(a1.radius-a2.radius) > eps {
			return si
		}
		intersectCoincidentArcs(&si, a1, a2, angEps1, eps)
		return si
	}
	if d > a1.radius+a2.radius+eps || d < math.Abs(a1.radius-a2.radius)-eps {
		return si
	}
	h := (d*d + a1.radius*a1.radius - a2.radius*a2.radius) / (2 * d)
	v2 := a1.radius*a1.radius - h*h
	if v2 < 0 {
		v2 = 0
	}
	v := math.Sqrt(v2)
	base := a1.center.Translate(cd.Mul(h / d))
	offs := cd.Perp().Mul(v / d)
	for _, pt := range [2]Point{base.Translate(offs), base.Translate(offs.Negate())} {
		if angleWithinSweep(a1.start, a1.sweep, pt.Sub(a1.center).Angle(), angEps1) &&
			angleWithinSweep(a2.start, a2.sweep, pt.Sub(a2.center).Angle(), angEps2) {
			si.addPoint(pt, eps)
		}
	}
	return si
}

// intersectCoincidentArcs handles two arcs on the same circle. Their angular
// intervals can overlap in zero, one, or two runs; runs shorter than the
// angular tolerance collapse to single points. Results are oriented along
// a1's direction of travel.
func intersectCoincidentArcs(si *segIntersect, a1, a2 arcSeg, angEps, eps float64) {
	lo1, w1 := ccwInterval(a1)
	lo2, w2 := ccwInterval(a2)
	for _, shift := range [2]float64{0, -tau} {
		b := lo2 + shift
		// Bring a2's interval near a1's so plain interval math applies.
		for b+w2 < lo1-angEps {
			b += tau
		}
		olo := math.Max(lo1, b)
		ohi := math.Min(lo1+w1, b+w2)
		if ohi < olo-angEps {
			continue
		}
		switch {
		case ohi-olo <= angEps:
			si.addPoint(a1.pointAtAngle((olo+ohi)/2), eps)
		case a1.sweep >= 0:
			si.addOverlap(a1.pointAtAngle(olo), a1.pointAtAngle(ohi))
		default:
			si.addOverlap(a1.pointAtAngle(ohi), a1.pointAtAngle(olo))
		}
	}
	// The two shifts can find the same run when an interval wraps.
	if si.nOv == 2 && si.ovS[0].Coincident(si.ovS[1], eps) && si.ovE[0].Coincident(si.ovE[1], eps) {
		si.nOv = 1
	}
}

// FindIntersects enumerates all intersections between p and o. Distinct
// crossing and tangent points are reported in Basic; shared runs of curve
// (collinear line segments, arcs on the same circle) are reported in
// Overlapping. Intersections at shared segment endpoints are reported once.
func (p *Polyline) FindIntersects(o *Polyline, eps float64) IntersectsResult {
	var res IntersectsResult
	for i, s1 := range p.segments() {
		b1 := s1.bbox().Inflate(eps)
		for j, s2 := range o.segments() {
			if !b1.Overlaps(s2.bbox().Inflate(eps)) {
				continue
			}
			si := intersectSegs(s1, s2, eps)
			for k := range si.n {
				res.appendBasic(BasicIntersect{i, j, si.pts[k]}, eps)
			}
			for k := range si.nOv {
				res.Overlapping = append(res.Overlapping, OverlappingIntersect{i, j, si.ovS[k], si.ovE[k]})
			}
		}
	}
	return res
}

// appendBasic records bi unless an equivalent point was already found on an
// adjacent segment pair, which happens whenever an intersection falls on a
// shared vertex of either polyline.
func (r *IntersectsResult) appendBasic(bi BasicIntersect, eps float64) {
	for _, e := range r.Basic {
		if (e.SegIndex1 == bi.SegIndex1 || e.SegIndex2 == bi.SegIndex2) &&
			e.Point.Coincident(bi.Point, eps) {
			return
		}
	}
	r.Basic = append(r.Basic, bi)
}

// selfIntersects finds intersections between distinct segments of p,
// excluding the shared vertex of adjacent segments.
func (p *Polyline) selfIntersects(eps float64) IntersectsResult {
	var res IntersectsResult
	n := p.segCount()
	segs := make([]seg, n)
	boxes := make([]Rect, n)
	for i, s := range p.segments() {
		segs[i] = s
		boxes[i] = s.bbox().Inflate(eps)
	}
	for i := range n {
		for j := i + 1; j < n; j++ {
			if !boxes[i].Overlaps(boxes[j]) {
				continue
			}
			si := intersectSegs(segs[i], segs[j], eps)
			var shared Point
			adjacent := false
			if j == i+1 {
				adjacent = true
				shared = segs[i].end()
			} else if p.closed && i == 0 && j == n-1 {
				adjacent = true
				shared = segs[j].end()
			}
			for k := range si.n {
				if adjacent && si.pts[k].Coincident(shared, eps) {
					continue
				}
				res.appendBasic(BasicIntersect{i, j, si.pts[k]}, eps)
			}
			for k := range si.nOv {
				res.Overlapping = append(res.Overlapping, OverlappingIntersect{i, j, si.ovS[k], si.ovE[k]})
			}
		}
	}
	return res
}

// HasSelfIntersect reports whether any two non-adjacent segments of p
// intersect, or any two segments share a run of curve.
func (p *Polyline) HasSelfIntersect(eps float64) bool {
	res := p.selfIntersects(eps)
	return len(res.Basic) > 0 || len(res.Overlapping) > 0
}
