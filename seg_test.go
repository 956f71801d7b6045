package contour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegArcDerivation(t *testing.T) {
	// Bulge 1 is a semicircle: the center sits on the chord midpoint.
	s := seg{V(0, 0, 1), V(2, 0, 0)}
	a := s.arc()
	diff(t, Pt(1, 0), a.center, cmpopts.EquateApprox(0, 1e-12))
	approx(t, 1, a.radius, 1e-12)
	approx(t, math.Pi, a.sweep, 1e-12)

	// Bulge tan(π/8) is a quarter circle.
	s = seg{V(1, 0, math.Tan(math.Pi / 8)), V(0, 1, 0)}
	a = s.arc()
	diff(t, Pt(0, 0), a.center, cmpopts.EquateApprox(0, 1e-12))
	approx(t, 1, a.radius, 1e-12)
	approx(t, math.Pi/2, a.sweep, 1e-12)

	// Negative bulge sweeps clockwise on the other side of the chord.
	s = seg{V(0, 0, -1), V(2, 0, 0)}
	a = s.arc()
	diff(t, Pt(1, 0), a.center, cmpopts.EquateApprox(0, 1e-12))
	approx(t, -math.Pi, a.sweep, 1e-12)
}

func TestSegLength(t *testing.T) {
	approx(t, 5, seg{V(0, 0, 0), V(3, 4, 0)}.length(), 1e-12)
	approx(t, math.Pi, seg{V(0, 0, 1), V(2, 0, 0)}.length(), 1e-12)
}

func TestSegPointAt(t *testing.T) {
	s := seg{V(0, 0, 0), V(4, 0, 0)}
	diff(t, Pt(1, 0), s.pointAt(0.25), cmpopts.EquateApprox(0, 1e-12))

	// Halfway along a semicircle over (0,0)-(2,0) is the top of the circle.
	s = seg{V(0, 0, 1), V(2, 0, 0)}
	diff(t, Pt(1, 1), s.pointAt(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestSegClosestPoint(t *testing.T) {
	s := seg{V(0, 0, 0), V(10, 0, 0)}
	diff(t, Pt(3, 0), s.closestPoint(Pt(3, 5)), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0, 0), s.closestPoint(Pt(-2, 1)), cmpopts.EquateApprox(0, 1e-12))

	s = seg{V(0, 0, 1), V(2, 0, 0)}
	diff(t, Pt(1, 1), s.closestPoint(Pt(1, 5)), cmpopts.EquateApprox(0, 1e-12))
	// Below the chord the arc is closest at one of its endpoints.
	diff(t, Pt(2, 0), s.closestPoint(Pt(2.5, -1)), cmpopts.EquateApprox(0, 1e-12))
}

func TestSegSplit(t *testing.T) {
	s := seg{V(0, 0, 0), V(4, 0, 0)}
	first, second := s.split(Pt(1, 0))
	diff(t, Pt(1, 0), first.end(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(1, 0), second.start(), cmpopts.EquateApprox(0, 1e-12))
	approx(t, 3, second.length(), 1e-12)

	// Splitting a semicircle at its apex yields two quarter arcs.
	s = seg{V(0, 0, 1), V(2, 0, 0)}
	first, second = s.split(Pt(1, 1))
	approx(t, math.Tan(math.Pi/8), first.v1.Bulge, 1e-12)
	approx(t, math.Tan(math.Pi/8), second.v1.Bulge, 1e-12)
	approx(t, math.Pi/2, first.length(), 1e-12)
	approx(t, math.Pi/2, second.length(), 1e-12)
}

func TestSegParamOf(t *testing.T) {
	s := seg{V(0, 0, 0), V(4, 0, 0)}
	approx(t, 0.25, s.paramOf(Pt(1, 0)), 1e-12)
	approx(t, 0, s.paramOf(Pt(-1, 0)), 1e-12)
	approx(t, 1, s.paramOf(Pt(9, 0)), 1e-12)

	s = seg{V(0, 0, 1), V(2, 0, 0)}
	a := s.arc()
	approx(t, 0, s.paramOf(s.start()), 1e-9)
	approx(t, 1, s.paramOf(s.end()), 1e-9)
	approx(t, 0.5, s.paramOf(Pt(1, 1)), 1e-9)

	// A point a hair behind the start angle maps to the start, not the end.
	behind := a.pointAtAngle(a.start - 1e-13)
	approx(t, 0, s.paramOf(behind), 1e-9)
}

func TestSegBBox(t *testing.T) {
	// The semicircle over (0,0)-(2,0) reaches up to (1,1).
	b := seg{V(0, 0, 1), V(2, 0, 0)}.bbox()
	diff(t, Rect{0, 0, 2, 1}, b, cmpopts.EquateApprox(0, 1e-12))

	b = seg{V(0, 0, 0), V(3, 4, 0)}.bbox()
	diff(t, Rect{0, 0, 3, 4}, b, cmpopts.EquateApprox(0, 1e-12))
}
