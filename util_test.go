package contour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(t *testing.T, want, got, eps float64) {
	t.Helper()
	if math.Abs(want-got) > eps {
		t.Errorf("got %g, want %g (within %g)", got, want, eps)
	}
}

// vertsOf collects a polyline's vertices into a slice for comparison.
func vertsOf(p *Polyline) []Vertex {
	var vs []Vertex
	for _, v := range p.Vertices() {
		vs = append(vs, v)
	}
	return vs
}

// square returns a closed counterclockwise axis-aligned square with corner
// (x, y) and the given side length.
func square(x, y, side float64) *Polyline {
	return NewPolyline([]Vertex{
		V(x, y, 0),
		V(x+side, y, 0),
		V(x+side, y+side, 0),
		V(x, y+side, 0),
	}, true)
}

// circle returns a closed counterclockwise circle of radius r centered on
// (cx, cy), built from two semicircular arcs.
func circle(cx, cy, r float64) *Polyline {
	return NewPolyline([]Vertex{
		V(cx+r, cy, 1),
		V(cx-r, cy, 1),
	}, true)
}
