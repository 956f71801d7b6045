package contour

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestReverseIsGeometricIdentity(t *testing.T) {
	p := NewPolyline([]Vertex{
		V(0, 0, 0),
		V(4, 0, 0.3),
		V(4, 4, 0),
		V(0, 4, -0.2),
	}, true)
	wantLen, _ := p.Length()
	wantArea, _ := p.Area()

	p.Reverse()
	l, _ := p.Length()
	a, _ := p.Area()
	approx(t, wantLen, l, 1e-12)
	approx(t, -wantArea, a, 1e-12)

	p.Reverse()
	a, _ = p.Area()
	approx(t, wantArea, a, 1e-12)
}

func TestReverseOpenRoundTrip(t *testing.T) {
	// The terminal vertex's bulge is never traced but must survive a double
	// reversal vertex-for-vertex.
	verts := []Vertex{
		V(0, 0, 0.3),
		V(4, 0, -0.5),
		V(4, 4, 0.7),
	}
	p := NewPolyline(verts, false)
	wantLen, _ := p.Length()

	p.Reverse()
	diff(t, []Vertex{V(4, 4, 0.5), V(4, 0, -0.3), V(0, 0, -0.7)}, vertsOf(p))
	l, _ := p.Length()
	approx(t, wantLen, l, 1e-12)

	p.Reverse()
	diff(t, verts, vertsOf(p))
}

func TestScaleTranslate(t *testing.T) {
	p := square(0, 0, 1)
	p.Scale(3)
	a, _ := p.Area()
	approx(t, 9, a, 1e-12)

	p.Translate(10, -5)
	b, _ := p.BoundingBox()
	diff(t, Rect{10, -5, 13, -2}, b)
	a, _ = p.Area()
	approx(t, 9, a, 1e-12)
}

func TestRemoveRepeated(t *testing.T) {
	p := NewPolyline([]Vertex{
		V(0, 0, 0),
		V(0, 0, 0),
		V(1, 0, 0.5),
		V(1, 0, 0),
		V(2, 0, 0),
	}, false)
	p.RemoveRepeated(1e-9)
	// The surviving vertex keeps the later bulge, which describes the
	// segment actually leaving that position.
	diff(t, []Vertex{V(0, 0, 0), V(1, 0, 0), V(2, 0, 0)}, vertsOf(p))

	before := p.Len()
	p.RemoveRepeated(1e-9)
	if p.Len() != before {
		t.Errorf("second pass changed vertex count from %d to %d", before, p.Len())
	}

	// Closed polylines deduplicate the wrap pair too.
	c := NewPolyline([]Vertex{V(0, 0, 0), V(1, 0, 0), V(1, 1, 0), V(0, 0, 0)}, true)
	c.RemoveRepeated(1e-9)
	if c.Len() != 3 {
		t.Errorf("got %d vertices, want 3", c.Len())
	}
}

func TestRemoveRedundant(t *testing.T) {
	p := NewPolyline([]Vertex{
		V(0, 0, 0),
		V(1, 0, 0),
		V(2, 0, 0),
		V(2, 2, 0),
	}, false)
	p.RemoveRedundant(1e-9)
	diff(t, []Vertex{V(0, 0, 0), V(2, 0, 0), V(2, 2, 0)}, vertsOf(p))

	// A circle of four quarter arcs collapses to two semicircles.
	b := math.Tan(math.Pi / 8)
	c := NewPolyline([]Vertex{
		V(1, 0, b),
		V(0, 1, b),
		V(-1, 0, b),
		V(0, -1, b),
	}, true)
	c.RemoveRedundant(1e-9)
	diff(t, []Vertex{V(1, 0, 1), V(-1, 0, 1)}, vertsOf(c), cmpopts.EquateApprox(0, 1e-12))

	wantArea, _ := circle(0, 0, 1).Area()
	a, _ := c.Area()
	approx(t, wantArea, a, 1e-9)
}

func TestRotateStart(t *testing.T) {
	p := square(0, 0, 10)
	if err := p.RotateStart(0, Pt(5, 0), 1e-9); err != nil {
		t.Fatal(err)
	}
	diff(t, []Vertex{
		V(5, 0, 0),
		V(10, 0, 0),
		V(10, 10, 0),
		V(0, 10, 0),
		V(0, 0, 0),
	}, vertsOf(p), cmpopts.EquateApprox(0, 1e-12))
	l, _ := p.Length()
	a, _ := p.Area()
	approx(t, 40, l, 1e-12)
	approx(t, 100, a, 1e-12)

	// Rotating to an existing vertex just rotates the array.
	q := square(0, 0, 10)
	if err := q.RotateStart(1, Pt(10, 10), 1e-9); err != nil {
		t.Fatal(err)
	}
	diff(t, []Vertex{
		V(10, 10, 0),
		V(0, 10, 0),
		V(0, 0, 0),
		V(10, 0, 0),
	}, vertsOf(q))

	open := NewPolyline([]Vertex{V(0, 0, 0), V(1, 0, 0)}, false)
	if err := open.RotateStart(0, Pt(0, 0), 1e-9); !errors.Is(err, ErrDegenerateInput) {
		t.Errorf("got %v, want ErrDegenerateInput", err)
	}
	if err := square(0, 0, 10).RotateStart(7, Pt(0, 0), 1e-9); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
	if err := square(0, 0, 10).RotateStart(0, Pt(5, 5), 1e-9); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestToLines(t *testing.T) {
	c := circle(0, 0, 1)
	p, err := c.ToLines(0.01)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Closed() {
		t.Error("closed flag not preserved")
	}
	for i, v := range p.Vertices() {
		if v.Bulge != 0 {
			t.Errorf("vertex %d has bulge %g", i, v.Bulge)
		}
	}
	a, _ := p.Area()
	approx(t, math.Pi, a, 0.05)
	if a >= math.Pi {
		t.Errorf("inscribed polygon area %g not below %g", a, math.Pi)
	}

	lines := square(0, 0, 1)
	p, err = lines.ToLines(0.01)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, vertsOf(lines), vertsOf(p))

	if _, err := c.ToLines(0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}
