package contour

import (
	"errors"
	"testing"
)

// areaOf sums the signed areas of a boolean result's loops.
func areaOf(t *testing.T, res BooleanResult) float64 {
	t.Helper()
	var total float64
	for _, p := range append(res.Pos, res.Neg...) {
		a, err := p.Area()
		if err != nil {
			t.Fatal(err)
		}
		total += a
	}
	return total
}

func TestBooleanOverlappingSquares(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 0, 2)

	res, err := a.Union(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 1 || len(res.Neg) != 0 {
		t.Fatalf("union: got %d pos and %d neg loops, want 1 and 0", len(res.Pos), len(res.Neg))
	}
	approx(t, 6, areaOf(t, res), 1e-9)

	res, err = a.Intersect(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 1 || len(res.Neg) != 0 {
		t.Fatalf("intersect: got %d pos and %d neg loops, want 1 and 0", len(res.Pos), len(res.Neg))
	}
	approx(t, 2, areaOf(t, res), 1e-9)

	res, err = a.Difference(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 1 || len(res.Neg) != 0 {
		t.Fatalf("difference: got %d pos and %d neg loops, want 1 and 0", len(res.Pos), len(res.Neg))
	}
	approx(t, 2, areaOf(t, res), 1e-9)

	res, err = a.SymmetricDifference(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 2 || len(res.Neg) != 0 {
		t.Fatalf("symmetric difference: got %d pos and %d neg loops, want 2 and 0", len(res.Pos), len(res.Neg))
	}
	approx(t, 4, areaOf(t, res), 1e-9)
}

func TestBooleanContainedSquare(t *testing.T) {
	outer := square(0, 0, 10)
	inner := square(2, 2, 6)

	res, err := outer.Union(inner, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 1 || len(res.Neg) != 0 {
		t.Fatalf("union: got %d pos and %d neg loops, want 1 and 0", len(res.Pos), len(res.Neg))
	}
	approx(t, 100, areaOf(t, res), 1e-9)

	res, err = outer.Intersect(inner, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, 36, areaOf(t, res), 1e-9)

	// Subtracting a contained region punches a hole.
	res, err = outer.Difference(inner, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 1 || len(res.Neg) != 1 {
		t.Fatalf("difference: got %d pos and %d neg loops, want 1 and 1", len(res.Pos), len(res.Neg))
	}
	diff(t, CW, res.Neg[0].Orientation())
	approx(t, 64, areaOf(t, res), 1e-9)

	res, err = inner.Difference(outer, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 0 || len(res.Neg) != 0 {
		t.Errorf("difference: got %d pos and %d neg loops, want none", len(res.Pos), len(res.Neg))
	}

	res, err = outer.SymmetricDifference(inner, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 1 || len(res.Neg) != 1 {
		t.Fatalf("symmetric difference: got %d pos and %d neg loops, want 1 and 1", len(res.Pos), len(res.Neg))
	}
	approx(t, 64, areaOf(t, res), 1e-9)
}

func TestBooleanDisjoint(t *testing.T) {
	a := square(0, 0, 2)
	b := square(5, 5, 2)

	res, err := a.Union(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 2 {
		t.Errorf("union: got %d pos loops, want 2", len(res.Pos))
	}

	res, err = a.Intersect(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 0 || len(res.Neg) != 0 {
		t.Errorf("intersect: got %d pos and %d neg loops, want none", len(res.Pos), len(res.Neg))
	}

	res, err = a.Difference(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pos) != 1 {
		t.Errorf("difference: got %d pos loops, want 1", len(res.Pos))
	}
	approx(t, 4, areaOf(t, res), 1e-9)
}

func TestBooleanSelfIsIdentity(t *testing.T) {
	a := square(0, 0, 2)
	res, err := a.Union(a.Clone(), DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, 4, areaOf(t, res), 1e-9)

	res, err = a.Intersect(a.Clone(), DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, 4, areaOf(t, res), 1e-9)
}

func TestBooleanOrientationIndependence(t *testing.T) {
	// Operands are regions regardless of stored orientation.
	a := square(0, 0, 2)
	b := square(1, 0, 2)
	b.Reverse()
	res, err := a.Union(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, 6, areaOf(t, res), 1e-9)
}

func TestBooleanCircleSquare(t *testing.T) {
	// A circle centered on a square corner: a quarter of it lies inside.
	a := square(0, 0, 10)
	b := circle(0, 0, 2)
	res, err := a.Difference(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, 100-3.14159265358979, areaOf(t, res), 1e-4)

	res, err = a.Intersect(b, DefaultBooleanOpts)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, 3.14159265358979, areaOf(t, res), 1e-4)
}

func TestBooleanDegenerateOperands(t *testing.T) {
	open := NewPolyline([]Vertex{V(0, 0, 0), V(1, 0, 0)}, false)
	if _, err := square(0, 0, 1).Union(open, DefaultBooleanOpts); !errors.Is(err, ErrDegenerateInput) {
		t.Errorf("got %v, want ErrDegenerateInput", err)
	}
	if _, err := open.Union(square(0, 0, 1), DefaultBooleanOpts); !errors.Is(err, ErrDegenerateInput) {
		t.Errorf("got %v, want ErrDegenerateInput", err)
	}
}

func TestContains(t *testing.T) {
	big := square(0, 0, 10)
	small := square(2, 2, 6)
	far := square(20, 20, 2)
	overlapping := square(5, 5, 10)

	diff(t, Pline2InsidePline1, big.Contains(small, DefaultEps))
	diff(t, Pline1InsidePline2, small.Contains(big, DefaultEps))
	diff(t, Disjoint, big.Contains(far, DefaultEps))
	diff(t, Intersected, big.Contains(overlapping, DefaultEps))

	open := NewPolyline([]Vertex{V(0, 0, 0), V(1, 0, 0)}, false)
	diff(t, ContainmentInvalid, big.Contains(open, DefaultEps))
}
