package contour

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Polyline is an ordered sequence of vertices tracing a curve of line and arc
// segments. If the polyline is closed, an implicit final segment connects the
// last vertex back to the first using the last vertex's bulge.
//
// A Polyline owns its vertex storage outright; [Polyline.Clone] produces a
// fully independent copy. Query methods are read-only, transform methods
// mutate in place.
type Polyline struct {
	vertices []Vertex
	closed   bool
}

// NewPolyline returns a polyline over a copy of the given vertices.
//
// Bulge values are not validated; see [Vertex.Validate] for opting into the
// strict half-turn-per-segment representation.
func NewPolyline(vertices []Vertex, closed bool) *Polyline {
	return &Polyline{
		vertices: slices.Clone(vertices),
		closed:   closed,
	}
}

// Clone returns a deep, fully independent copy of the polyline.
func (p *Polyline) Clone() *Polyline {
	return &Polyline{
		vertices: slices.Clone(p.vertices),
		closed:   p.closed,
	}
}

// Len returns the number of vertices.
func (p *Polyline) Len() int {
	return len(p.vertices)
}

// Closed reports whether the polyline has an implicit closing segment from
// the last vertex back to the first.
func (p *Polyline) Closed() bool {
	return p.closed
}

// SetClosed sets whether the polyline is closed.
func (p *Polyline) SetClosed(closed bool) {
	p.closed = closed
}

// At returns the vertex at index i.
func (p *Polyline) At(i int) (Vertex, error) {
	if i < 0 || i >= len(p.vertices) {
		return Vertex{}, fmt.Errorf("vertex index %d with %d vertices: %w", i, len(p.vertices), ErrOutOfRange)
	}
	return p.vertices[i], nil
}

// SetVertex replaces the vertex at index i.
func (p *Polyline) SetVertex(i int, v Vertex) error {
	if i < 0 || i >= len(p.vertices) {
		return fmt.Errorf("vertex index %d with %d vertices: %w", i, len(p.vertices), ErrOutOfRange)
	}
	p.vertices[i] = v
	return nil
}

// RemoveVertex removes the vertex at index i.
func (p *Polyline) RemoveVertex(i int) error {
	if i < 0 || i >= len(p.vertices) {
		return fmt.Errorf("vertex index %d with %d vertices: %w", i, len(p.vertices), ErrOutOfRange)
	}
	p.vertices = slices.Delete(p.vertices, i, i+1)
	return nil
}

// Append adds a vertex to the end of the polyline.
func (p *Polyline) Append(v Vertex) {
	p.vertices = append(p.vertices, v)
}

// Extend appends all of o's vertices to p. The closed flags of both polylines
// are unchanged.
func (p *Polyline) Extend(o *Polyline) {
	p.vertices = append(p.vertices, o.vertices...)
}

// Reserve grows the underlying storage for at least n additional vertices.
func (p *Polyline) Reserve(n int) {
	p.vertices = slices.Grow(p.vertices, n)
}

// Clear removes all vertices, keeping the closed flag.
func (p *Polyline) Clear() {
	p.vertices = p.vertices[:0]
}

// Vertices iterates over the vertices in geometric order.
func (p *Polyline) Vertices() iter.Seq2[int, Vertex] {
	return func(yield func(int, Vertex) bool) {
		for i, v := range p.vertices {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (p *Polyline) String() string {
	var sb strings.Builder
	sb.WriteString("Polyline(")
	for i, v := range p.vertices {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// segCount returns the number of segments: n−1 for an open polyline, n for a
// closed one, 0 below two vertices.
func (p *Polyline) segCount() int {
	n := len(p.vertices)
	if n < 2 {
		return 0
	}
	if p.closed {
		return n
	}
	return n - 1
}

// segAt materializes segment i, wrapping to vertex 0 for the closing segment.
func (p *Polyline) segAt(i int) seg {
	v2 := 0
	if i+1 < len(p.vertices) {
		v2 = i + 1
	}
	return seg{p.vertices[i], p.vertices[v2]}
}

// segments iterates over the polyline's segments.
func (p *Polyline) segments() iter.Seq2[int, seg] {
	return func(yield func(int, seg) bool) {
		for i := range p.segCount() {
			if !yield(i, p.segAt(i)) {
				return
			}
		}
	}
}
