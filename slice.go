package contour

import (
	"slices"
)

// sliceAt cuts p into open slices at the given points, keyed by segment
// index. Slice boundaries land exactly on the split points; points within
// eps of a segment endpoint snap to the existing vertex. A closed polyline
// with a single split point comes back as one open slice traversing the
// whole loop. With no split points the result is a clone of p.
func (p *Polyline) sliceAt(splits map[int][]Point, eps float64) []*Polyline {
	n := p.segCount()
	if n == 0 {
		return nil
	}
	var verts []Vertex
	var isNode []bool
	carry := false
	push := func(v Vertex, node bool) {
		verts = append(verts, v)
		isNode = append(isNode, node || carry)
		carry = false
	}
	for i, s := range p.segments() {
		pts := slices.Clone(splits[i])
		slices.SortFunc(pts, func(a, b Point) int {
			pa, pb := s.paramOf(a), s.paramOf(b)
			switch {
			case pa < pb:
				return -1
			case pa > pb:
				return 1
			default:
				return 0
			}
		})
		push(s.v1, false)
		cur := s
		for _, pt := range pts {
			switch {
			case pt.Coincident(cur.start(), eps):
				isNode[len(isNode)-1] = true
			case pt.Coincident(s.end(), eps):
				carry = true
			default:
				first, second := cur.split(pt)
				verts[len(verts)-1] = first.v1
				push(second.v1, true)
				cur = second
			}
		}
	}
	if p.closed {
		if carry {
			isNode[0] = true
		}
	} else {
		last := p.vertices[len(p.vertices)-1]
		push(V(last.X, last.Y, 0), true)
		isNode[0] = true
	}

	var nodes []int
	for i, b := range isNode {
		if b {
			nodes = append(nodes, i)
		}
	}
	m := len(verts)
	takeCyclic := func(from, to int) *Polyline {
		out := &Polyline{}
		for k := from; ; k = (k + 1) % m {
			out.Append(verts[k])
			if k == to {
				break
			}
		}
		out.vertices[len(out.vertices)-1].Bulge = 0
		return out
	}

	var res []*Polyline
	if p.closed {
		switch len(nodes) {
		case 0:
			return []*Polyline{p.Clone()}
		case 1:
			// One slice traversing the whole loop.
			out := &Polyline{}
			for k := range m {
				out.Append(verts[(nodes[0]+k)%m])
			}
			start := out.vertices[0]
			out.Append(V(start.X, start.Y, 0))
			res = append(res, out)
		default:
			for i, from := range nodes {
				to := nodes[(i+1)%len(nodes)]
				res = append(res, takeCyclic(from, to))
			}
		}
	} else {
		for i := 0; i+1 < len(nodes); i++ {
			out := &Polyline{}
			out.vertices = slices.Clone(verts[nodes[i] : nodes[i+1]+1])
			out.vertices[len(out.vertices)-1].Bulge = 0
			res = append(res, out)
		}
	}

	kept := res[:0]
	for _, s := range res {
		if l, err := s.Length(); err == nil && l > eps {
			kept = append(kept, s)
		}
	}
	return kept
}

// stitchSlices joins open slices end to start wherever endpoints coincide
// within joinEps. When closeLoops is set, chains whose end meets their own
// start become closed polylines and chains that cannot be closed are
// discarded; otherwise every assembled chain is returned open.
func stitchSlices(in []*Polyline, joinEps float64, closeLoops bool) []*Polyline {
	used := make([]bool, len(in))
	var res []*Polyline
	for i := range in {
		if used[i] {
			continue
		}
		used[i] = true
		chain := in[i].Clone()
		for {
			end := chain.vertices[len(chain.vertices)-1].Pos()
			if closeLoops && len(chain.vertices) > 2 && end.Coincident(chain.vertices[0].Pos(), joinEps) {
				chain.vertices = chain.vertices[:len(chain.vertices)-1]
				chain.closed = true
				res = append(res, chain)
				chain = nil
				break
			}
			next := -1
			for j := range in {
				if !used[j] && in[j].vertices[0].Pos().Coincident(end, joinEps) {
					next = j
					break
				}
			}
			if next == -1 {
				break
			}
			used[next] = true
			// The slice's first vertex replaces the chain's terminal vertex;
			// positions coincide and the slice's bulge describes the segment
			// ahead.
			chain.vertices = chain.vertices[:len(chain.vertices)-1]
			chain.vertices = append(chain.vertices, in[next].vertices...)
		}
		if chain != nil && !closeLoops {
			res = append(res, chain)
		}
	}
	return res
}
