package clipband

// ring is a circular view over a path's vertices. Neighbor access wraps by
// modular index, so the closed polygon can be walked as if it had no
// boundary. The view borrows the vertex slice; it is only valid for the
// duration of one computation.
type ring struct {
	verts []Vertex
}

func newRing(verts []Vertex) ring {
	return ring{verts: verts}
}

func (r ring) len() int {
	return len(r.verts)
}

func (r ring) at(i int) Vertex {
	return r.verts[i]
}

func (r ring) prev(i int) int {
	return (i - 1 + len(r.verts)) % len(r.verts)
}

func (r ring) next(i int) int {
	return (i + 1) % len(r.verts)
}

// prevDistinct walks backward from i past zero-length edges and returns the
// nearest vertex with a coordinate different from verts[i]. ok is false
// when every other vertex is coincident with verts[i].
func (r ring) prevDistinct(i int) (Vertex, bool) {
	v := r.verts[i]
	for j := r.prev(i); j != i; j = r.prev(j) {
		if r.verts[j].X != v.X || r.verts[j].Y != v.Y {
			return r.verts[j], true
		}
	}
	return Vertex{}, false
}

// nextDistinct is the forward counterpart of prevDistinct.
func (r ring) nextDistinct(i int) (Vertex, bool) {
	v := r.verts[i]
	for j := r.next(i); j != i; j = r.next(j) {
		if r.verts[j].X != v.X || r.verts[j].Y != v.Y {
			return r.verts[j], true
		}
	}
	return Vertex{}, false
}

// distinct counts vertices after collapsing runs of coincident points,
// including the wrap between last and first.
func (r ring) distinct() int {
	n := len(r.verts)
	if n == 0 {
		return 0
	}
	count := 0
	for i := 0; i < n; i++ {
		p := r.verts[r.prev(i)]
		v := r.verts[i]
		if v.X != p.X || v.Y != p.Y {
			count++
		}
	}
	if count == 0 {
		// All vertices coincide on a single coordinate.
		return 1
	}
	return count
}
