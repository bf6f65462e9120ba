package clipband

// Reverse returns the path traversed backward. The first output vertex is
// always tagged Move; every following vertex takes the class of the vertex
// that preceded it in the reversed order, so the class sequence still
// describes the same edges walked in the opposite direction.
//
// A path whose last vertex is tagged Move cannot start the reversal there
// (the reversed first edge would have no drawing class); the start point is
// moved backward to the nearest non-Move vertex, which is equivalent for a
// closed shape. A path containing only Move vertices is unusable.
func Reverse(p *Path) (*Path, error) {
	if p.Empty() {
		return nil, ErrEmptyPath
	}
	n := len(p.Verts)

	start := -1
	for i := n - 1; i >= 0; i-- {
		if p.Verts[i].Class != ClassMove {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, ErrUnusableShape
	}

	// Walk backward cyclically from the start point.
	order := make([]Vertex, 0, n)
	for k := 0; k < n; k++ {
		order = append(order, p.Verts[(start-k+n)%n])
	}

	out := make([]Vertex, n)
	for k := range order {
		out[k] = order[k]
		if k == 0 {
			out[k].Class = ClassMove
		} else {
			out[k].Class = order[k-1].Class
		}
	}
	return &Path{Verts: out, Scale: p.Scale}, nil
}
