package clipband

import "math"

// Grow offsets a closed path outward by radius (inward when radius is
// negative) and multiplies all coordinates by scale. Each vertex moves
// along the bisector of its two adjacent edges by a miter-adjusted
// distance, so edge-to-edge spacing stays constant around corners.
//
// A zero radius is a pure rescale: every vertex maps to (x*scale, y*scale)
// exactly, which callers use to normalize between coordinate scales.
//
// Offsetting a shape with sharp concave corners by a radius comparable to
// the local edge length can flip an edge's direction relative to the
// original; those crossovers are resolved by merging the offending vertices
// (see resolveCrossovers). Paths with fewer than three distinct vertices
// return ErrUnusableShape.
func Grow(p *Path, radius, scale float64) (*Path, error) {
	if p.Empty() {
		return nil, ErrEmptyPath
	}
	r := newRing(p.Verts)
	if r.distinct() < 3 {
		return nil, ErrUnusableShape
	}

	n := r.len()
	if radius == 0 {
		out := make([]Vertex, n)
		for i, v := range p.Verts {
			out[i] = Vertex{Class: v.Class, X: v.X * scale, Y: v.Y * scale}
		}
		return &Path{Verts: out, Scale: p.Scale}, nil
	}

	w := float64(Winding(p))
	offset := make([]Vertex, n)
	orig := make([]Vertex, n)
	for i := 0; i < n; i++ {
		v := r.at(i)
		pv, _ := r.prevDistinct(i)
		nv, _ := r.nextDistinct(i)

		theta1 := degrees(math.Atan2(v.Y-pv.Y, v.X-pv.X))
		theta2 := degrees(math.Atan2(nv.Y-v.Y, nv.X-v.X))
		dtheta := math.Mod(theta2-theta1, 360)
		if dtheta < 0 {
			dtheta += 360
		}

		beta := math.Mod(dtheta/2+90, 180)
		if w > 0 {
			// Flip to the opposite bisector branch so positive radius
			// points away from the interior for this winding.
			beta += 180
		}

		// Miter correction: scale the radius so the offset edge keeps
		// distance radius from the original edge. Near-reversal corners
		// would miter to infinity; clamp those to the plain radius.
		adj := radius
		if cosTerm := math.Cos(radians(w*90 - beta)); math.Abs(cosTerm) > miterEps {
			adj = radius / math.Abs(cosTerm)
		}

		dx := RoundTo(adj*math.Cos(radians(beta+theta1)), 0)
		dy := RoundTo(adj*math.Sin(radians(beta+theta1)), 0)
		offset[i] = Vertex{Class: v.Class, X: v.X*scale + scale*dx, Y: v.Y*scale + scale*dy}
		orig[i] = Vertex{Class: v.Class, X: v.X * scale, Y: v.Y * scale}
	}

	verts := resolveCrossovers(offset, orig)
	return &Path{Verts: verts, Scale: p.Scale}, nil
}

// miterEps is the cosine threshold below which a miter is considered
// degenerate (a near-180deg turn) and falls back to the plain radius.
const miterEps = 1e-8

// mergeBucket accumulates offset vertices that collapsed onto one point
// during crossover resolution. weight counts the original vertices absorbed
// so far; classes keeps every absorbed class tag in path order.
type mergeBucket struct {
	x, y    float64 // merged offset coordinate
	ox, oy  float64 // merged original coordinate, kept in lockstep
	weight  float64
	classes []VertexClass
}

// resolveCrossovers removes self-intersection artifacts introduced by
// offsetting. An offset edge whose delta-x or delta-y sign strictly opposes
// the corresponding original edge has crossed over; its two endpoints are
// merged into their multiplicity-weighted average and the merged point
// keeps the union of both class tags. Passes repeat, re-examining adjacent
// pairs with updated positions and weights, until no flip remains. Each
// surviving bucket then expands into one vertex per retained class tag, so
// the output still carries one class per drawing instruction.
func resolveCrossovers(offset, orig []Vertex) []Vertex {
	buckets := make([]mergeBucket, len(offset))
	for i, v := range offset {
		buckets[i] = mergeBucket{
			x: v.X, y: v.Y,
			ox: orig[i].X, oy: orig[i].Y,
			weight:  1,
			classes: []VertexClass{v.Class},
		}
	}

	for changed := true; changed && len(buckets) > 1; {
		changed = false
		for i := 0; i < len(buckets); i++ {
			j := (i - 1 + len(buckets)) % len(buckets)
			if i == j {
				break
			}
			if !edgeFlipped(buckets[j], buckets[i]) {
				continue
			}
			if i == 0 {
				// Wrap edge: fold the last bucket into the first so the
				// path keeps its leading Move vertex.
				buckets[0] = mergeBuckets(buckets[0], buckets[j])
				buckets = buckets[:j]
			} else {
				buckets[j] = mergeBuckets(buckets[j], buckets[i])
				buckets = append(buckets[:i], buckets[i+1:]...)
			}
			changed = true
			break
		}
	}

	out := make([]Vertex, 0, len(offset))
	for _, b := range buckets {
		for _, c := range b.classes {
			out = append(out, Vertex{Class: c, X: b.x, Y: b.y})
		}
	}
	return out
}

// edgeFlipped reports whether the offset edge a->b runs strictly opposite
// to the original edge in x or in y. A zero delta on either side is not a
// flip.
func edgeFlipped(a, b mergeBucket) bool {
	return (b.x-a.x)*(b.ox-a.ox) < 0 || (b.y-a.y)*(b.oy-a.oy) < 0
}

// mergeBuckets combines two buckets into one, averaging coordinates by
// multiplicity and concatenating class tags in path order.
func mergeBuckets(a, b mergeBucket) mergeBucket {
	w := a.weight + b.weight
	return mergeBucket{
		x:       (a.x*a.weight + b.x*b.weight) / w,
		y:       (a.y*a.weight + b.y*b.weight) / w,
		ox:      (a.ox*a.weight + b.ox*b.weight) / w,
		oy:      (a.oy*a.weight + b.oy*b.weight) / w,
		weight:  w,
		classes: append(append([]VertexClass{}, a.classes...), b.classes...),
	}
}
