package clipband

import "math"

// Winding returns the winding sign of a closed path: +1 when the vertices
// run counter-clockwise in the clip coordinate convention, -1 when they run
// clockwise. The sign decides which bisector branch points outward during
// offsetting.
//
// Runs of coincident vertices are collapsed first; the turning angle is then
// summed over the remaining corners, each turn normalized into
// (-180deg, 180deg] with an exact reversal (180deg) counted as no turn.
// A degenerate path whose total turning is zero reports +1.
func Winding(p *Path) int {
	if p.Empty() {
		return 1
	}
	verts := collapseCoincident(p.Verts)
	if len(verts) < 3 {
		return 1
	}
	r := newRing(verts)
	total := 0.0
	for i := 0; i < r.len(); i++ {
		v := r.at(i)
		pv := r.at(r.prev(i))
		nv := r.at(r.next(i))
		in := degrees(math.Atan2(v.Y-pv.Y, v.X-pv.X))
		out := degrees(math.Atan2(nv.Y-v.Y, nv.X-v.X))
		total += turnAngle(out - in)
	}
	if total < 0 {
		return -1
	}
	return 1
}

// collapseCoincident drops vertices that coincide with their predecessor,
// including the wrap from last back to first.
func collapseCoincident(verts []Vertex) []Vertex {
	out := make([]Vertex, 0, len(verts))
	for _, v := range verts {
		if len(out) > 0 {
			last := out[len(out)-1]
			if v.X == last.X && v.Y == last.Y {
				continue
			}
		}
		out = append(out, v)
	}
	for len(out) > 1 {
		first, last := out[0], out[len(out)-1]
		if first.X != last.X || first.Y != last.Y {
			break
		}
		out = out[:len(out)-1]
	}
	return out
}

// turnAngle normalizes a raw angle difference into (-180, 180], treating an
// exact 180deg reversal as zero turn to avoid sign ambiguity.
func turnAngle(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	if d == 180 {
		return 0
	}
	return d
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
