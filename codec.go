package clipband

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseClip parses a vector clip shape from its text form.
//
// The accepted grammar is an optional leading scale exponent (1-4) followed
// by a comma, then one or more class groups:
//
//	[<scale>,] (m|l|b) (<int> <int>)+ ...
//
// A bare 4-number rectangle shorthand "x1,y1,x2,y2" is accepted and
// converted to the equivalent 4-vertex Move/Line path.
//
// Malformed input yields an empty Path: callers must treat an empty result
// as "no usable shape". Parsing never panics and never returns nil.
func ParseClip(text string) *Path {
	scale := 1
	body := strings.TrimSpace(text)

	if parts := strings.Split(body, ","); len(parts) > 1 {
		switch len(parts) {
		case 2:
			n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
			if err != nil || n < 1 || n > 4 {
				return rejectClip(text, "bad scale exponent")
			}
			scale = n
			body = strings.TrimSpace(parts[1])
		case 4:
			r, ok := parseRectShorthand(parts)
			if !ok {
				return rejectClip(text, "bad rectangle shorthand")
			}
			return r
		default:
			return rejectClip(text, "unexpected comma count")
		}
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return rejectClip(text, "no vertices")
	}

	verts := make([]Vertex, 0, len(fields)/2)
	var class VertexClass
	seenClass := false
	for i := 0; i < len(fields); {
		if c, ok := classFromLetter(fields[i]); ok {
			class = c
			seenClass = true
			i++
			continue
		}
		if !seenClass || i+1 >= len(fields) {
			return rejectClip(text, "stray coordinate")
		}
		x, err1 := strconv.Atoi(fields[i])
		y, err2 := strconv.Atoi(fields[i+1])
		if err1 != nil || err2 != nil {
			return rejectClip(text, "non-integer coordinate")
		}
		verts = append(verts, Vertex{Class: class, X: float64(x), Y: float64(y)})
		i += 2
	}
	if len(verts) == 0 {
		return rejectClip(text, "no coordinate pairs")
	}
	return &Path{Verts: verts, Scale: scale}
}

// parseRectShorthand converts the "x1,y1,x2,y2" clip form into a 4-vertex
// Move/Line path at scale 1.
func parseRectShorthand(parts []string) (*Path, bool) {
	var n [4]int
	for i, s := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, false
		}
		n[i] = v
	}
	x1, y1, x2, y2 := float64(n[0]), float64(n[1]), float64(n[2]), float64(n[3])
	return &Path{
		Verts: []Vertex{
			{Class: ClassMove, X: x1, Y: y1},
			{Class: ClassLine, X: x2, Y: y1},
			{Class: ClassLine, X: x2, Y: y2},
			{Class: ClassLine, X: x1, Y: y2},
		},
		Scale: 1,
	}, true
}

// rejectClip logs a parse reject at debug level and returns an empty path.
func rejectClip(text, reason string) *Path {
	Logger().Debug("clip parse rejected", "reason", reason, "text", text)
	return &Path{Scale: 1}
}

// String serializes the path back to clip text. Class letters are
// run-length compressed: a letter is emitted only when it differs from the
// previous vertex's class. Coordinates are rounded half-up to integers.
// A scale exponent prefix is emitted only when Scale > 1.
func (p *Path) String() string {
	if p.Empty() {
		return ""
	}
	var b strings.Builder
	if p.Scale > 1 {
		fmt.Fprintf(&b, "%d,", p.Scale)
	}
	last := VertexClass(-1)
	for i, v := range p.Verts {
		if i > 0 {
			b.WriteByte(' ')
		}
		if v.Class != last {
			b.WriteString(v.Class.Letter())
			b.WriteByte(' ')
			last = v.Class
		}
		b.WriteString(strconv.Itoa(int(RoundTo(v.X, 0))))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(int(RoundTo(v.Y, 0))))
	}
	return b.String()
}

// RoundTo rounds v half-up to the given number of decimal places.
// Half-up means 0.5 always rounds toward positive infinity, matching the
// fixed-point coordinate domain of clip text.
func RoundTo(v float64, decimals int) float64 {
	m := math.Pow(10, float64(decimals))
	return math.Floor(v*m+0.5) / m
}
