package clipband

import "errors"

// Errors returned by path operations.
var (
	// ErrEmptyPath indicates a nil or vertex-less path.
	ErrEmptyPath = errors.New("clipband: empty path")

	// ErrUnusableShape indicates a path that cannot be offset: fewer than
	// three distinct vertices, or no drawable (non-Move) vertex at all.
	ErrUnusableShape = errors.New("clipband: shape unusable")
)

// VertexClass tags how a vertex connects to the previous one.
type VertexClass int

const (
	// ClassMove starts a new position without drawing ("m" on the wire).
	ClassMove VertexClass = iota
	// ClassLine draws a straight edge from the previous vertex ("l").
	ClassLine
	// ClassCurve marks a cubic control/end point ("b"). The offset engine
	// carries it through as an opaque tag; curves are not offset specially.
	ClassCurve
)

// Letter returns the wire letter for the class.
func (c VertexClass) Letter() string {
	switch c {
	case ClassMove:
		return "m"
	case ClassLine:
		return "l"
	case ClassCurve:
		return "b"
	}
	return "?"
}

// classFromLetter maps a wire letter to its class.
func classFromLetter(s string) (VertexClass, bool) {
	switch s {
	case "m":
		return ClassMove, true
	case "l":
		return ClassLine, true
	case "b":
		return ClassCurve, true
	}
	return 0, false
}

// Vertex is one point of a clip shape. Coordinates are integral values in
// the path's native scale; they are held as float64 for the offset math and
// rounded back to integers on serialization.
type Vertex struct {
	Class VertexClass
	X, Y  float64
}

// Path is a closed polygonal outline: the last vertex implicitly connects
// back to the first. Scale is the clip scale exponent (>= 1); it affects
// output formatting only, never geometry.
type Path struct {
	Verts []Vertex
	Scale int
}

// Empty reports whether the path has no vertices.
func (p *Path) Empty() bool {
	return p == nil || len(p.Verts) == 0
}

// Len returns the number of vertices.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Verts)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	verts := make([]Vertex, len(p.Verts))
	copy(verts, p.Verts)
	return &Path{Verts: verts, Scale: p.Scale}
}
