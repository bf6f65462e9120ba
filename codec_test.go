package clipband

import (
	"testing"
)

func TestParseClip_Basic(t *testing.T) {
	p := ParseClip("m 0 0 l 100 0 100 50 0 50")
	if p.Empty() {
		t.Fatal("expected non-empty path")
	}
	if p.Scale != 1 {
		t.Errorf("expected default scale 1, got %d", p.Scale)
	}
	want := []Vertex{
		{ClassMove, 0, 0},
		{ClassLine, 100, 0},
		{ClassLine, 100, 50},
		{ClassLine, 0, 50},
	}
	if len(p.Verts) != len(want) {
		t.Fatalf("expected %d vertices, got %d", len(want), len(p.Verts))
	}
	for i, v := range p.Verts {
		if v != want[i] {
			t.Errorf("vertex %d: got %+v, want %+v", i, v, want[i])
		}
	}
}

func TestParseClip_ScalePrefix(t *testing.T) {
	p := ParseClip("2,m 0 0 l 10 0 10 10 0 10")
	if p.Empty() {
		t.Fatal("expected non-empty path")
	}
	if p.Scale != 2 {
		t.Errorf("expected scale 2, got %d", p.Scale)
	}
	if len(p.Verts) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(p.Verts))
	}
}

func TestParseClip_RectShorthand(t *testing.T) {
	p := ParseClip("0,0,100,50")
	want := "m 0 0 l 100 0 100 50 0 50"
	if got := p.String(); got != want {
		t.Errorf("rect shorthand: got %q, want %q", got, want)
	}
}

func TestParseClip_NegativeCoords(t *testing.T) {
	p := ParseClip("m -5 -10 l 5 -10 5 10 -5 10")
	if p.Empty() {
		t.Fatal("expected non-empty path")
	}
	if p.Verts[0].X != -5 || p.Verts[0].Y != -10 {
		t.Errorf("expected (-5, -10), got (%g, %g)", p.Verts[0].X, p.Verts[0].Y)
	}
}

func TestParseClip_CurveTag(t *testing.T) {
	p := ParseClip("m 0 0 b 10 0 20 10 30 10 l 0 10")
	if p.Empty() {
		t.Fatal("expected non-empty path")
	}
	classes := []VertexClass{ClassMove, ClassCurve, ClassCurve, ClassCurve, ClassLine}
	for i, c := range classes {
		if p.Verts[i].Class != c {
			t.Errorf("vertex %d: got class %v, want %v", i, p.Verts[i].Class, c)
		}
	}
}

func TestParseClip_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"Whitespace", "   "},
		{"NoClass", "0 0 10 0"},
		{"OddCoordinate", "m 0 0 l 10"},
		{"NonInteger", "m 0 0 l ten 5"},
		{"FloatCoordinate", "m 0.5 0 l 10 0"},
		{"BadScale", "5,m 0 0 l 10 0 10 10"},
		{"ZeroScale", "0,m 0 0 l 10 0 10 10"},
		{"ThreeNumbers", "0,0,100"},
		{"RectNonInteger", "0,0,abc,50"},
		{"OnlyClassLetters", "m l b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := ParseClip(tt.text); !p.Empty() {
				t.Errorf("expected empty path for %q, got %d vertices", tt.text, len(p.Verts))
			}
		})
	}
}

func TestPathString_RunLength(t *testing.T) {
	p := &Path{
		Verts: []Vertex{
			{ClassMove, 0, 0},
			{ClassLine, 10, 0},
			{ClassLine, 10, 10},
			{ClassMove, 20, 20},
			{ClassLine, 30, 20},
		},
		Scale: 1,
	}
	want := "m 0 0 l 10 0 10 10 m 20 20 l 30 20"
	if got := p.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPathString_ScalePrefix(t *testing.T) {
	p := ParseClip("3,m 0 0 l 10 0 10 10 0 10")
	want := "3,m 0 0 l 10 0 10 10 0 10"
	if got := p.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseClip_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Rect", "m 0 0 l 100 0 100 50 0 50"},
		{"Scaled", "2,m 0 0 l 10 0 10 10 0 10"},
		{"Curves", "m 0 0 b 10 0 20 10 30 10 l 0 10"},
		{"Negative", "m -5 -10 l 5 -10 5 10 -5 10"},
		{"MultiSub", "m 0 0 l 10 0 10 10 m 20 20 l 30 20 30 30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseClip(tt.text)
			if p.Empty() {
				t.Fatalf("parse failed for %q", tt.text)
			}
			q := ParseClip(p.String())
			if q.Empty() {
				t.Fatalf("re-parse failed for %q", p.String())
			}
			if q.Scale != p.Scale {
				t.Errorf("scale changed: %d -> %d", p.Scale, q.Scale)
			}
			if len(q.Verts) != len(p.Verts) {
				t.Fatalf("vertex count changed: %d -> %d", len(p.Verts), len(q.Verts))
			}
			for i := range p.Verts {
				if p.Verts[i] != q.Verts[i] {
					t.Errorf("vertex %d changed: %+v -> %+v", i, p.Verts[i], q.Verts[i])
				}
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		decimals int
		want     float64
	}{
		{"HalfUp", 2.5, 0, 3},
		{"HalfUpNegative", -2.5, 0, -2},
		{"Down", 2.4, 0, 2},
		{"Up", 2.6, 0, 3},
		{"OneDecimal", 1.25, 1, 1.3},
		{"NegativeDown", -2.6, 0, -3},
		{"Exact", 7, 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundTo(tt.v, tt.decimals); got != tt.want {
				t.Errorf("RoundTo(%g, %d) = %g, want %g", tt.v, tt.decimals, got, tt.want)
			}
		})
	}
}
