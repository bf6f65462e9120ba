package clipband

import (
	"fmt"
	"math"
)

// BandColor is one channel's interpolated color for a band.
type BandColor struct {
	Channel int
	Color   RGB
}

// Band is one ring of the gradient: the region between Outer and the
// previous ring. Inner is the previous boundary pulled one unit back toward
// the band's inside and reversed, so Outer and Inner concatenate into a
// single clip shape that excludes the prior ring; it is nil for the first
// band, which fills its whole boundary.
type Band struct {
	Outer  *Path
	Inner  *Path
	Colors []BandColor
}

// ClipPath returns the band's combined clip shape: the outer boundary
// followed by the reversed inner boundary.
func (b Band) ClipPath() *Path {
	if b.Inner.Empty() {
		return b.Outer
	}
	verts := make([]Vertex, 0, len(b.Outer.Verts)+len(b.Inner.Verts))
	verts = append(verts, b.Outer.Verts...)
	verts = append(verts, b.Inner.Verts...)
	return &Path{Verts: verts, Scale: b.Outer.Scale}
}

// GenerateBands builds the gradient's ring stack for a shape. Boundaries
// are offsets of p at linearly stepped radii spanning cfg.Thickness; the
// position mode biases the whole span outward, astride, or inward. Each
// band carries one interpolated color per active stop, sampled at the
// band's fraction of the span, so rendering the bands in order produces a
// smooth gradient following the shape.
//
// ceil(Thickness/StepSize)+1 bands are returned, innermost first. For an
// inverse clip the boundaries run outside-in and the color factors mirror.
// An empty or unusable shape and invalid configuration fail without partial
// output.
func GenerateBands(p *Path, cfg GradientConfig) ([]Band, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p.Empty() {
		return nil, ErrEmptyPath
	}

	g := cfg.Thickness
	var goffset float64
	switch cfg.Position {
	case PositionOutside:
		goffset = 0
	case PositionMiddle:
		goffset = g / 2
	case PositionInside:
		goffset = g
	}

	base := -goffset
	dir := 1.0
	if cfg.Inverse {
		// An inverse clip fills everything outside the shape, so the stack
		// starts one unit shy of the far edge and steps back in.
		base = g - goffset - 1
		dir = -1
	}

	steps := int(math.Ceil(g / float64(cfg.StepSize)))
	active := cfg.activeStops()
	bands := make([]Band, 0, steps+1)

	prevOffset := 0.0
	for j := 0; j <= steps; j++ {
		off := base + dir*math.Min(float64(j)*float64(cfg.StepSize), g)
		outer, err := Grow(p, off, 1)
		if err != nil {
			return nil, fmt.Errorf("clipband: band %d boundary: %w", j, err)
		}

		var inner *Path
		if j > 0 {
			shrunk, err := Grow(p, prevOffset-dir, 1)
			if err != nil {
				return nil, fmt.Errorf("clipband: band %d inner boundary: %w", j, err)
			}
			inner, err = Reverse(shrunk)
			if err != nil {
				return nil, fmt.Errorf("clipband: band %d inner boundary: %w", j, err)
			}
		}

		factor := 0.0
		if steps > 0 {
			factor = float64(j) / float64(steps)
		}
		if cfg.Inverse {
			factor = 1 - factor
		}
		colors := make([]BandColor, 0, len(active))
		for _, s := range active {
			colors = append(colors, BandColor{Channel: s.Channel, Color: Lerp(s.From, s.To, factor)})
		}

		bands = append(bands, Band{Outer: outer, Inner: inner, Colors: colors})
		prevOffset = off
	}

	Logger().Debug("bands generated",
		"bands", len(bands), "thickness", g, "position", cfg.Position, "inverse", cfg.Inverse)
	return bands, nil
}
