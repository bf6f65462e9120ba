package clipband

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is an ordered red/green/blue triple with 8-bit channels. The band
// color interpolation contract works on this type only; packed forms exist
// purely for boundary compatibility.
type RGB struct {
	R, G, B uint8
}

// Lerp linearly interpolates each channel independently. t is clamped to
// [0, 1]: 0 returns a, 1 returns b. Channel values round half-up to the
// nearest integer.
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(RoundTo(float64(x)+t*(float64(y)-float64(x)), 0))
	}
	return RGB{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B)}
}

// ParseColor parses a color from any of the boundary forms:
//
//	#rgb, #rrggbb, rrggbb  - hex, optionally #-prefixed
//	&HBBGGRR&              - override-tag form, blue/green/red byte order
//	red, skyblue, ...      - SVG 1.1 color names
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("clipband: empty color")
	}

	if (strings.HasPrefix(s, "&H") || strings.HasPrefix(s, "&h")) && strings.HasSuffix(s, "&") {
		hex := s[2 : len(s)-1]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("clipband: bad color %q: %w", s, err)
		}
		return RGB{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16)}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		if v, err := strconv.ParseUint(hex, 16, 16); err == nil {
			return RGB{
				R: uint8(v>>8) * 17,
				G: uint8(v>>4&0xf) * 17,
				B: uint8(v&0xf) * 17,
			}, nil
		}
	case 6:
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
		}
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	return RGB{}, fmt.Errorf("clipband: unrecognized color %q", s)
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ASS formats the color in override-tag byte order, &HBBGGRR&.
func (c RGB) ASS() string {
	return fmt.Sprintf("&H%02X%02X%02X&", c.B, c.G, c.R)
}
