package clipband

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Position selects where the gradient sits relative to the shape boundary.
type Position string

const (
	// PositionOutside grows the gradient entirely outward from the boundary.
	PositionOutside Position = "outside"
	// PositionMiddle centers the gradient on the boundary.
	PositionMiddle Position = "middle"
	// PositionInside grows the gradient entirely inward.
	PositionInside Position = "inside"
)

// ColorStop pairs a start and end color for one color channel. Channel 1 is
// the fill, 2 the secondary fill, 3 the border, 4 the shadow. A stop whose
// colors are equal is inactive and produces no band color.
type ColorStop struct {
	Channel int `yaml:"channel"`
	From    RGB `yaml:"from"`
	To      RGB `yaml:"to"`
}

// Active reports whether the stop contributes to the gradient.
func (s ColorStop) Active() bool {
	return s.From != s.To
}

// GradientConfig carries every parameter the band generator needs. It is a
// plain caller-supplied value: nothing in this package caches configuration
// between invocations.
type GradientConfig struct {
	// Thickness is the total gradient depth in native units. Non-negative,
	// in half-unit granularity.
	Thickness float64 `yaml:"thickness"`

	// Position places the gradient outside, astride, or inside the boundary.
	Position Position `yaml:"position"`

	// StepSize is the per-band offset increment in native units, 1 to 20.
	StepSize int `yaml:"step"`

	// Stops holds up to four color stops, one per channel.
	Stops []ColorStop `yaml:"stops"`

	// Inverse marks an inverse clip: the gradient fills everything outside
	// the shape, so bands run outside-in with mirrored colors.
	Inverse bool `yaml:"inverse,omitempty"`
}

// Validate checks the configuration against its documented ranges.
func (c GradientConfig) Validate() error {
	if c.Thickness < 0 {
		return fmt.Errorf("clipband: thickness %g must be non-negative", c.Thickness)
	}
	if r := math.Mod(c.Thickness*2, 1); r != 0 {
		return fmt.Errorf("clipband: thickness %g must be a multiple of 0.5", c.Thickness)
	}
	switch c.Position {
	case PositionOutside, PositionMiddle, PositionInside:
	default:
		return fmt.Errorf("clipband: unknown position %q", c.Position)
	}
	if c.StepSize < 1 || c.StepSize > 20 {
		return fmt.Errorf("clipband: step size %d out of range [1, 20]", c.StepSize)
	}
	if len(c.Stops) > 4 {
		return fmt.Errorf("clipband: %d color stops exceed the 4-channel limit", len(c.Stops))
	}
	seen := [5]bool{}
	for _, s := range c.Stops {
		if s.Channel < 1 || s.Channel > 4 {
			return fmt.Errorf("clipband: color stop channel %d out of range [1, 4]", s.Channel)
		}
		if seen[s.Channel] {
			return fmt.Errorf("clipband: duplicate color stop for channel %d", s.Channel)
		}
		seen[s.Channel] = true
	}
	return nil
}

// activeStops filters out inactive stops.
func (c GradientConfig) activeStops() []ColorStop {
	out := make([]ColorStop, 0, len(c.Stops))
	for _, s := range c.Stops {
		if s.Active() {
			out = append(out, s)
		}
	}
	return out
}

// UnmarshalYAML accepts any ParseColor form for an RGB value.
func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML emits the #rrggbb form.
func (c RGB) MarshalYAML() (any, error) {
	return c.Hex(), nil
}
