package clipband

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func validConfig() GradientConfig {
	return GradientConfig{
		Thickness: 12.5,
		Position:  PositionMiddle,
		StepSize:  5,
		Stops: []ColorStop{
			{Channel: 1, From: RGB{R: 255}, To: RGB{B: 255}},
			{Channel: 3, From: RGB{}, To: RGB{R: 255, G: 255, B: 255}},
		},
	}
}

func TestGradientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GradientConfig)
		wantErr bool
	}{
		{"Valid", func(c *GradientConfig) {}, false},
		{"ZeroThickness", func(c *GradientConfig) { c.Thickness = 0 }, false},
		{"HalfUnit", func(c *GradientConfig) { c.Thickness = 0.5 }, false},
		{"NegativeThickness", func(c *GradientConfig) { c.Thickness = -1 }, true},
		{"QuarterUnit", func(c *GradientConfig) { c.Thickness = 1.25 }, true},
		{"BadPosition", func(c *GradientConfig) { c.Position = "above" }, true},
		{"EmptyPosition", func(c *GradientConfig) { c.Position = "" }, true},
		{"StepLow", func(c *GradientConfig) { c.StepSize = 0 }, true},
		{"StepHigh", func(c *GradientConfig) { c.StepSize = 21 }, true},
		{"StepMax", func(c *GradientConfig) { c.StepSize = 20 }, false},
		{"NoStops", func(c *GradientConfig) { c.Stops = nil }, false},
		{"ChannelLow", func(c *GradientConfig) { c.Stops[0].Channel = 0 }, true},
		{"ChannelHigh", func(c *GradientConfig) { c.Stops[0].Channel = 5 }, true},
		{"DuplicateChannel", func(c *GradientConfig) { c.Stops[1].Channel = 1 }, true},
		{"TooManyStops", func(c *GradientConfig) {
			c.Stops = append(c.Stops,
				ColorStop{Channel: 2}, ColorStop{Channel: 4}, ColorStop{Channel: 2})
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestColorStop_Active(t *testing.T) {
	if (ColorStop{Channel: 1, From: RGB{R: 1}, To: RGB{R: 1}}).Active() {
		t.Error("equal colors must be inactive")
	}
	if !(ColorStop{Channel: 1, From: RGB{R: 1}, To: RGB{R: 2}}).Active() {
		t.Error("differing colors must be active")
	}
}

func TestGradientConfig_YAML(t *testing.T) {
	in := `
thickness: 20
position: outside
step: 10
stops:
  - {channel: 1, from: red, to: "#0000ff"}
  - {channel: 3, from: "&HFFFFFF&", to: black}
`
	var cfg GradientConfig
	if err := yaml.Unmarshal([]byte(in), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Stops[0].From != (RGB{R: 255}) || cfg.Stops[0].To != (RGB{B: 255}) {
		t.Errorf("stop 0 colors: %+v", cfg.Stops[0])
	}
	if cfg.Stops[1].From != (RGB{R: 255, G: 255, B: 255}) || cfg.Stops[1].To != (RGB{}) {
		t.Errorf("stop 1 colors: %+v", cfg.Stops[1])
	}

	t.Run("BadColor", func(t *testing.T) {
		bad := "stops:\n  - {channel: 1, from: nonsense, to: red}\n"
		var c GradientConfig
		if err := yaml.Unmarshal([]byte(bad), &c); err == nil {
			t.Error("expected unmarshal error for bad color")
		}
	})
}
