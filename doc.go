// Package clipband expands closed vector clip shapes into concentric
// colored rings.
//
// # Overview
//
// clipband offsets a closed polygonal outline outward or inward by a
// variable radius and stacks the resulting contours into bands, each with
// per-channel interpolated colors. Rendering the bands in order produces a
// smooth color gradient that follows an arbitrary, non-axis-aligned
// boundary shape.
//
// # Quick Start
//
//	import "github.com/gogpu/clipband"
//
//	shape := clipband.ParseClip("m 0 0 l 100 0 100 50 0 50")
//
//	bands, err := clipband.GenerateBands(shape, clipband.GradientConfig{
//		Thickness: 20,
//		Position:  clipband.PositionOutside,
//		StepSize:  10,
//		Stops: []clipband.ColorStop{
//			{Channel: 1, From: clipband.RGB{R: 255}, To: clipband.RGB{B: 255}},
//		},
//	})
//	if err != nil {
//		// shape unusable or configuration invalid
//	}
//	for _, b := range bands {
//		fmt.Println(b.ClipPath(), b.Colors)
//	}
//
// # Architecture
//
// The package is a single flat API around a small set of pure transforms:
//   - Codec: ParseClip / Path.String for the clip text grammar
//   - Geometry: Grow (miter offset with crossover cleanup), Reverse, Winding
//   - Bands: GenerateBands drives repeated offsets plus color interpolation
//
// # Coordinate System
//
// Clip coordinates: origin at top-left, X increases right, Y increases
// down. Winding +1 is counter-clockwise in this convention. Coordinates are
// integers in the shape's native scale; the scale exponent affects output
// formatting only.
//
// # Concurrency
//
// All transforms are pure and synchronous with no shared mutable state, so
// distinct shapes may be processed from multiple goroutines freely. The
// only package-level state is the logger, which is stored atomically.
package clipband
