// Command clipband expands a vector clip shape into gradient bands.
//
// The job file is YAML:
//
//	clip: m 0 0 l 100 0 100 50 0 50
//	gradient:
//	  thickness: 20
//	  position: outside
//	  step: 10
//	  stops:
//	    - {channel: 1, from: red, to: blue}
//
// Output is one line per band, innermost first: the band's combined clip
// path, a tab, then channel=#rrggbb pairs.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/clipband"
)

// job is the YAML job file layout.
type job struct {
	Clip     string                  `yaml:"clip"`
	Gradient clipband.GradientConfig `yaml:"gradient"`
}

func main() {
	var (
		jobPath = flag.String("job", "", "job file (YAML), required")
		output  = flag.String("o", "", "output file (default stdout)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		clipband.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("Failed to read job: %v", err)
	}
	var j job
	if err := yaml.Unmarshal(data, &j); err != nil {
		log.Fatalf("Failed to parse job: %v", err)
	}

	shape := clipband.ParseClip(j.Clip)
	if shape.Empty() {
		log.Fatalf("Job clip %q is not a usable shape", j.Clip)
	}

	bands, err := clipband.GenerateBands(shape, j.Gradient)
	if err != nil {
		log.Fatalf("Failed to generate bands: %v", err)
	}

	var b strings.Builder
	for _, band := range bands {
		b.WriteString(band.ClipPath().String())
		for _, c := range band.Colors {
			fmt.Fprintf(&b, "\t%d=%s", c.Channel, c.Color.Hex())
		}
		b.WriteByte('\n')
	}

	if *output == "" {
		fmt.Print(b.String())
		return
	}
	if err := os.WriteFile(*output, []byte(b.String()), 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Wrote %d bands to %s", len(bands), *output)
}
