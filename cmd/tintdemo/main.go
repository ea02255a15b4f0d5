// Command tintdemo demonstrates the tint color library.
//
// It builds a palette, either a hue sweep or a YAML file given with -config,
// prints every color in both models, and renders the palette as a row of
// swatches to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/recording"
	_ "github.com/gogpu/tint/recording/backends/raster"
	"github.com/gogpu/tint/view"
)

func main() {
	var (
		config  = flag.String("config", "", "YAML palette file (default: hue sweep)")
		output  = flag.String("output", "swatches.png", "output file")
		size    = flag.Float64("size", 64, "swatch size in pixels")
		steps   = flag.Int("steps", 12, "number of swatches in the hue sweep")
		backend = flag.String("backend", "raster", "recording backend")
		dump    = flag.Bool("dump", false, "dump recorded commands")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	tint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	palette := huePalette(*steps)
	if *config != "" {
		cfg, err := loadConfig(*config)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if palette, err = cfg.Palette(); err != nil {
			log.Fatalf("Invalid config %s: %v", *config, err)
		}
	}
	if len(palette) == 0 {
		log.Fatalf("Palette is empty")
	}

	for i, c := range palette {
		fmt.Printf("%3d  %-44s %s\n", i, c.ToRGBA(), c.ToHSVA())
	}

	rec := view.Record(view.Row(0, 0, *size, *size/8, palette...))
	if *dump {
		fmt.Print(dumpConfig().Sdump(rec.Commands()))
	}

	b, err := recording.NewBackend(*backend)
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}
	if err := rec.Playback(b); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	fb, ok := b.(recording.FileBackend)
	if !ok {
		log.Fatalf("Backend %q cannot write files", *backend)
	}
	if err := fb.SaveToFile(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Palette saved to %s (%dx%d, %d swatches)\n", *output, rec.Width(), rec.Height(), len(palette))
}

// huePalette returns n fully saturated colors spaced evenly around the hue
// circle, starting at red.
func huePalette(n int) []tint.Color {
	out := make([]tint.Color, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, tint.HSV(360*float64(i)/float64(n), 1, 1))
	}
	return out
}

func dumpConfig() *spew.ConfigState {
	cfg := spew.NewDefaultConfig()
	cfg.DisableCapacities = true
	cfg.DisablePointerAddresses = true
	return cfg
}
