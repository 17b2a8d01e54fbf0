package main

import (
	"flag"
	"fmt"

	gadget "github.com/grindlemire/go-gadget"
	"github.com/grindlemire/go-gadget/widget"
)

// runSnapshot implements the snapshot subcommand.
// It renders the demo scene once on a raster surface and saves it.
func runSnapshot(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	out := fs.String("o", "desktop.png", "Output image path")
	width := fs.Int("w", 640, "Width in pixels")
	height := fs.Int("h", 384, "Height in pixels")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *width, *height)
	}

	stats, err := renderSnapshot(*out, *width, *height)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d, %d paint calls)\n", *out, *width, *height, stats.PaintCalls)
	return nil
}

// renderSnapshot builds the scene on a width x height raster, flushes it
// and writes the frame to path.
func renderSnapshot(path string, width, height int) (gadget.FlushStats, error) {
	theme := widget.DefaultTheme
	surface := gadget.NewRasterSurface(width, height)
	app, err := gadget.NewApp(surface, gadget.WithRootBehavior(gadget.Fill{Color: theme.Desktop}))
	if err != nil {
		return gadget.FlushStats{}, err
	}
	if _, err := buildScene(app, theme, rasterGrid); err != nil {
		return gadget.FlushStats{}, err
	}

	stats := app.Flush()
	if err := surface.SavePNG(path); err != nil {
		return stats, err
	}
	return stats, nil
}
