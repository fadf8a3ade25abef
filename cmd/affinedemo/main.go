// Command affinedemo renders the letter F under a composed affine transform
// and writes the result as a PNG.
//
// Usage:
//
//	affinedemo -tx 150 -ty 150 -angle 30 -sx 1 -sy 1 -copies 5 -label
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/affine"
	"github.com/gogpu/affine/raster"
)

var errBadColor = errors.New("color must be RRGGBB hex")

type config struct {
	width, height int
	tx, ty        float64
	angle         float64
	sx, sy        float64
	ox, oy        float64
	copies        int
	color         string
	seed          uint64
	label         bool
	output        string
	verbose       bool
}

func main() {
	log.SetFlags(0)
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("affinedemo: %v", err)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	affine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		log.Fatalf("affinedemo: %v", err)
	}
	log.Printf("Saved %s (%dx%d)", cfg.output, cfg.width, cfg.height)
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("affinedemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.width, "width", 400, "canvas width in pixels")
	fs.IntVar(&cfg.height, "height", 300, "canvas height in pixels")
	fs.Float64Var(&cfg.tx, "tx", 150, "translation x")
	fs.Float64Var(&cfg.ty, "ty", 150, "translation y")
	fs.Float64Var(&cfg.angle, "angle", 0, "rotation in degrees")
	fs.Float64Var(&cfg.sx, "sx", 0.2, "scale x")
	fs.Float64Var(&cfg.sy, "sy", 1.5, "scale y")
	fs.Float64Var(&cfg.ox, "ox", 0, "origin x, the point rotated and scaled about")
	fs.Float64Var(&cfg.oy, "oy", 0, "origin y")
	fs.IntVar(&cfg.copies, "copies", 1, "draw the transform applied 1..N times")
	fs.StringVar(&cfg.color, "color", "", "fill colour as RRGGBB (random when empty)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for the random colour (0 picks one)")
	fs.BoolVar(&cfg.label, "label", false, "draw the composed matrix as text")
	fs.StringVar(&cfg.output, "output", "affine.png", "output PNG file")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.copies < 0 {
		return config{}, fmt.Errorf("copies must be >= 0, got %d", cfg.copies)
	}
	return cfg, nil
}

func run(cfg config) error {
	fill, err := fillColor(cfg.color, cfg.seed)
	if err != nil {
		return err
	}

	canvas, err := raster.NewCanvas(cfg.width, cfg.height, raster.WithBackground(color.White))
	if err != nil {
		return err
	}

	t := affine.NewTransform()
	t.Translation = affine.Pt(cfg.tx, cfg.ty)
	t.Rotation = cfg.angle * math.Pi / 180
	t.Scale = affine.Pt(cfg.sx, cfg.sy)
	t.Origin = affine.Pt(cfg.ox, cfg.oy)
	m := t.Matrix()

	affine.Logger().Debug("affinedemo: composed", "matrix", m.String(), "copies", cfg.copies)

	if err := canvas.FillRepeated(raster.FGeometry(), m, cfg.copies, fill); err != nil {
		return err
	}

	if cfg.label {
		if err := canvas.DrawLabel(m.String(), 8, cfg.height-8, color.Black); err != nil {
			return fmt.Errorf("draw label: %w", err)
		}
	}

	return canvas.SavePNG(cfg.output)
}

// fillColor parses s as RRGGBB, or picks a random opaque colour when s is
// empty. A zero seed draws the seed itself from the global source.
func fillColor(s string, seed uint64) (color.NRGBA, error) {
	if s != "" {
		return parseHexColor(s)
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return color.NRGBA{
		R: uint8(r.IntN(256)), //nolint:gosec // IntN(256) fits uint8
		G: uint8(r.IntN(256)), //nolint:gosec // IntN(256) fits uint8
		B: uint8(r.IntN(256)), //nolint:gosec // IntN(256) fits uint8
		A: 0xff,
	}, nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
