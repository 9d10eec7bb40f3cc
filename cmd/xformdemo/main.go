// Command xformdemo demonstrates the affine transform library by warping
// a generated checkerboard image and saving the result as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/affine"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

func main() {
	var (
		size   = flag.Int("size", 256, "source image size in pixels")
		angle  = flag.Float64("angle", 30, "rotation in degrees")
		scale  = flag.Float64("scale", 1.5, "uniform scale factor")
		output = flag.String("output", "xform.png", "output file")
		debug  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	affine.SetLogger(logger)

	if err := run(*size, float32(*angle), float32(*scale), *output, logger); err != nil {
		logger.Error("xformdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(size int, angle, scale float32, output string, logger *slog.Logger) error {
	if size <= 0 {
		return fmt.Errorf("size must be positive, got %d", size)
	}
	src := checkerboard(size, size/8+1)

	c := float32(size) / 2
	var t affine.Transform
	t.RotateWithCenter(angle, c, c).ScaleWithCenter(scale, scale, c, c)

	// Shift the result so its bounding box starts at the origin.
	bounds := t.TransformRect(affine.Rect(0, 0, float32(size), float32(size)))
	var view affine.Transform
	view.Translate(-bounds.Left, -bounds.Top).Combine(t)

	w := int(math.Ceil(float64(bounds.Width)))
	h := int(math.Ceil(float64(bounds.Height)))
	logger.Info("transformed bounds",
		"left", bounds.Left, "top", bounds.Top,
		"width", bounds.Width, "height", bounds.Height)

	if !view.IsInvertible() {
		logger.Warn("transform is degenerate, output will be empty", "transform", view.String())
	}

	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{R: 32, G: 32, B: 40, A: 255}), image.Point{}, draw.Src)
	draw.BiLinear.Transform(dst, toF64(view.Aff3()), src, src.Bounds(), draw.Over, nil)

	// The destination centre must map back to the source centre.
	back := view.Inverse().TransformPoint(affine.V2f(float32(w)/2, float32(h)/2))
	logger.Debug("inverse check", "x", back.X, "y", back.Y, "want", c)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logger.Info("saved", "output", output, "width", dst.Bounds().Dx(), "height", dst.Bounds().Dy())
	return nil
}

func toF64(a [6]float32) f64.Aff3 {
	var out f64.Aff3
	for i, v := range a {
		out[i] = float64(v)
	}
	return out
}

func checkerboard(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 240, G: 200, B: 80, A: 255}
	dark := color.RGBA{R: 60, G: 120, B: 200, A: 255}
	for y := range size {
		for x := range size {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
