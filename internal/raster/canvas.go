// Package raster implements a render.Canvas backed by an in-memory image.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"wireframe/internal/linalg"
)

// ErrNonFinite is returned for a line endpoint with a NaN or infinite coordinate.
var ErrNonFinite = errors.New("raster: non-finite coordinate")

// Options controls line appearance.
type Options struct {
	LineWidth  float32     // in output pixels, before Scale
	Color      color.NRGBA // stroke color
	Background color.NRGBA
	Scale      float32 // supersample factor applied to coordinates and width
}

// DefaultOptions draws 1.5px white lines on a transparent background.
func DefaultOptions() Options {
	return Options{
		LineWidth: 1.5,
		Color:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Scale:     1,
	}
}

// Canvas strokes straight lines into an NRGBA frame with anti-aliasing.
// It is not safe for concurrent use.
type Canvas struct {
	img  *image.NRGBA
	opts Options
	src  *image.Uniform
	ras  vector.Rasterizer
}

// NewCanvas allocates a w×h canvas cleared to opts.Background.
func NewCanvas(w, h int, opts Options) *Canvas {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}
	return &Canvas{
		img:  NewFrameBuffer(w, h, opts.Background),
		opts: opts,
		src:  image.NewUniform(opts.Color),
	}
}

// Image returns the frame being drawn into.
func (c *Canvas) Image() *image.NRGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Clear resets the frame to the background color.
func (c *Canvas) Clear() {
	Fill(c.img, c.opts.Background)
}

// Snapshot returns a copy of the current frame.
func (c *Canvas) Snapshot() *image.NRGBA {
	out := image.NewNRGBA(c.img.Rect)
	copy(out.Pix, c.img.Pix)
	return out
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// DrawLine strokes the segment from → to as a quad LineWidth wide.
// A zero-length segment is drawn as a square dot.
func (c *Canvas) DrawLine(from, to linalg.Point) error {
	if !finite(from.X) || !finite(from.Y) || !finite(to.X) || !finite(to.Y) {
		return fmt.Errorf("%w: %s -> %s", ErrNonFinite, from, to)
	}

	s := c.opts.Scale
	half := c.opts.LineWidth * s / 2
	b := c.img.Bounds()

	// Bound the segment to the frame grown by half the width; the
	// rasterizer clips whatever of the quad still falls outside.
	x0, y0, x1, y1, visible := clipSegment(
		from.X*s, from.Y*s, to.X*s, to.Y*s,
		-half, -half, float32(b.Dx())+half, float32(b.Dy())+half,
	)
	if !visible {
		return nil
	}

	dx, dy := x1-x0, y1-y0
	length := math32.Hypot(dx, dy)

	// unit direction (ux, uy); the quad extends half along the normal
	var ux, uy float32
	if length < 1e-6 {
		ux, uy = 1, 0
		x0 -= half
		x1 += half
	} else {
		ux, uy = dx/length, dy/length
	}
	nx, ny := -uy*half, ux*half

	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
	c.ras.MoveTo(x0+nx, y0+ny)
	c.ras.LineTo(x1+nx, y1+ny)
	c.ras.LineTo(x1-nx, y1-ny)
	c.ras.LineTo(x0-nx, y0-ny)
	c.ras.ClosePath()
	c.ras.Draw(c.img, b, c.src, image.Point{})
	return nil
}
