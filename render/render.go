// Package render rasterizes tile output for visual inspection. It is a
// debugging aid: the drawing is done on a supersampled grid and scaled
// down, which is good enough to eyeball snap-rounding and cut results
// but is not a production renderer.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/tilecut/geom"
)

// Options controls the tile rendering.
type Options struct {
	// Size is the output image width and height in pixels.
	Size int
	// Supersample is the oversampling factor; 0 selects 4.
	Supersample int
	// Background, Segment and Cut override the default colors when
	// non-nil.
	Background color.Color
	Segment    color.Color
	Cut        color.Color
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.Size <= 0 {
		out.Size = 512
	}
	if out.Supersample <= 0 {
		out.Supersample = 4
	}
	if out.Background == nil {
		out.Background = color.White
	}
	if out.Segment == nil {
		out.Segment = color.RGBA{A: 0xff}
	}
	if out.Cut == nil {
		out.Cut = color.RGBA{R: 0xd0, A: 0xff}
	}
	return out
}

// Tile draws the multipolygon segments and cut segments of one tile into
// a square image. Tile-local coordinates [0, tileSize] map to the full
// image, y growing upwards.
func Tile(tileSize uint16, segments, cuts []geom.Segment2u16, opts Options) *image.RGBA {
	opts = opts.withDefaults()

	big := opts.Size * opts.Supersample
	canvas := image.NewRGBA(image.Rect(0, 0, big, big))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	scale := float64(big-1) / float64(tileSize)
	for _, s := range segments {
		drawSegment(canvas, s, scale, big, opts.Segment)
	}
	for _, s := range cuts {
		drawSegment(canvas, s, scale, big, opts.Cut)
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out
}

// drawSegment draws a one-sample-wide line with a DDA walk.
// The y axis is flipped so tile-local y grows upwards.
func drawSegment(dst *image.RGBA, s geom.Segment2u16, scale float64, size int, c color.Color) {
	x0 := float64(s.A.X) * scale
	y0 := float64(s.A.Y) * scale
	x1 := float64(s.B.X) * scale
	y1 := float64(s.B.Y) * scale

	dx := x1 - x0
	dy := y1 - y0
	steps := int(max(abs(dx), abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(x0 + t*dx + 0.5)
		y := size - 1 - int(y0+t*dy+0.5)
		dst.Set(x, y, c)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
