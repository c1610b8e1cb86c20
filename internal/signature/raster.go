package signature

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/vector"
)

var (
	// Background matches the on-screen pad fill.
	Background = color.NRGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF}
	// Ink is the stroke colour.
	Ink = color.NRGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}
)

// strokeWidth is the pen thickness in surface units.
const strokeWidth = 2.5

// Export rasterises the pad onto the fixed-size surface and returns the
// result as a base64 PNG data URI. Called at submission time only.
func (p *Pad) Export() (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	if len(p.strokes) > 0 {
		z := vector.NewRasterizer(Width, Height)
		for _, stroke := range p.strokes {
			tracePath(z, stroke)
		}
		z.Draw(img, img.Bounds(), image.NewUniform(Ink), image.Point{})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode signature: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// tracePath outlines a polyline stroke as filled geometry: a round dot at
// every vertex plus a quad per segment. The rasterizer takes the absolute
// winding, so overlapping pieces union cleanly.
func tracePath(z *vector.Rasterizer, stroke []Point) {
	const r = strokeWidth / 2
	for _, pt := range stroke {
		traceCircle(z, pt, r)
	}
	for i := 1; i < len(stroke); i++ {
		traceSegment(z, stroke[i-1], stroke[i], r)
	}
}

func traceSegment(z *vector.Rasterizer, a, b Point, r float32) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Unit normal scaled to half the pen width.
	nx, ny := -dy/length*r, dx/length*r

	z.MoveTo(a.X+nx, a.Y+ny)
	z.LineTo(b.X+nx, b.Y+ny)
	z.LineTo(b.X-nx, b.Y-ny)
	z.LineTo(a.X-nx, a.Y-ny)
	z.ClosePath()
}

// kappa approximates a quarter circle with a cubic bezier.
const kappa = 0.5522847498

func traceCircle(z *vector.Rasterizer, c Point, r float32) {
	k := r * kappa
	z.MoveTo(c.X+r, c.Y)
	z.CubeTo(c.X+r, c.Y+k, c.X+k, c.Y+r, c.X, c.Y+r)
	z.CubeTo(c.X-k, c.Y+r, c.X-r, c.Y+k, c.X-r, c.Y)
	z.CubeTo(c.X-r, c.Y-k, c.X-k, c.Y-r, c.X, c.Y-r)
	z.CubeTo(c.X+k, c.Y-r, c.X+r, c.Y-k, c.X+r, c.Y)
	z.ClosePath()
}
