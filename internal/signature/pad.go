// Package signature captures free-hand signature strokes on a fixed-size
// surface and exports them as a PNG data URI for submission.
package signature

// Surface dimensions in logical units. The exported raster always has
// exactly this size regardless of how the pad is scaled on screen.
const (
	Width  = 440
	Height = 140
)

// Point is a surface-local coordinate.
type Point struct {
	X, Y float32
}

// Pad accumulates an ordered sequence of strokes. A stroke begins on pointer
// press, grows while the pointer stays down and ends on release or when the
// pointer leaves the surface. Not safe for concurrent use; the UI event loop
// is the only caller.
type Pad struct {
	strokes [][]Point
	active  bool
}

func NewPad() *Pad {
	return &Pad{}
}

// Begin starts a new stroke at pt.
func (p *Pad) Begin(pt Point) {
	p.active = true
	p.strokes = append(p.strokes, []Point{pt})
}

// Extend appends a segment to the current stroke. Ignored when no stroke is
// in progress, so stray move events before a press draw nothing.
func (p *Pad) Extend(pt Point) {
	if !p.active || len(p.strokes) == 0 {
		return
	}
	last := len(p.strokes) - 1
	p.strokes[last] = append(p.strokes[last], pt)
}

// End finishes the current stroke. Safe to call repeatedly.
func (p *Pad) End() {
	p.active = false
}

// Clear discards all strokes, returning the surface to the blank background.
func (p *Pad) Clear() {
	p.strokes = nil
	p.active = false
}

// Blank reports whether nothing has been drawn. A blank pad still exports a
// valid background-only image; presence of ink is not validated here.
func (p *Pad) Blank() bool {
	return len(p.strokes) == 0
}

// Strokes returns the accumulated strokes for on-screen redraw. The caller
// must not mutate the returned slices.
func (p *Pad) Strokes() [][]Point {
	return p.strokes
}
