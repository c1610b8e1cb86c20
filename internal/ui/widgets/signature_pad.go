package widgets

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/ndalink/ndasign/internal/signature"
)

// SignaturePad lays out the capture surface and feeds pointer events into
// the pad. Mouse and touch arrive through the same pointer pipeline, so one
// position mapping covers both. A stroke runs press -> drags -> release;
// leaving the surface ends it.
type SignaturePad struct {
	Pad *signature.Pad
}

func (s *SignaturePad) Layout(gtx layout.Context) layout.Dimensions {
	size := image.Pt(gtx.Dp(unit.Dp(signature.Width)), gtx.Dp(unit.Dp(signature.Height)))
	if s.Pad == nil {
		return layout.Dimensions{Size: size}
	}
	// Pointer positions are in pixels; the pad records logical surface units.
	scale := float32(size.X) / float32(signature.Width)

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: s,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Leave,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		pt := signature.Point{X: pe.Position.X / scale, Y: pe.Position.Y / scale}
		switch pe.Kind {
		case pointer.Press:
			s.Pad.Begin(pt)
		case pointer.Drag:
			s.Pad.Extend(pt)
		case pointer.Release, pointer.Cancel, pointer.Leave:
			s.Pad.End()
		}
	}

	surface := clip.RRect{
		Rect: image.Rectangle{Max: size},
		NE:   gtx.Dp(10), NW: gtx.Dp(10), SE: gtx.Dp(10), SW: gtx.Dp(10),
	}
	paint.FillShape(gtx.Ops, signature.Background, surface.Op(gtx.Ops))
	paint.FillShape(gtx.Ops, ColorBorder, clip.Stroke{
		Path:  surface.Path(gtx.Ops),
		Width: float32(gtx.Dp(1)),
	}.Op())

	defer surface.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, s)

	for _, stroke := range s.Pad.Strokes() {
		var p clip.Path
		p.Begin(gtx.Ops)
		first := stroke[0]
		p.MoveTo(f32.Pt(first.X*scale, first.Y*scale))
		if len(stroke) == 1 {
			// A click without movement still leaves a dot.
			p.LineTo(f32.Pt(first.X*scale+0.1, first.Y*scale))
		}
		for _, q := range stroke[1:] {
			p.LineTo(f32.Pt(q.X*scale, q.Y*scale))
		}
		paint.FillShape(gtx.Ops, signature.Ink, clip.Stroke{
			Path:  p.End(),
			Width: 2.5 * scale,
		}.Op())
	}

	return layout.Dimensions{Size: size}
}
