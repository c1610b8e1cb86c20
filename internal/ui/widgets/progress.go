package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// ProgressBar draws a thin horizontal track filled to pct (0-100).
func ProgressBar(gtx layout.Context, pct int, fill color.NRGBA) layout.Dimensions {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	height := gtx.Dp(unit.Dp(5))
	width := gtx.Constraints.Max.X
	radius := height / 2

	track := clip.RRect{
		Rect: image.Rectangle{Max: image.Pt(width, height)},
		NE:   radius, NW: radius, SE: radius, SW: radius,
	}
	paint.FillShape(gtx.Ops, color.NRGBA{A: 0x14}, track.Op(gtx.Ops))

	if fw := width * pct / 100; fw > 0 {
		if fw < height {
			fw = height
		}
		bar := clip.RRect{
			Rect: image.Rectangle{Max: image.Pt(fw, height)},
			NE:   radius, NW: radius, SE: radius, SW: radius,
		}
		paint.FillShape(gtx.Ops, fill, bar.Op(gtx.Ops))
	}

	return layout.Dimensions{Size: image.Pt(width, height)}
}
