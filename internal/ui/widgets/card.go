package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

const cardRadius = unit.Dp(12)

func rounded(gtx layout.Context, size image.Point) clip.RRect {
	r := gtx.Dp(cardRadius)
	return clip.RRect{
		Rect: image.Rectangle{Max: size},
		NE:   r, NW: r, SE: r, SW: r,
	}
}

// Card fills a rounded rectangle behind its content with the default inset.
func Card(gtx layout.Context, bg color.NRGBA, w layout.Widget) layout.Dimensions {
	return CustomCard(gtx, bg, unit.Dp(20), w)
}

func CustomCard(gtx layout.Context, bg color.NRGBA, inset unit.Dp, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, bg, rounded(gtx, gtx.Constraints.Min).Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(inset).Layout(gtx, w)
		}),
	)
}

// Border strokes a rounded outline around its content.
func Border(gtx layout.Context, clr color.NRGBA, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, clr, clip.Stroke{
				Path:  rounded(gtx, gtx.Constraints.Min).Path(gtx.Ops),
				Width: float32(gtx.Dp(1)),
			}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(w),
	)
}

// VerticalDivider draws a full-width hairline.
func VerticalDivider(gtx layout.Context, clr color.NRGBA) layout.Dimensions {
	d := image.Point{X: gtx.Constraints.Min.X, Y: gtx.Dp(1)}
	paint.FillShape(gtx.Ops, clr, clip.Rect(image.Rectangle{Max: d}).Op())
	return layout.Dimensions{Size: d}
}
