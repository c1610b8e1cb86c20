package ui

import (
	"image/color"

	"gioui.org/unit"
	"gioui.org/widget/material"
)

func NewTheme() *material.Theme {
	th := material.NewTheme()

	th.Palette.Bg = color.NRGBA{R: 0xF8, G: 0xF9, B: 0xFB, A: 0xFF}
	th.Palette.Fg = color.NRGBA{R: 0x1A, G: 0x1C, B: 0x1E, A: 0xFF}

	// Primary indigo, matching the signature ink.
	th.Palette.ContrastBg = color.NRGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}
	th.Palette.ContrastFg = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	th.TextSize = unit.Sp(16)

	return th
}
