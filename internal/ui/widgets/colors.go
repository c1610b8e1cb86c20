package widgets

import "image/color"

// Shared palette for status accents and surfaces.
var (
	ColorSuccess = color.NRGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF}
	ColorError   = color.NRGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF}
	ColorWarning = color.NRGBA{R: 0xED, G: 0x6C, B: 0x02, A: 0xFF}

	ColorSurface = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorBorder  = color.NRGBA{R: 0xDA, G: 0xDE, B: 0xE0, A: 0xFF}
	ColorMuted   = color.NRGBA{R: 0x5F, G: 0x6E, B: 0x84, A: 0xFF}
)
