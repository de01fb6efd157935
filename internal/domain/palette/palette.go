// Package palette holds the fixed color table shared by every pattern and the
// tone classification that drives transition backgrounds and title contrast.
package palette

import "image/color"

// Traditional Chinese colors used by the patterns.
var (
	Bg     = color.RGBA{0x0a, 0x0a, 0x0c, 0xff} // 玄黑
	Gold   = color.RGBA{0xc6, 0x9c, 0x6d, 0xff} // 泥金
	Red    = color.RGBA{0x8b, 0x2e, 0x2e, 0xff} // 殷红
	Blue   = color.RGBA{0x3e, 0x51, 0x68, 0xff} // 黛蓝
	Cyan   = color.RGBA{0x75, 0x8a, 0x99, 0xff} // 鸦青
	White  = color.RGBA{0xf7, 0xf4, 0xed, 0xff} // 宣纸
	Green  = color.RGBA{0x48, 0x58, 0x3e, 0xff}
	Ochre  = color.RGBA{0x9c, 0x5e, 0x26, 0xff} // 赭石
	Jade   = color.RGBA{0x7a, 0x9f, 0x88, 0xff} // 玉色
	Purple = color.RGBA{0x4e, 0x2f, 0x38, 0xff} // 藕荷
	Ink    = color.RGBA{0x1a, 0x1a, 0x1a, 0xff} // 焦墨
)

// Transition backgrounds.
var (
	DarkBackground  = Bg
	LightBackground = White
)

// Fade returns c with its alpha replaced by a (0..1). Patterns use it for the
// translucent full-surface wash that leaves trails behind moving shapes.
func Fade(c color.RGBA, a float64) color.NRGBA {
	return RGBA(c.R, c.G, c.B, a)
}

// RGBA builds a straight-alpha color from 8-bit channels and a 0..1 alpha,
// mirroring CSS rgba().
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}
