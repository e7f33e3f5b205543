// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"

	"github.com/chewxy/math32"
)

// RGBA is a 32 bit floating point linear premultiplied color space.
type RGBA struct {
	R, G, B, A float32
}

// Float32 returns r as a [4]float32 in the order R, G, B, A.
func (col RGBA) Float32() [4]float32 {
	return [4]float32{col.R, col.G, col.B, col.A}
}

// SRGBA converts from linear to sRGB color space.
func (col RGBA) SRGB() color.NRGBA {
	if col.A == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8(linearTosRGB(col.R/col.A)*255 + .5),
		G: uint8(linearTosRGB(col.G/col.A)*255 + .5),
		B: uint8(linearTosRGB(col.B/col.A)*255 + .5),
		A: uint8(col.A*255 + .5),
	}
}

// LinearFromSRGB converts from sRGBA to linear RGBA.
func LinearFromSRGB(col color.NRGBA) RGBA {
	af := float32(col.A) / 0xFF
	return RGBA{
		R: sRGBToLinear(float32(col.R)/0xFF) * af,
		G: sRGBToLinear(float32(col.G)/0xFF) * af,
		B: sRGBToLinear(float32(col.B)/0xFF) * af,
		A: af,
	}
}

// NRGBAToLinearRGBA converts from non-premultiplied sRGB color to premultiplied
// linear RGBA color.
//
// Each component in the result is `sRGBToLinear(c * alpha)`, where `c`
// is the linear color.
func NRGBAToLinearRGBA(col color.NRGBA) color.RGBA {
	if col.A == 0xFF {
		return color.RGBA(col)
	}
	c := LinearFromSRGB(col)
	return color.RGBA{
		R: uint8(c.R*255 + .5),
		G: uint8(c.G*255 + .5),
		B: uint8(c.B*255 + .5),
		A: col.A,
	}
}

// linearTosRGB transforms color value from linear to sRGB space.
func linearTosRGB(c float32) float32 {
	// Formula from EXT_sRGB.
	switch {
	case c <= 0:
		return 0
	case 0 < c && c < 0.0031308:
		return 12.92 * c
	case 0.0031308 <= c && c < 1:
		return 1.055*math32.Pow(c, 0.41666) - 0.055
	}
	return 1
}

// sRGBToLinear transforms color value from sRGB to linear space.
func sRGBToLinear(c float32) float32 {
	// Formula from EXT_sRGB.
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}
