package fx

import (
	"image/color"
	"math"
)

// HSV converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{R: to8(r + m), G: to8(g + m), B: to8(b + m), A: 255}
}

// HSL converts HSL (hue: 0-360, saturation: 0-1, lightness: 0-1) by way of HSV.
func HSL(h, s, l float64) color.RGBA {
	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v > 0 {
		sv = 2 * (1 - l/v)
	}
	return HSV(h, sv, v)
}

// RGB is an opaque colour from 8-bit channels.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
