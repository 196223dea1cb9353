package render

import "github.com/gdamore/tcell/v2"

// RGB is a true color value; the radar converts at draw time
type RGB struct {
	R, G, B uint8
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// Blend moves c toward to by t, clamped to [0,1]
func (c RGB) Blend(to RGB, t float64) RGB {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return to
	}
	return RGB{lerp8(c.R, to.R, t), lerp8(c.G, to.G, t), lerp8(c.B, to.B, t)}
}

// Tcell converts to a tcell true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
