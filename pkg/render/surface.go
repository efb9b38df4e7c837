// Package render defines the drawing contract used by the simulation and
// the implementations that satisfy it.
package render

import "image/color"

// Surface is the 2D drawing context entities render themselves onto.
// Coordinates are playfield units; the origin is the top-left corner.
type Surface interface {
	// Clear wipes the whole surface.
	Clear()

	// FillRect draws an axis-aligned filled rectangle.
	FillRect(x, y, width, height float64, clr color.Color, glow Glow)

	// FillCircle draws a filled circle centred on (cx, cy).
	FillCircle(cx, cy, radius float64, clr color.Color, glow Glow)

	// StrokeLine draws a straight line segment.
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Glow is an optional halo drawn around a shape. The zero value disables it.
type Glow struct {
	Color color.Color
	Blur  float64
}

// Enabled reports whether the glow should be drawn.
func (g Glow) Enabled() bool {
	return g.Color != nil && g.Blur > 0
}

// WithAlpha scales the opacity of clr by alpha (clamped to [0,1]).
func WithAlpha(clr color.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	// color.Color is alpha-premultiplied, so every channel scales together
	r, g, b, a := clr.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}
