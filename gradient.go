package box

import "math"

// Gradient produces a color raster of a given size. Backgrounds accept a
// Gradient wherever they accept a solid color, and the Painter can fill
// rect, roundrect, pieslice, and text primitives with one through an
// alpha-mask overlay.
type Gradient interface {
	// At returns the gradient color for the pixel (x, y) inside a raster
	// of the given size.
	At(x, y int, size Size) Color

	// Image renders the gradient into a full pixmap of the given size.
	Image(size Size) *Pixmap
}

// LinearGradient is a two-stop linear color transition. Start and End
// are fractional positions relative to the target size: (0, 0) is the
// top-left corner, (1, 1) the bottom-right.
type LinearGradient struct {
	C1, C2     Color
	Start, End PointF
}

// NewLinearGradient creates a gradient running from c1 at start to c2 at
// end, with fractional endpoints.
func NewLinearGradient(c1, c2 Color, start, end PointF) *LinearGradient {
	return &LinearGradient{C1: c1, C2: c2, Start: start, End: end}
}

// At implements Gradient. Points project onto the start-end line; the
// projection parameter is clamped, so pixels beyond the endpoints take
// the endpoint colors.
func (g *LinearGradient) At(x, y int, size Size) Color {
	x0 := g.Start.X * float64(size.W)
	y0 := g.Start.Y * float64(size.H)
	dx := g.End.X*float64(size.W) - x0
	dy := g.End.Y*float64(size.H) - y0

	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.C1
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((float64(x)-x0)*dx + (float64(y)-y0)*dy) / lengthSq
	return g.C1.Lerp(g.C2, t)
}

// Image implements Gradient.
func (g *LinearGradient) Image(size Size) *Pixmap {
	return renderGradient(g, size)
}

// RadialGradient is a two-stop radial color transition around a center
// point, with a fractional center and a radius in pixels.
//
// The distance mapping is inverted on purpose: pixels at the center take
// C2 and pixels at or beyond the radius take C1. Callers relying on the
// conventional orientation should swap the colors.
type RadialGradient struct {
	C1, C2 Color
	Center PointF
	Radius float64
}

// NewRadialGradient creates a radial gradient around the fractional
// center with the given pixel radius.
func NewRadialGradient(c1, c2 Color, center PointF, radius float64) *RadialGradient {
	return &RadialGradient{C1: c1, C2: c2, Center: center, Radius: radius}
}

// At implements Gradient.
func (g *RadialGradient) At(x, y int, size Size) Color {
	if g.Radius <= 0 {
		return g.C1
	}
	dx := float64(x) - g.Center.X*float64(size.W)
	dy := float64(y) - g.Center.Y*float64(size.H)
	t := math.Sqrt(dx*dx+dy*dy) / g.Radius
	// Inverted mapping: t=0 is C2, t>=1 is C1.
	return g.C2.Lerp(g.C1, t)
}

// Image implements Gradient.
func (g *RadialGradient) Image(size Size) *Pixmap {
	return renderGradient(g, size)
}

// renderGradient rasterizes a gradient pixel by pixel.
func renderGradient(g Gradient, size Size) *Pixmap {
	pm := NewPixmap(size.W, size.H)
	i := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := g.At(x, y, size)
			pm.data[i+0] = c.R
			pm.data[i+1] = c.G
			pm.data[i+2] = c.B
			pm.data[i+3] = c.A
			i += 4
		}
	}
	return pm
}

// maskedGradient renders the gradient and multiplies its alpha by the
// mask's alpha channel, pixel for pixel. The mask carries the shape (an
// antialiased primitive drawn in opaque white on transparent); the
// result composites that shape filled with the gradient.
func maskedGradient(g Gradient, size Size, mask *Pixmap) *Pixmap {
	out := g.Image(size)
	n := min(len(out.data), len(mask.data))
	for i := 3; i < n; i += 4 {
		out.data[i] = uint8(mul255(uint32(out.data[i]), uint32(mask.data[i])))
	}
	return out
}

// Fill is either a solid color or a gradient; primitives accept it for
// their fill and backgrounds for their paint.
type Fill interface {
	isFill()
}

func (Color) isFill()           {}
func (*LinearGradient) isFill() {}
func (*RadialGradient) isFill() {}
