package box

import (
	"fmt"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/box/text"
)

// roundRectAATargetRadius is the corner radius the supersampled overlay
// is scaled up to before a rounded rectangle is drawn, so small radii
// still get smooth corners after the downscale.
const roundRectAATargetRadius = 32

// Stroke describes an outline drawn inside a primitive's boundary.
type Stroke struct {
	Color Color
	Width int
}

// Corners selects which corners of a rounded rectangle are rounded, in
// the order top-left, top-right, bottom-right, bottom-left.
type Corners [4]bool

// AllCorners rounds every corner.
var AllCorners = Corners{true, true, true, true}

// Painter draws primitives onto a Pixmap. All coordinates are local to
// the current region: a rectangle that is pushed on a LIFO stack and
// only offsets the coordinate system (primitives are not clipped to it;
// the pixmap bounds do the clipping).
//
// Widget code brackets its region changes with Save and Restore so the
// stack is always left as it was found.
type Painter struct {
	pm     *Pixmap
	offset Position
	size   Size
	stack  []Region
}

// NewPainter creates a painter over pm with the region covering the
// whole buffer.
func NewPainter(pm *Pixmap) *Painter {
	return &Painter{pm: pm, size: pm.Size()}
}

// Pixmap returns the buffer the painter draws into.
func (p *Painter) Pixmap() *Pixmap { return p.pm }

// Offset returns the current region's offset into the buffer.
func (p *Painter) Offset() Position { return p.offset }

// Size returns the current region's size.
func (p *Painter) Size() Size { return p.size }

// Region returns the current region.
func (p *Painter) Region() Region {
	return Region{Pos: p.offset, Size: p.size}
}

// Save marks the current depth of the region stack. Pass the mark to
// Restore to unwind every region pushed since.
func (p *Painter) Save() int {
	return len(p.stack)
}

// Restore pops regions until the stack is back at a mark returned by
// Save. Restoring to a mark deeper than the stack is a bug in the
// caller's push/pop pairing and panics.
func (p *Painter) Restore(mark int) {
	if mark > len(p.stack) || mark < 0 {
		panic(fmt.Sprintf("box: Restore(%d) with region stack depth %d", mark, len(p.stack)))
	}
	for len(p.stack) > mark {
		p.Pop()
	}
}

// SetRegion pushes the current region and makes (pos, size) current,
// in buffer coordinates.
func (p *Painter) SetRegion(pos Position, size Size) *Painter {
	p.stack = append(p.stack, p.Region())
	p.offset = pos
	p.size = size
	Logger().Debug("set region", "pos", pos, "size", size, "depth", len(p.stack))
	return p
}

// MoveRegion pushes the current region and moves it by (dx, dy),
// keeping its size.
func (p *Painter) MoveRegion(dx, dy int) *Painter {
	return p.SetRegion(Position{X: p.offset.X + dx, Y: p.offset.Y + dy}, p.size)
}

// MoveResizeRegion pushes the current region, moves it by (dx, dy) and
// gives it a new size.
func (p *Painter) MoveResizeRegion(dx, dy int, size Size) *Painter {
	return p.SetRegion(Position{X: p.offset.X + dx, Y: p.offset.Y + dy}, size)
}

// ShrinkRegion pushes the current region and insets it by dx
// horizontally and dy vertically on each side.
func (p *Painter) ShrinkRegion(dx, dy int) *Painter {
	return p.SetRegion(
		Position{X: p.offset.X + dx, Y: p.offset.Y + dy},
		Size{W: p.size.W - 2*dx, H: p.size.H - 2*dy},
	)
}

// ExpandRegion pushes the current region and grows it by dx and dy on
// each side.
func (p *Painter) ExpandRegion(dx, dy int) *Painter {
	return p.ShrinkRegion(-dx, -dy)
}

// Pop restores the most recently pushed region. Popping with an empty
// stack resets the region to the full buffer.
func (p *Painter) Pop() *Painter {
	if len(p.stack) == 0 {
		p.offset = Position{}
		p.size = p.pm.Size()
		return p
	}
	r := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.offset = r.Pos
	p.size = r.Size
	return p
}

// Rect fills an axis-aligned rectangle, optionally outlined. Opaque
// solid fills write rows directly; translucent and gradient fills
// composite source-over.
func (p *Painter) Rect(pos Position, size Size, fill Fill, stroke *Stroke) *Painter {
	if size.IsZero() {
		return p
	}
	x0 := pos.X + p.offset.X
	y0 := pos.Y + p.offset.Y

	if c, ok := fill.(Color); ok && c.A == 255 && stroke == nil {
		p.fillRectFast(x0, y0, size, c)
		return p
	}

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := p.rectColorAt(x, y, size, fill, stroke)
			if c.A == 0 {
				continue
			}
			p.blendAt(x0+x, y0+y, c)
		}
	}
	return p
}

// rectColorAt resolves the color of a rectangle pixel: stroke ring
// first, fill inside.
func (p *Painter) rectColorAt(x, y int, size Size, fill Fill, stroke *Stroke) Color {
	if stroke != nil && stroke.Width > 0 {
		w := stroke.Width
		if x < w || y < w || x >= size.W-w || y >= size.H-w {
			return stroke.Color
		}
	}
	return resolveFill(fill, x, y, size)
}

// fillRectFast writes an opaque color without blending.
func (p *Painter) fillRectFast(x0, y0 int, size Size, c Color) {
	for y := y0; y < y0+size.H; y++ {
		if y < 0 || y >= p.pm.height {
			continue
		}
		xs := max(0, x0)
		xe := min(p.pm.width, x0+size.W)
		for x := xs; x < xe; x++ {
			i := (y*p.pm.width + x) * 4
			p.pm.data[i+0] = c.R
			p.pm.data[i+1] = c.G
			p.pm.data[i+2] = c.B
			p.pm.data[i+3] = c.A
		}
	}
}

// RoundRect fills a rounded rectangle with every corner rounded.
func (p *Painter) RoundRect(pos Position, size Size, fill Fill, radius int, stroke *Stroke) *Painter {
	return p.RoundRectCorners(pos, size, fill, radius, stroke, AllCorners)
}

// RoundRectCorners fills a rounded rectangle with per-corner control.
//
// The shape is rendered into a supersampled overlay whose corner radius
// is scaled up to at least roundRectAATargetRadius, then downscaled with
// Catmull-Rom and composited, which antialiases the corners even for
// small radii.
func (p *Painter) RoundRectCorners(pos Position, size Size, fill Fill, radius int, stroke *Stroke, corners Corners) *Painter {
	if size.IsZero() {
		return p
	}
	if radius <= 0 {
		return p.Rect(pos, size, fill, stroke)
	}

	aaScale := 1.0
	if radius < roundRectAATargetRadius {
		aaScale = float64(roundRectAATargetRadius) / float64(radius)
	}
	aaSize := Size{W: int(float64(size.W) * aaScale), H: int(float64(size.H) * aaScale)}
	aaRadius := float64(radius) * float64(aaSize.W) / float64(size.W)
	aaStroke := stroke
	if stroke != nil {
		s := *stroke
		s.Width = max(1, int(float64(s.Width)*aaScale+0.5))
		aaStroke = &s
	}

	overlay := NewPixmap(aaSize.W, aaSize.H)
	drawRoundRectShape(overlay, aaRadius, fill, aaStroke, corners)
	if g, ok := fill.(Gradient); ok {
		overlay = maskedGradient(g, aaSize, overlay)
		if aaStroke != nil {
			// Re-apply the stroke ring on top of the gradient fill.
			ring := NewPixmap(aaSize.W, aaSize.H)
			drawRoundRectRing(ring, aaRadius, aaStroke, corners)
			overlay.Blend(ring, 0, 0, 255)
		}
	}
	if aaScale != 1.0 {
		overlay = overlay.resized(size.W, size.H, xdraw.CatmullRom)
	}
	p.pm.Blend(overlay, pos.X+p.offset.X, pos.Y+p.offset.Y, 255)
	return p
}

// drawRoundRectShape rasterizes the rounded rectangle into pm, filling
// with the fill color (black for gradients, the mask carries coverage)
// and drawing the stroke ring inside the boundary.
func drawRoundRectShape(pm *Pixmap, radius float64, fill Fill, stroke *Stroke, corners Corners) {
	fc := Black
	if c, ok := fill.(Color); ok {
		fc = c
	}
	w, h := float64(pm.width), float64(pm.height)
	sw := 0.0
	if stroke != nil {
		sw = float64(stroke.Width)
	}
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if !insideRoundRect(px, py, w, h, radius, corners) {
				continue
			}
			c := fc
			if sw > 0 && !insideRoundRect(px-sw, py-sw, w-2*sw, h-2*sw, max(0, radius-sw), corners) {
				c = stroke.Color
			}
			pm.SetPixel(x, y, c)
		}
	}
}

// drawRoundRectRing rasterizes only the stroke ring.
func drawRoundRectRing(pm *Pixmap, radius float64, stroke *Stroke, corners Corners) {
	w, h := float64(pm.width), float64(pm.height)
	sw := float64(stroke.Width)
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if insideRoundRect(px, py, w, h, radius, corners) &&
				!insideRoundRect(px-sw, py-sw, w-2*sw, h-2*sw, max(0, radius-sw), corners) {
				pm.SetPixel(x, y, stroke.Color)
			}
		}
	}
}

// insideRoundRect tests a point against a rounded rectangle spanning
// (0,0)-(w,h) with the given corner radius and per-corner flags.
func insideRoundRect(px, py, w, h, r float64, corners Corners) bool {
	if px < 0 || py < 0 || px > w || py > h || w <= 0 || h <= 0 {
		return false
	}
	r = min(r, w/2, h/2)
	type corner struct {
		on     bool
		inZone bool
		cx, cy float64
	}
	for _, c := range [4]corner{
		{corners[0], px < r && py < r, r, r},             // top-left
		{corners[1], px > w-r && py < r, w - r, r},       // top-right
		{corners[2], px > w-r && py > h-r, w - r, h - r}, // bottom-right
		{corners[3], px < r && py > h-r, r, h - r},       // bottom-left
	} {
		if c.on && c.inZone {
			dx, dy := px-c.cx, py-c.cy
			return dx*dx+dy*dy <= r*r
		}
	}
	return true
}

// PieSlice fills an elliptical wedge inscribed in the rectangle at pos
// with the given size, between two angles in degrees. Angle 0 is at
// 3 o'clock and angles grow clockwise (screen coordinates).
func (p *Painter) PieSlice(pos Position, size Size, startDeg, endDeg float64, fill Fill, stroke *Stroke) *Painter {
	if size.IsZero() {
		return p
	}
	start := math.Mod(startDeg, 360)
	if start < 0 {
		start += 360
	}
	// A range like (270, 90) wraps through 0 and sweeps 180 degrees.
	end := endDeg
	for end < startDeg {
		end += 360
	}
	sweep := end - startDeg
	if sweep >= 360 {
		sweep = 360
	}
	if sweep == 0 {
		return p
	}

	cx, cy := float64(size.W)/2, float64(size.H)/2
	rx, ry := cx, cy
	sw := 0.0
	if stroke != nil {
		sw = float64(stroke.Width)
	}

	x0 := pos.X + p.offset.X
	y0 := pos.Y + p.offset.Y
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			dx, dy := (px-cx)/rx, (py-cy)/ry
			d := dx*dx + dy*dy
			if d > 1 {
				continue
			}
			ang := math.Atan2(py-cy, px-cx) * 180 / math.Pi
			if ang < 0 {
				ang += 360
			}
			rel := ang - start
			if rel < 0 {
				rel += 360
			}
			if rel > sweep {
				continue
			}
			c := resolveFill(fill, x, y, size)
			if sw > 0 {
				// Stroke covers the arc edge and both radial edges.
				edge := math.Sqrt(d) > 1-sw/min(rx, ry)
				edge = edge || rel*math.Pi/180*math.Sqrt(d)*min(rx, ry) < sw
				edge = edge || (sweep-rel)*math.Pi/180*math.Sqrt(d)*min(rx, ry) < sw
				if edge {
					c = stroke.Color
				}
			}
			if c.A == 0 {
				continue
			}
			p.blendAt(x0+x, y0+y, c)
		}
	}
	return p
}

// Text draws a single line of text with its top-left corner at pos.
// The baseline is placed RefHeight below pos, so text in different
// fonts lines up the way the reference glyph does.
//
// Opaque solid fills rasterize straight into the buffer. Translucent
// and gradient fills render into an overlay first: the glyph coverage
// becomes an alpha mask for the gradient, or the overlay's alpha is
// scaled, and the overlay is composited source-over.
func (p *Painter) Text(s string, pos Position, face *text.Face, fill Fill) *Painter {
	if s == "" {
		return p
	}
	m := face.Metrics()
	ref := face.RefHeight()

	if c, ok := fill.(Color); ok && c.A == 255 {
		text.Draw(p.pm.NRGBA(), s, face, c.NRGBA(),
			float64(pos.X+p.offset.X), float64(pos.Y+p.offset.Y)+ref)
		return p
	}

	w, h := text.Measure(s, face)
	overlaySize := Size{W: w + 1, H: h + 1}
	overlay := NewPixmap(overlaySize.W, overlaySize.H)

	oc := Black
	if c, ok := fill.(Color); ok {
		oc = c.WithAlpha(255)
	}
	text.Draw(overlay.NRGBA(), s, face, oc.NRGBA(), 0, m.Ascent)

	switch f := fill.(type) {
	case Gradient:
		overlay = maskedGradient(f, overlaySize, overlay)
	case Color:
		if f.A < 255 {
			overlay = overlay.MulAlpha(f.A)
		}
	}

	// The overlay's baseline sits at the ascent; shift so the final
	// baseline lands at pos.Y + RefHeight.
	dy := int(ref - m.Ascent)
	p.pm.Blend(overlay, pos.X+p.offset.X, pos.Y+p.offset.Y+dy, 255)
	return p
}

// Paste composites src onto the buffer with its top-left corner at pos,
// source-over.
func (p *Painter) Paste(src *Pixmap, pos Position) *Painter {
	p.pm.Blend(src, pos.X+p.offset.X, pos.Y+p.offset.Y, 255)
	return p
}

// PasteScaled resizes src to size, then pastes it.
func (p *Painter) PasteScaled(src *Pixmap, pos Position, size Size) *Painter {
	if size != src.Size() {
		src = src.Resized(size.W, size.H)
	}
	return p.Paste(src, pos)
}

// PasteAlpha composites src with its alpha scaled by alpha/255.
func (p *Painter) PasteAlpha(src *Pixmap, pos Position, alpha uint8) *Painter {
	p.pm.Blend(src, pos.X+p.offset.X, pos.Y+p.offset.Y, alpha)
	return p
}

// blendAt composites c over the buffer pixel (x, y), dropping
// out-of-bounds writes.
func (p *Painter) blendAt(x, y int, c Color) {
	if x < 0 || x >= p.pm.width || y < 0 || y >= p.pm.height {
		return
	}
	blendPixel(p.pm.data, (y*p.pm.width+x)*4, c)
}

// resolveFill returns the fill color for a pixel local to a shape of
// the given size.
func resolveFill(fill Fill, x, y int, size Size) Color {
	switch f := fill.(type) {
	case Color:
		return f
	case Gradient:
		return f.At(x, y, size)
	default:
		return Transparent
	}
}
