package box

import "fmt"

// Position is an integer point, in pixels.
type Position struct {
	X, Y int
}

// Size is an integer extent, in pixels.
type Size struct {
	W, H int
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// IsZero reports whether either dimension is zero or negative.
func (s Size) IsZero() bool { return s.W <= 0 || s.H <= 0 }

// Region is a rectangle: an offset into the underlying pixel buffer plus
// an extent. Painter primitives take coordinates local to the current
// region, so (0, 0) is the region's top-left corner.
type Region struct {
	Pos  Position
	Size Size
}

// Rgn builds a Region from x, y, w, h.
func Rgn(x, y, w, h int) Region {
	return Region{Pos: Position{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Moved returns the region translated by (dx, dy), keeping its size.
func (r Region) Moved(dx, dy int) Region {
	r.Pos.X += dx
	r.Pos.Y += dy
	return r
}

// Shrunk returns the region inset by d on all four sides.
// The size never goes below zero.
func (r Region) Shrunk(d int) Region {
	r.Pos.X += d
	r.Pos.Y += d
	r.Size.W = max(0, r.Size.W-2*d)
	r.Size.H = max(0, r.Size.H-2*d)
	return r
}

// Expanded returns the region grown by d on all four sides.
func (r Region) Expanded(d int) Region {
	return r.Shrunk(-d)
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Pos.X, r.Pos.Y, r.Size.W, r.Size.H)
}

// PointF is a fractional point. Gradient endpoints use it with both
// coordinates in [0, 1] relative to the target size.
type PointF struct {
	X, Y float64
}
