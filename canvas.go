package box

// maxCanvasSide bounds the rendered pixel budget: a canvas may cover at
// most maxCanvasSide² pixels in any shape.
const maxCanvasSide = 4096

// Canvas is the root of a layout tree. It is a Frame with a required
// size and a background, plus a Render entry point that measures the
// tree, allocates the pixmap, and draws into it.
type Canvas struct {
	Frame
}

// NewCanvas creates a canvas of the given size. Pass Auto for a
// dimension to derive it from content.
func NewCanvas(w, h int, bg Background) *Canvas {
	c := &Canvas{}
	c.Box.init(c, "Canvas")
	c.SetSize(w, h)
	c.SetBg(bg)
	return c
}

// Render measures the tree, draws it into a fresh transparent pixmap,
// and returns the result. A non-unit scale resizes the finished image.
// Canvases whose pixel count exceeds the budget return a
// *CanvasSizeError before any allocation.
func (c *Canvas) Render(scale float64) (*Pixmap, error) {
	size, err := c.SelfSize()
	if err != nil {
		return nil, err
	}
	if size.W*size.H >= maxCanvasSide*maxCanvasSide {
		return nil, &CanvasSizeError{Size: size}
	}

	Logger().Debug("render canvas", "size", size, "scale", scale)

	pm := NewPixmap(size.W, size.H)
	p := NewPainter(pm)
	if err := c.Draw(p); err != nil {
		return nil, err
	}
	if scale != 1 {
		pm = pm.Scaled(scale)
	}
	return pm, nil
}
