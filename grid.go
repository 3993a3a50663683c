package box

// Grid tiles children into uniform cells. Exactly one of the row or
// column count is set; the other derives from the child count, rounding
// up. Cells are all the same size: the largest child in fixed mode, the
// container's explicit size divided evenly in expand mode. Children
// fill row by row, or column by column when vertical traversal is on.
type Grid struct {
	Box
	children  []Widget
	rowCount  int // 0 = derived
	colCount  int // 0 = derived
	mode      SizeMode
	hsep      int
	vsep      int
	itemAlign Align
	itemBg    Background
	vertical  bool
}

// NewGrid creates a grid over the given children. Set the shape with
// SetRowCount or SetColCount before measuring.
func NewGrid(children ...Widget) *Grid {
	g := &Grid{
		children:  children,
		hsep:      DefaultSep,
		vsep:      DefaultSep,
		itemAlign: AlignCenter,
	}
	g.Box.init(g, "Grid")
	return g
}

// AddChild appends a child.
func (g *Grid) AddChild(w Widget) *Grid {
	g.ensureMutable()
	g.children = append(g.children, w)
	return g
}

// SetChildren replaces all children.
func (g *Grid) SetChildren(children []Widget) *Grid {
	g.ensureMutable()
	g.children = children
	return g
}

// Children returns the child list.
func (g *Grid) Children() []Widget { return g.children }

// SetRowCount fixes the number of rows and derives the column count.
func (g *Grid) SetRowCount(rows int) *Grid {
	g.ensureMutable()
	g.rowCount, g.colCount = rows, 0
	return g
}

// SetColCount fixes the number of columns and derives the row count.
func (g *Grid) SetColCount(cols int) *Grid {
	g.ensureMutable()
	g.rowCount, g.colCount = 0, cols
	return g
}

// SetSep sets the horizontal and vertical gaps between cells.
func (g *Grid) SetSep(hsep, vsep int) *Grid {
	g.ensureMutable()
	g.hsep, g.vsep = hsep, vsep
	return g
}

// SetSizeMode selects fixed or expand cell sizing.
func (g *Grid) SetSizeMode(mode SizeMode) *Grid {
	g.ensureMutable()
	g.mode = mode
	return g
}

// SetItemAlign places each child inside its cell.
func (g *Grid) SetItemAlign(a Align) *Grid {
	g.ensureMutable()
	g.itemAlign = a
	return g
}

// SetItemBg draws a background into every cell, behind the child.
// Children with SetOmitParentBg(true) skip it.
func (g *Grid) SetItemBg(bg Background) *Grid {
	g.ensureMutable()
	g.itemBg = bg
	return g
}

// SetVertical switches to column-major traversal: children fill the
// first column top to bottom, then the next.
func (g *Grid) SetVertical(vertical bool) *Grid {
	g.ensureMutable()
	g.vertical = vertical
	return g
}

// shape resolves the row/column counts and the uniform cell size.
func (g *Grid) shape() (rows, cols int, cell Size, err error) {
	rows, cols = g.rowCount, g.colCount
	switch {
	case rows > 0 && cols > 0:
		return 0, 0, Size{}, &ConfigError{Widget: "Grid", Reason: "row and column counts are mutually exclusive"}
	case rows == 0 && cols == 0:
		return 0, 0, Size{}, &ConfigError{Widget: "Grid", Reason: "either a row or a column count is required"}
	case rows == 0:
		rows = (len(g.children) + cols - 1) / cols
	case cols == 0:
		cols = (len(g.children) + rows - 1) / rows
	}

	if g.mode == SizeExpand {
		if g.w == Auto || g.h == Auto {
			return 0, 0, Size{}, &ConfigError{Widget: "Grid", Reason: "expand mode requires a fixed width and height"}
		}
		cell = Size{
			W: (g.w - g.hsep*(cols-1) - 2*g.hpadding) / cols,
			H: (g.h - g.vsep*(rows-1) - 2*g.vpadding) / rows,
		}
		return rows, cols, cell, nil
	}

	for _, child := range g.children {
		sz, err := child.SelfSize()
		if err != nil {
			return 0, 0, Size{}, err
		}
		cell.W = max(cell.W, sz.W)
		cell.H = max(cell.H, sz.H)
	}
	return rows, cols, cell, nil
}

func (g *Grid) contentSize() (Size, error) {
	if len(g.children) == 0 {
		return Size{}, nil
	}
	rows, cols, cell, err := g.shape()
	if err != nil {
		return Size{}, err
	}
	return Size{
		W: cols*cell.W + g.hsep*(cols-1),
		H: rows*cell.H + g.vsep*(rows-1),
	}, nil
}

func (g *Grid) drawContent(p *Painter) error {
	if len(g.children) == 0 {
		return nil
	}
	rows, cols, cell, err := g.shape()
	if err != nil {
		return err
	}
	for idx, child := range g.children {
		var row, col int
		if g.vertical {
			row, col = idx%rows, idx/rows
		} else {
			row, col = idx/cols, idx%cols
		}

		p.MoveResizeRegion(col*(cell.W+g.hsep), row*(cell.H+g.vsep), cell)

		if g.itemBg != nil && !child.Base().OmitParentBg() {
			g.itemBg.Draw(p)
		}

		childSize, err := child.SelfSize()
		if err != nil {
			p.Pop()
			return err
		}
		pos := alignOffset(g.itemAlign, cell, childSize)
		err = drawChildInto(p, child, pos.X, pos.Y, childSize)
		p.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}
