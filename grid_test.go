package box

import (
	"errors"
	"testing"
)

// TestGrid_DerivedRows derives the row count from the column count,
// rounding up.
func TestGrid_DerivedRows(t *testing.T) {
	children := make([]Widget, 7)
	for i := range children {
		children[i] = NewSpacer(10, 10)
	}
	g := NewGrid(children...)
	g.SetColCount(3)
	g.SetSep(8, 8)

	size, err := g.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	// 7 children in 3 columns is 3 rows.
	want := Size{W: 3*10 + 2*8, H: 3*10 + 2*8}
	if size != want {
		t.Errorf("SelfSize = %v, want %v", size, want)
	}
}

// TestGrid_CellIsLargestChild sizes every cell alike.
func TestGrid_CellIsLargestChild(t *testing.T) {
	g := NewGrid(NewSpacer(4, 4), NewSpacer(10, 6), NewSpacer(2, 8))
	g.SetColCount(2)
	g.SetSep(0, 0)

	size, err := g.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	// Cell is 10x8; two columns, two rows.
	if size != (Size{W: 20, H: 16}) {
		t.Errorf("SelfSize = %v, want 20x16", size)
	}
}

// TestGrid_RowMajorPlacement fills row by row.
func TestGrid_RowMajorPlacement(t *testing.T) {
	children := make([]Widget, 4)
	for i := range children {
		children[i] = NewSpacer(10, 10)
	}
	g := NewGrid(children...)
	g.SetColCount(2)
	g.SetSep(2, 2)

	positions := childPositions(g.Children())

	size, _ := g.SelfSize()
	pm := NewPixmap(size.W, size.H)
	if err := g.Draw(NewPainter(pm)); err != nil {
		t.Fatal(err)
	}
	want := []Position{{0, 0}, {12, 0}, {0, 12}, {12, 12}}
	for i, w := range want {
		if (*positions)[i] != w {
			t.Errorf("child %d drawn at %v, want %v", i, (*positions)[i], w)
		}
	}
}

// TestGrid_VerticalPlacement fills column by column.
func TestGrid_VerticalPlacement(t *testing.T) {
	children := make([]Widget, 4)
	for i := range children {
		children[i] = NewSpacer(10, 10)
	}
	g := NewGrid(children...)
	g.SetRowCount(2)
	g.SetSep(2, 2)
	g.SetVertical(true)

	positions := childPositions(g.Children())

	size, _ := g.SelfSize()
	pm := NewPixmap(size.W, size.H)
	if err := g.Draw(NewPainter(pm)); err != nil {
		t.Fatal(err)
	}
	// Children 0,1 fill the first column; 2,3 the second.
	want := []Position{{0, 0}, {0, 12}, {12, 0}, {12, 12}}
	for i, w := range want {
		if (*positions)[i] != w {
			t.Errorf("child %d drawn at %v, want %v", i, (*positions)[i], w)
		}
	}
}

// TestGrid_BothCountsSet is a configuration error.
func TestGrid_BothCountsSet(t *testing.T) {
	g := NewGrid(NewSpacer(2, 2))
	g.SetRowCount(2)
	g.colCount = 2 // SetColCount clears rowCount; force the bad state

	_, err := g.SelfSize()
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
}

// TestGrid_NoCountSet is a configuration error.
func TestGrid_NoCountSet(t *testing.T) {
	g := NewGrid(NewSpacer(2, 2))
	_, err := g.SelfSize()
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
}

// TestGrid_ExpandMode divides the fixed extents evenly.
func TestGrid_ExpandMode(t *testing.T) {
	children := make([]Widget, 4)
	for i := range children {
		children[i] = NewSpacer(5, 5)
	}
	g := NewGrid(children...)
	g.SetColCount(2)
	g.SetSep(0, 0)
	g.SetSizeMode(SizeExpand)
	g.SetSize(40, 20)

	size, err := g.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	if size != (Size{W: 40, H: 20}) {
		t.Errorf("SelfSize = %v, want 40x20", size)
	}
}

// TestGrid_ExpandNeedsExtents rejects expand mode without both fixed
// dimensions.
func TestGrid_ExpandNeedsExtents(t *testing.T) {
	g := NewGrid(NewSpacer(2, 2))
	g.SetColCount(1)
	g.SetSizeMode(SizeExpand)
	g.SetW(40)

	_, err := g.SelfSize()
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
}
