package box

import (
	"errors"
	"testing"
)

// TestCanvas_Render fills the background and returns the requested
// size.
func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(10, 10, NewFillBg(Red))
	pm, err := c.Render(1)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Size() != (Size{W: 10, H: 10}) {
		t.Fatalf("rendered size = %v, want 10x10", pm.Size())
	}
	if got := pm.GetPixel(5, 5); got != Red {
		t.Errorf("pixel = %v, want background", got)
	}
}

// TestCanvas_RenderScaled resizes the finished image.
func TestCanvas_RenderScaled(t *testing.T) {
	c := NewCanvas(10, 10, NewFillBg(Red))
	pm, err := c.Render(2)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Size() != (Size{W: 20, H: 20}) {
		t.Errorf("rendered size = %v, want 20x20", pm.Size())
	}
}

// TestCanvas_PixelBudget rejects oversized canvases before allocating.
func TestCanvas_PixelBudget(t *testing.T) {
	c := NewCanvas(5000, 4000, nil)
	_, err := c.Render(1)
	var cse *CanvasSizeError
	if !errors.As(err, &cse) {
		t.Fatalf("err = %v, want *CanvasSizeError", err)
	}
	if cse.Size != (Size{W: 5000, H: 4000}) {
		t.Errorf("error size = %v", cse.Size)
	}
}

// TestCanvas_AutoSize derives its size from children.
func TestCanvas_AutoSize(t *testing.T) {
	c := NewCanvas(Auto, Auto, nil)
	c.AddChild(NewSpacer(30, 12))
	pm, err := c.Render(1)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Size() != (Size{W: 30, H: 12}) {
		t.Errorf("rendered size = %v, want 30x12", pm.Size())
	}
}

// TestCanvas_CenteredSplit is the end-to-end layout example: a 100x50
// canvas holding a centered HSplit of two 40x20 spacers with a 10 px
// separator.
func TestCanvas_CenteredSplit(t *testing.T) {
	a := NewSpacer(40, 20)
	a.SetBg(NewFillBg(Red))
	b := NewSpacer(40, 20)
	b.SetBg(NewFillBg(Blue))

	split := NewHSplit(a, b)
	split.SetSep(10)

	c := NewCanvas(100, 50, NewFillBg(White))
	c.SetContentAlign(AlignCenter)
	c.AddChild(split)

	pm, err := c.Render(1)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Size() != (Size{W: 100, H: 50}) {
		t.Fatalf("rendered size = %v, want 100x50", pm.Size())
	}

	// Split content is 90 wide and 20 tall, centered: 5 px side margins,
	// 15 px above and below.
	if got := pm.GetPixel(2, 25); got != White {
		t.Errorf("left margin = %v, want background", got)
	}
	if got := pm.GetPixel(10, 25); got != Red {
		t.Errorf("first spacer = %v, want %v", got, Red)
	}
	if got := pm.GetPixel(50, 25); got != White {
		t.Errorf("separator = %v, want background", got)
	}
	if got := pm.GetPixel(90, 25); got != Blue {
		t.Errorf("second spacer = %v, want %v", got, Blue)
	}
	if got := pm.GetPixel(10, 5); got != White {
		t.Errorf("above the split = %v, want background", got)
	}
}
