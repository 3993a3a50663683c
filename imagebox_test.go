package box

import (
	"errors"
	"testing"
)

// TestImageBox_Original sizes to the image.
func TestImageBox_Original(t *testing.T) {
	b := NewImageBox(NewPixmap(20, 10))
	size, err := b.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	if size != (Size{W: 20, H: 10}) {
		t.Errorf("SelfSize = %v, want 20x10", size)
	}
}

// TestImageBox_FitOneExtent scales uniformly against the fixed width.
func TestImageBox_FitOneExtent(t *testing.T) {
	b := NewImageBox(NewPixmap(20, 10))
	b.SetImageSizeMode(ImageFit)
	b.SetW(40)

	c, err := b.ContentSize()
	if err != nil {
		t.Fatal(err)
	}
	if c != (Size{W: 40, H: 20}) {
		t.Errorf("ContentSize = %v, want 40x20", c)
	}
}

// TestImageBox_FitBothExtents touches the tighter extent from inside.
func TestImageBox_FitBothExtents(t *testing.T) {
	b := NewImageBox(NewPixmap(20, 10))
	b.SetImageSizeMode(ImageFit)
	b.SetSize(30, 30)

	c, err := b.ContentSize()
	if err != nil {
		t.Fatal(err)
	}
	// scale = min(30/20, 30/10) = 1.5
	if c != (Size{W: 30, H: 15}) {
		t.Errorf("ContentSize = %v, want 30x15", c)
	}
}

// TestImageBox_FitNeedsExtent rejects fit mode with no fixed dimension.
func TestImageBox_FitNeedsExtent(t *testing.T) {
	b := NewImageBox(NewPixmap(20, 10))
	b.SetImageSizeMode(ImageFit)

	_, err := b.SelfSize()
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
}

// TestImageBox_FillBothExtents stretches to the fixed size.
func TestImageBox_FillBothExtents(t *testing.T) {
	b := NewImageBox(NewPixmap(20, 10))
	b.SetImageSizeMode(ImageFill)
	b.SetSize(30, 30)

	c, err := b.ContentSize()
	if err != nil {
		t.Fatal(err)
	}
	if c != (Size{W: 30, H: 30}) {
		t.Errorf("ContentSize = %v, want 30x30", c)
	}
}

// TestImageBox_FillOneExtent covers the free axis too: the unbounded
// substitute extent drives the scale, which then overflows the fixed
// dimension at measurement.
func TestImageBox_FillOneExtent(t *testing.T) {
	b := NewImageBox(NewPixmap(20, 10))
	b.SetImageSizeMode(ImageFill)
	b.SetH(20)

	_, err := b.SelfSize()
	var se *SizingError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *SizingError", err)
	}
}

// TestImageBox_Draw pastes the pixels.
func TestImageBox_Draw(t *testing.T) {
	img := NewPixmap(4, 4)
	img.Clear(Green)
	b := NewImageBox(img)

	size, err := b.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	pm := NewPixmap(size.W, size.H)
	if err := b.Draw(NewPainter(pm)); err != nil {
		t.Fatal(err)
	}
	if got := pm.GetPixel(2, 2); got != Green {
		t.Errorf("pixel = %v, want %v", got, Green)
	}
}

// TestImageBox_DrawAlphaBlend scales the paste alpha.
func TestImageBox_DrawAlphaBlend(t *testing.T) {
	img := NewPixmap(4, 4)
	img.Clear(Black)
	b := NewImageBox(img)
	b.SetAlphaBlend(true)
	b.SetAlphaAdjust(0.5)

	size, err := b.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	pm := NewPixmap(size.W, size.H)
	pm.Clear(White)
	if err := b.Draw(NewPainter(pm)); err != nil {
		t.Fatal(err)
	}
	got := pm.GetPixel(2, 2)
	if got.R < 120 || got.R > 135 {
		t.Errorf("channel = %d, want ~127", got.R)
	}
}
