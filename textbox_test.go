package box

import (
	"strings"
	"testing"
)

// TestTextBox_SingleLineHeight is the line formula with one line:
// height equals the font size, plus the default padding.
func TestTextBox_SingleLineHeight(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox("hello", DefaultTextStyle())

	size, err := tb.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	if size.H != 16+2*2 {
		t.Errorf("SelfSize.H = %d, want 20", size.H)
	}
	if size.W <= 2*2 {
		t.Errorf("SelfSize.W = %d, want wider than the padding", size.W)
	}
}

// TestTextBox_RealLineCount follows explicit newlines when enabled.
func TestTextBox_RealLineCount(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox("a\nb\nc", DefaultTextStyle())
	tb.SetUseRealLineCount(true)

	size, err := tb.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	// Three lines: 3*(16+2) - 2 content height plus padding.
	if size.H != 52+2*2 {
		t.Errorf("SelfSize.H = %d, want 56", size.H)
	}
}

// TestTextBox_DefaultLineCapIsOne drops lines past the cap.
func TestTextBox_DefaultLineCapIsOne(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox("a\nb\nc", DefaultTextStyle())
	face, err := tb.face()
	if err != nil {
		t.Fatal(err)
	}
	lines := tb.lines(face)
	if len(lines) != 1 || lines[0] != "a" {
		t.Errorf("lines = %q, want [a]", lines)
	}
}

// TestTextBox_WrapWithEllipsis wraps against the fixed width and
// truncates the last allowed line with an ellipsis.
func TestTextBox_WrapWithEllipsis(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox(strings.Repeat("hello world ", 10), DefaultTextStyle())
	tb.SetW(80)
	tb.SetLineCount(2)

	face, err := tb.face()
	if err != nil {
		t.Fatal(err)
	}
	lines := tb.lines(face)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[1], "...") {
		t.Errorf("last line %q lacks the ellipsis", lines[1])
	}
	width := float64(80 - 2*2)
	for i, line := range lines {
		if face.Advance(line) > width {
			t.Errorf("line %d %q wider than %v", i, line, width)
		}
	}
}

// TestTextBox_ClipOverflow truncates hard, without an ellipsis.
func TestTextBox_ClipOverflow(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox(strings.Repeat("x", 100), DefaultTextStyle())
	tb.SetW(60)
	tb.SetWrap(false)
	tb.SetOverflow(OverflowClip)

	face, err := tb.face()
	if err != nil {
		t.Fatal(err)
	}
	lines := tb.lines(face)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if strings.Contains(lines[0], "...") {
		t.Errorf("clipped line %q carries an ellipsis", lines[0])
	}
	if len(lines[0]) == 100 {
		t.Error("line was not truncated")
	}
	if face.Advance(lines[0]) > 60-2*2 {
		t.Errorf("clipped line %q still too wide", lines[0])
	}
}

// TestTextBox_ShortLineUntouched keeps text that already fits.
func TestTextBox_ShortLineUntouched(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox("hi", DefaultTextStyle())
	tb.SetW(200)

	face, err := tb.face()
	if err != nil {
		t.Fatal(err)
	}
	lines := tb.lines(face)
	if len(lines) != 1 || lines[0] != "hi" {
		t.Errorf("lines = %q, want [hi]", lines)
	}
}

// TestTextBox_EmptyNarrow measures empty text inside a width too narrow
// for even the ellipsis: the line becomes just the suffix, no panic.
func TestTextBox_EmptyNarrow(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox("", DefaultTextStyle())
	tb.SetW(8)

	size, err := tb.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	if size != (Size{W: 8, H: 20}) {
		t.Errorf("SelfSize = %v, want {8 20}", size)
	}
	face, err := tb.face()
	if err != nil {
		t.Fatal(err)
	}
	if lines := tb.lines(face); len(lines) != 1 || lines[0] != ellipsis {
		t.Errorf("lines = %q, want [%s]", lines, ellipsis)
	}
}

// TestTextBox_BlankLineNarrow wraps text with blank lines against a
// narrow width without choking on the empty lines.
func TestTextBox_BlankLineNarrow(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox("a\n\nb", DefaultTextStyle())
	tb.SetW(8)
	tb.SetLineCount(3)

	if _, err := tb.SelfSize(); err != nil {
		t.Fatal(err)
	}
}

// TestTextBox_Draw renders visible glyph pixels.
func TestTextBox_Draw(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox("Mg", DefaultTextStyle())

	size, err := tb.SelfSize()
	if err != nil {
		t.Fatal(err)
	}
	pm := NewPixmap(size.W, size.H)
	if err := tb.Draw(NewPainter(pm)); err != nil {
		t.Fatal(err)
	}

	covered := 0
	data := pm.Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("no pixels drawn")
	}
}

// TestTextBox_UnknownFont surfaces the registry error from measurement.
func TestTextBox_UnknownFont(t *testing.T) {
	registerTestFont(t)
	tb := NewTextBox("x", TextStyle{Font: "no-such-font", Size: 16, Color: Black})
	if _, err := tb.SelfSize(); err == nil {
		t.Fatal("expected an error for an unknown font")
	}
}
