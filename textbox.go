package box

import (
	"math"
	"strings"

	"github.com/gogpu/box/text"
)

// unboundedLines stands in for "no line limit" when the real line count
// is used.
const unboundedLines = 99999

// Overflow selects what happens to text that does not fit its width.
type Overflow uint8

const (
	// OverflowShrink truncates with a trailing ellipsis.
	OverflowShrink Overflow = iota

	// OverflowClip truncates hard.
	OverflowClip
)

const ellipsis = "..."

// TextStyle bundles the font, size, and color of a piece of text.
type TextStyle struct {
	// Font is a font name resolved through the text registry
	// (see text.Load). Empty means the theme's default font.
	Font string

	// Size is the font size in pixels. It is also the text line height.
	Size int

	// Color is the text fill.
	Color Color
}

// DefaultTextStyle returns the theme's default style: its default font
// at 16 pixels, black.
func DefaultTextStyle() TextStyle {
	return TextStyle{Size: 16, Color: Black}
}

// TextBox is a leaf that renders (possibly multi-line) text.
//
// Explicit newlines always break lines. With a fixed width, overlong
// lines either wrap onto further lines or are truncated, depending on
// the wrap flag; the line count caps how many lines render, and the
// final line truncates with or without an ellipsis per the overflow
// mode. The content height is lineCount*(size+lineSep)-lineSep; with
// the real-line-count flag the actual number of lines replaces the
// configured cap in that formula.
type TextBox struct {
	Box
	text             string
	style            TextStyle
	lineCount        int // 0 = derive from useRealLineCount
	lineSep          int
	wrap             bool
	overflow         Overflow
	useRealLineCount bool
}

// NewTextBox creates a text box. Defaults: wrap on, shrink overflow,
// one line (unless the real line count is enabled), line gap 2,
// padding 2.
func NewTextBox(s string, style TextStyle) *TextBox {
	t := &TextBox{
		text:    s,
		style:   style,
		lineSep: 2,
		wrap:    true,
	}
	t.Box.init(t, "TextBox")
	t.SetPadding(2)
	return t
}

// SetText replaces the text.
func (t *TextBox) SetText(s string) *TextBox {
	t.ensureMutable()
	t.text = s
	return t
}

// SetStyle replaces the style.
func (t *TextBox) SetStyle(style TextStyle) *TextBox {
	t.ensureMutable()
	t.style = style
	return t
}

// SetLineCount caps the number of rendered lines.
func (t *TextBox) SetLineCount(n int) *TextBox {
	t.ensureMutable()
	t.lineCount = n
	return t
}

// SetLineSep sets the gap between lines.
func (t *TextBox) SetLineSep(sep int) *TextBox {
	t.ensureMutable()
	t.lineSep = sep
	return t
}

// SetWrap turns wrapping on or off. Without wrapping, an overlong line
// truncates instead of continuing below.
func (t *TextBox) SetWrap(wrap bool) *TextBox {
	t.ensureMutable()
	t.wrap = wrap
	return t
}

// SetOverflow selects ellipsis or hard truncation.
func (t *TextBox) SetOverflow(o Overflow) *TextBox {
	t.ensureMutable()
	t.overflow = o
	return t
}

// SetUseRealLineCount makes the content height follow the actual number
// of laid-out lines instead of the configured line count.
func (t *TextBox) SetUseRealLineCount(use bool) *TextBox {
	t.ensureMutable()
	t.useRealLineCount = use
	return t
}

// maxLines resolves the effective line cap.
func (t *TextBox) maxLines() int {
	if t.lineCount > 0 {
		return t.lineCount
	}
	if t.useRealLineCount {
		return unboundedLines
	}
	return 1
}

// face resolves the style's font at its size.
func (t *TextBox) face() (*text.Face, error) {
	name := t.style.Font
	if name == "" {
		name = themeDefaultFont()
	}
	src, err := text.Load(name)
	if err != nil {
		return nil, err
	}
	return src.Face(float64(t.style.Size)), nil
}

// clipIndex finds the longest rune prefix of line whose advance plus the
// suffix still fits width, by binary search. Returns -1 when the whole
// line fits.
func clipIndex(face *text.Face, line []rune, width int, suffix string) int {
	if face.Advance(string(line)+suffix) <= float64(width) {
		return -1
	}
	l, r := 0, len(line)
	for l <= r {
		m := (l + r) / 2
		w := face.Advance(string(line[:m]) + suffix)
		switch {
		case w < float64(width):
			l = m + 1
		case w > float64(width):
			r = m - 1
		default:
			return m
		}
	}
	return max(r, 0)
}

// lines lays the text out: explicit newlines split, then each line is
// wrapped or truncated against the fixed width when there is one.
func (t *TextBox) lines(face *text.Face) []string {
	raw := strings.Split(t.text, "\n")
	if t.w == Auto {
		if len(raw) > t.maxLines() {
			raw = raw[:t.maxLines()]
		}
		return raw
	}

	width := t.w - 2*t.hpadding
	suffix := ""
	if t.overflow == OverflowShrink {
		suffix = ellipsis
	}

	var out []string
	for _, line := range raw {
		if len(out) >= t.maxLines() {
			break
		}
		runes := []rune(line)
		if !t.wrap {
			if idx := clipIndex(face, runes, width, suffix); idx >= 0 {
				out = append(out, string(runes[:idx])+suffix)
			} else {
				out = append(out, line)
			}
			continue
		}
		for {
			lineSuffix := ""
			if len(out) == t.maxLines()-1 {
				lineSuffix = suffix
			}
			idx := clipIndex(face, runes, width, lineSuffix)
			if idx < 0 {
				out = append(out, string(runes))
				break
			}
			if len(runes) == 0 {
				// Even the suffix alone overflows an empty line.
				out = append(out, lineSuffix)
				break
			}
			// Always consume at least one rune so wrapping terminates.
			idx = max(idx, 1)
			out = append(out, string(runes[:idx])+lineSuffix)
			runes = runes[idx:]
			if len(out) >= t.maxLines() {
				break
			}
		}
	}
	if len(out) > t.maxLines() {
		out = out[:t.maxLines()]
	}
	return out
}

func (t *TextBox) contentSize() (Size, error) {
	face, err := t.face()
	if err != nil {
		return Size{}, err
	}
	lines := t.lines(face)

	w := 0
	for _, line := range lines {
		w = max(w, int(math.Ceil(face.Advance(line))))
	}

	lineCount := t.maxLines()
	if t.useRealLineCount {
		lineCount = len(lines)
	}
	h := lineCount*(t.style.Size+t.lineSep) - t.lineSep

	if t.w != Auto {
		w = t.w - 2*t.hpadding
	}
	if t.h != Auto {
		h = t.h - 2*t.vpadding
	}
	return Size{W: w, H: h}, nil
}

func (t *TextBox) drawContent(p *Painter) error {
	face, err := t.face()
	if err != nil {
		return err
	}
	lines := t.lines(face)

	textH := (t.style.Size+t.lineSep)*len(lines) - t.lineSep
	h, v := t.contentAlign.factors()
	startY := alignAxis(v, p.Size().H, textH)

	for i, line := range lines {
		lw := int(math.Ceil(face.Advance(line)))
		x := alignAxis(h, p.Size().W, lw)
		y := startY + i*(t.style.Size+t.lineSep)
		p.MoveResizeRegion(x, y, Size{W: lw, H: t.style.Size})
		p.Text(line, Position{}, face, t.style.Color)
		p.Pop()
	}
	return nil
}
