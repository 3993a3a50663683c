package box

import "fmt"

// Align places content inside a larger area, on both axes at once.
// The zero value is AlignCenter.
type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
	AlignTop
	AlignBottom
	AlignTopLeft
	AlignTopRight
	AlignBottomLeft
	AlignBottomRight
)

// alignTokens maps theme-file tokens to alignments. Two-letter tokens
// accept either order ("tl" and "lt" both mean top-left).
var alignTokens = map[string]Align{
	"c": AlignCenter,
	"l": AlignLeft, "r": AlignRight,
	"t": AlignTop, "b": AlignBottom,
	"tl": AlignTopLeft, "lt": AlignTopLeft,
	"tr": AlignTopRight, "rt": AlignTopRight,
	"bl": AlignBottomLeft, "lb": AlignBottomLeft,
	"br": AlignBottomRight, "rb": AlignBottomRight,
}

// ParseAlign resolves an alignment token ("c", "l", "r", "t", "b", or a
// two-letter corner like "tl"). Unknown tokens are an error.
func ParseAlign(token string) (Align, error) {
	a, ok := alignTokens[token]
	if !ok {
		return AlignCenter, fmt.Errorf("box: invalid alignment token %q", token)
	}
	return a, nil
}

// factors returns the horizontal and vertical placement factors:
// 0 sticks to the start edge, 0.5 centers, 1 sticks to the end edge.
func (a Align) factors() (h, v float64) {
	switch a {
	case AlignLeft:
		return 0, 0.5
	case AlignRight:
		return 1, 0.5
	case AlignTop:
		return 0.5, 0
	case AlignBottom:
		return 0.5, 1
	case AlignTopLeft:
		return 0, 0
	case AlignTopRight:
		return 1, 0
	case AlignBottomLeft:
		return 0, 1
	case AlignBottomRight:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignTopLeft:
		return "top-left"
	case AlignTopRight:
		return "top-right"
	case AlignBottomLeft:
		return "bottom-left"
	case AlignBottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("Align(%d)", uint8(a))
}

// alignOffset returns where content of the given size sits inside avail.
// Overflowing content aligns to the start edge on that axis.
func alignOffset(a Align, avail, content Size) Position {
	h, v := a.factors()
	var p Position
	if avail.W > content.W {
		p.X = int(float64(avail.W-content.W) * h)
	}
	if avail.H > content.H {
		p.Y = int(float64(avail.H-content.H) * v)
	}
	return p
}

// alignAxis places a length inside an available length on one axis.
func alignAxis(factor float64, avail, length int) int {
	if avail <= length {
		return 0
	}
	return int(float64(avail-length) * factor)
}
