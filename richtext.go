package box

import "strings"

// Shadow is the default shadow color for shadowed text.
var Shadow = RGBA(0, 0, 0, 150)

// textSegment is one run of a color-marked string.
type textSegment struct {
	text  string
	color Color
	tint  bool // color overrides the base style
}

// parseColorMarkup splits s at <#rrggbb> and <#rgb> markers; the marker
// colors the text that follows it, until the next marker. Any malformed
// marker voids the markup: the whole string comes back as one untinted
// segment.
func parseColorMarkup(s string) []textSegment {
	var segs []textSegment
	rest := s
	cur := textSegment{}
	for {
		i := strings.Index(rest, "<#")
		if i == -1 {
			cur.text = rest
			segs = append(segs, cur)
			break
		}
		j := strings.IndexByte(rest[i:], '>')
		if j == -1 {
			return []textSegment{{text: s}}
		}
		j += i
		c, err := ParseHex("#" + rest[i+2:j])
		if err != nil {
			return []textSegment{{text: s}}
		}
		cur.text = rest[:i]
		segs = append(segs, cur)
		cur = textSegment{color: c, tint: true}
		rest = rest[j+1:]
	}
	return segs
}

// ColoredText builds an HSplit of text runs from a string with inline
// <#rrggbb> / <#rgb> color markers. A marker recolors everything after
// it; text before the first marker keeps the style's color. Malformed
// markers disable the markup and render the raw string.
func ColoredText(s string, style TextStyle) *Split {
	hs := NewHSplit().SetSep(0)
	hs.SetPadding(2)
	for _, seg := range parseColorMarkup(s) {
		if seg.text == "" {
			continue
		}
		segStyle := style
		if seg.tint {
			segStyle.Color = seg.color
		}
		t := NewTextBox(seg.text, segStyle)
		t.SetPadding(0)
		hs.AddChild(t)
	}
	return hs
}

// ShadowedText builds a frame stacking the text over a displaced copy
// in the shadow color. A transparent shadow color omits the shadow
// layer. Pass Auto for an unconstrained dimension.
func ShadowedText(s string, style TextStyle, shadow Color, w, h int) *Frame {
	frame := NewFrame()
	frame.SetSize(w, h)
	frame.SetContentAlign(AlignCenter)

	if shadow.A > 0 {
		shadowStyle := style
		shadowStyle.Color = shadow
		st := NewTextBox(s, shadowStyle)
		st.SetOffset(2, 2)
		frame.AddChild(st)
	}
	frame.AddChild(NewTextBox(s, style))
	return frame
}
