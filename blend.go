package box

// Source-over compositing in the straight-alpha byte domain.
//
// Reference: Porter-Duff, "Compositing Digital Images" (1984). The math
// runs premultiplied internally and unpremultiplies on store, since the
// pixmap layout is straight alpha.

// mul255 multiplies two bytes treated as [0,1] fractions, rounding.
func mul255(a, b uint32) uint32 {
	return (a*b + 127) / 255
}

// blendPixel composites c over the pixel at data[i:i+4].
func blendPixel(data []uint8, i int, c Color) {
	sa := uint32(c.A)
	if sa == 255 {
		data[i+0] = c.R
		data[i+1] = c.G
		data[i+2] = c.B
		data[i+3] = 255
		return
	}
	if sa == 0 {
		return
	}

	da := uint32(data[i+3])
	if da == 0 {
		// Nothing underneath: the source color survives exactly,
		// no premultiply round-trip.
		data[i+0] = c.R
		data[i+1] = c.G
		data[i+2] = c.B
		data[i+3] = c.A
		return
	}

	inv := 255 - sa
	oa := sa + mul255(da, inv)

	blend := func(s, d uint8) uint8 {
		// Premultiply both sides, source-over, unpremultiply.
		n := mul255(uint32(s), sa) + mul255(mul255(uint32(d), da), inv)
		return uint8((n*255 + oa/2) / oa)
	}
	data[i+0] = blend(c.R, data[i+0])
	data[i+1] = blend(c.G, data[i+1])
	data[i+2] = blend(c.B, data[i+2])
	data[i+3] = uint8(oa)
}

// Blend composites src over p with its top-left corner at (x, y).
// alpha scales the source's own alpha: 255 leaves it unchanged.
// Out-of-bounds rows and columns are clipped.
func (p *Pixmap) Blend(src *Pixmap, x, y int, alpha uint8) {
	if alpha == 0 {
		return
	}
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= p.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			dx := x + sx
			if dx < 0 || dx >= p.width {
				continue
			}
			si := (sy*src.width + sx) * 4
			c := Color{R: src.data[si+0], G: src.data[si+1], B: src.data[si+2], A: src.data[si+3]}
			if alpha != 255 {
				c.A = uint8(mul255(uint32(c.A), uint32(alpha)))
			}
			blendPixel(p.data, (dy*p.width+dx)*4, c)
		}
	}
}

// Copy replaces p's pixels with src's, top-left corner at (x, y),
// alpha channel included. Out-of-bounds rows and columns are clipped.
func (p *Pixmap) Copy(src *Pixmap, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= p.height {
			continue
		}
		sx0, dx0 := 0, x
		if dx0 < 0 {
			sx0, dx0 = -dx0, 0
		}
		n := min(src.width-sx0, p.width-dx0)
		if n <= 0 {
			continue
		}
		si := (sy*src.width + sx0) * 4
		di := (dy*p.width + dx0) * 4
		copy(p.data[di:di+n*4], src.data[si:si+n*4])
	}
}

// MulAlpha returns a copy of the pixmap with every alpha value scaled by
// alpha/255. Color channels are untouched (straight alpha).
func (p *Pixmap) MulAlpha(alpha uint8) *Pixmap {
	out := p.Clone()
	if alpha == 255 {
		return out
	}
	for i := 3; i < len(out.data); i += 4 {
		out.data[i] = uint8(mul255(uint32(out.data[i]), uint32(alpha)))
	}
	return out
}
