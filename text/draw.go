package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measure returns the pixel size text occupies when rendered with f:
// width is the shaped advance rounded up, height is ascent+descent.
func Measure(text string, f *Face) (w, h int) {
	return int(math.Ceil(f.Advance(text))), int(math.Ceil(f.LineHeight()))
}

// Draw renders text onto dst in the given color with the baseline at
// (x, baseline). Direction runs are laid out in visual order and
// symbolic runs render with the fallback face when one is configured.
func Draw(dst draw.Image, text string, f *Face, col color.Color, x, baseline float64) {
	if text == "" {
		return
	}
	src := image.NewUniform(col)
	for _, vr := range VisualRuns(text) {
		for _, run := range SplitRuns(vr.Text) {
			face := f
			if run.Symbolic {
				if fb := f.fallback(); fb != nil {
					face = fb
				}
			}
			x += drawRun(dst, run.Text, face, src, x, baseline)
		}
	}
}

// drawRun rasterizes a single uniform run and returns its advance.
func drawRun(dst draw.Image, s string, f *Face, src image.Image, x, baseline float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: f.ot,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(baseline)},
	}
	d.DrawString(s)
	return fromFixed(d.Dot.X - toFixed(x))
}
