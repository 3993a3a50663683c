package text

import "sync"

// Shaper measures text for layout. Implementations provide different
// levels of shaping support:
//   - BuiltinShaper: glyph advances plus kerning pairs via
//     golang.org/x/image/font. Good for Latin, Cyrillic, Greek, CJK.
//   - HarfBuzzShaper: full OpenType shaping (ligatures, contextual
//     alternates, complex scripts) via go-text/typesetting. Opt in with
//     SetShaper(NewHarfBuzzShaper()).
type Shaper interface {
	// Advance returns the advance width of text in pixels when rendered
	// with the given face.
	Advance(text string, face *Face) float64
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = BuiltinShaper{}
)

// SetShaper sets the global shaper used for all text measurement.
// Pass nil to reset to the default BuiltinShaper.
//
//	text.SetShaper(text.NewHarfBuzzShaper())
//	defer text.SetShaper(nil) // reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = BuiltinShaper{}
	}
	globalShaper = s
}

// getShaper returns the current global shaper.
func getShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// BuiltinShaper measures text by summing glyph advances and kerning
// pairs. It handles no ligatures or complex-script reordering, which is
// fine for the scripts the builtin rasterizer can draw anyway.
type BuiltinShaper struct{}

// Advance implements Shaper.
func (BuiltinShaper) Advance(text string, face *Face) float64 {
	total := 0.0
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			total += face.Kern(prev, r)
		}
		total += face.GlyphAdvance(r)
		prev = r
	}
	return total
}
