package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// refGlyph is the reference glyph used to normalize text height across
// fonts. It is a full-height CJK glyph whose bounding box spans the whole
// em square; fonts without it fall back to the face ascent.
const refGlyph = '哇'

// Metrics holds the vertical metrics of a Face in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the em square.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// em square (positive).
	Descent float64

	// Height is the recommended line height.
	Height float64
}

// Face is a Source at a specific size. Faces are created through
// [Source.Face] and cached there, so they are shared; all methods are
// safe for concurrent use.
type Face struct {
	source *Source
	size   float64

	// mu guards ot: opentype faces keep internal scratch buffers and are
	// not safe for concurrent use.
	mu sync.Mutex
	ot font.Face
}

// newFace rasterizes a face at the given size. The source font is already
// parsed, so a failure here is an invariant violation, not a user error.
func newFace(s *Source, size float64) *Face {
	ot, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(fmt.Sprintf("text: creating face for %q at %g: %v", s.name, size, err))
	}
	return &Face{source: s, size: size, ot: ot}
}

// Source returns the Source this face was created from.
func (f *Face) Source() *Source { return f.source }

// Size returns the size of this face in pixels.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics {
	f.mu.Lock()
	m := f.ot.Metrics()
	f.mu.Unlock()
	return Metrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
		Height:  fromFixed(m.Height),
	}
}

// LineHeight returns ascent+descent, the tight height of a text line.
func (f *Face) LineHeight() float64 {
	m := f.Metrics()
	return m.Ascent + m.Descent
}

// HasGlyph reports whether the face has a real glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	return f.source.HasGlyph(r)
}

// GlyphAdvance returns the advance width of a single glyph in pixels.
// Missing runes report the .notdef (tofu) advance, since that is what
// gets rendered.
func (f *Face) GlyphAdvance(r rune) float64 {
	f.mu.Lock()
	a, _ := f.ot.GlyphAdvance(r)
	f.mu.Unlock()
	return fromFixed(a)
}

// Kern returns the kerning adjustment between two runes in pixels.
func (f *Face) Kern(r0, r1 rune) float64 {
	f.mu.Lock()
	k := f.ot.Kern(r0, r1)
	f.mu.Unlock()
	return fromFixed(k)
}

// Advance returns the advance width of text in pixels, measured through
// the active [Shaper]. Symbolic runs are measured with the fallback face
// when one is configured (see [SetEmojiFont]).
func (f *Face) Advance(text string) float64 {
	total := 0.0
	for _, run := range SplitRuns(text) {
		face := f
		if run.Symbolic {
			if fb := f.fallback(); fb != nil {
				face = fb
			}
		}
		total += getShaper().Advance(run.Text, face)
	}
	return total
}

// RefHeight returns the height used to normalize text placement: the
// bounding-box height of the reference glyph when the face has it, the
// face ascent otherwise.
func (f *Face) RefHeight() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.source.HasGlyph(refGlyph) {
		if b, _, ok := f.ot.GlyphBounds(refGlyph); ok {
			return fromFixed(b.Max.Y - b.Min.Y)
		}
	}
	return fromFixed(f.ot.Metrics().Ascent)
}

// fallback resolves the symbolic fallback face at this face's size, or
// nil when none is configured or this face already is the fallback.
func (f *Face) fallback() *Face {
	es := loadEmoji()
	if es == nil || es == f.source {
		return nil
	}
	return es.Face(f.size)
}

// fromFixed converts a 26.6 fixed-point value to pixels.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// toFixed converts pixels to a 26.6 fixed-point value.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}
