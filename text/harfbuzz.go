package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// HarfBuzzShaper measures text with go-text/typesetting's HarfBuzz
// implementation. Compared to BuiltinShaper it applies the full OpenType
// machinery: ligature substitution, kerning pairs, contextual alternates,
// and complex-script shaping, so its advances match what a HarfBuzz-based
// renderer would produce.
//
// HarfBuzzShaper is safe for concurrent use. It caches parsed font.Font
// objects (thread-safe, read-only) per Source and creates a lightweight
// font.Face per call (font.Face is NOT safe for concurrent use). The
// shaping.HarfbuzzShaper instances are pooled since they carry mutable
// buffers.
type HarfBuzzShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*Source]*font.Font
}

// NewHarfBuzzShaper creates a HarfBuzzShaper ready for SetShaper.
func NewHarfBuzzShaper() *HarfBuzzShaper {
	return &HarfBuzzShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*Source]*font.Font),
	}
}

// Advance implements Shaper.
func (s *HarfBuzzShaper) Advance(text string, face *Face) float64 {
	if text == "" || face == nil {
		return 0
	}

	gtFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		// The builtin path can still measure this face.
		logger().Debug("harfbuzz shaper falling back to builtin", "font", face.Source().Name(), "error", err)
		return BuiltinShaper{}.Advance(text, face)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(gtFont),
		Size:      fixed.Int26_6(face.Size() * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.XAdvance
	}
	return fromFixed(advance)
}

// getOrCreateFont returns a cached go-text font.Font for the given
// source, parsing the font data on first use. font.Font is read-only and
// safe for concurrent use; the short-lived font.Face wrappers are not,
// which is why only the Font is cached.
func (s *HarfBuzzShaper) getOrCreateFont(src *Source) (*font.Font, error) {
	s.mu.RLock()
	f, ok := s.fontCache[src]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[src]; ok {
		return f, nil
	}

	gtFace, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[src] = gtFace.Font
	return gtFace.Font, nil
}

// detectScript returns the script of the first non-space rune. Simple
// heuristic; mixed-script text should be split into runs upstream.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
