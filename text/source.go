package text

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file (TTF or OTF).
// One Source can create multiple Face instances at different sizes.
// Source is heavyweight and should be shared across the application;
// the package-level [Load] does that automatically.
//
// Source is safe for concurrent use.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the Source itself.
	addr *Source

	// Font data. data is the raw bytes, font the parsed form.
	data []byte
	font *opentype.Font

	// name is the font name as requested or derived from the file path.
	name string

	// mu protects the face cache.
	mu    sync.RWMutex
	faces map[float64]*Face

	// bufMu guards buf, the scratch buffer for sfnt lookups.
	bufMu sync.Mutex
	buf   sfnt.Buffer
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewSource(name string, data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font %q: %w", name, err)
	}

	s := &Source{
		data:  dataCopy,
		font:  f,
		name:  name,
		faces: make(map[float64]*Face),
	}
	s.addr = s // Self-reference for copy detection.

	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	return NewSource(name, data)
}

// Face returns the face for this source at the given size (in pixels).
// Faces are cached per size; the returned Face is shared.
//
// Panics if s is nil (e.g. when a Load error was ignored).
func (s *Source) Face(size float64) *Face {
	if s == nil {
		panic("text: Source is nil — did you check the error from Load?")
	}
	s.copyCheck()

	s.mu.RLock()
	f, ok := s.faces[size]
	s.mu.RUnlock()
	if ok {
		return f
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[size]; ok {
		return f
	}
	f = newFace(s, size)
	s.faces[size] = f
	return f
}

// Name returns the font name.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// HasGlyph reports whether the font maps r to a real glyph.
// Missing runes map to glyph 0 (.notdef), which renders as tofu.
func (s *Source) HasGlyph(r rune) bool {
	s.copyCheck()
	s.bufMu.Lock()
	gid, err := s.font.GlyphIndex(&s.buf, r)
	s.bufMu.Unlock()
	return err == nil && gid != 0
}

// copyCheck panics if Source was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("text: Source must not be copied by value")
	}
}

// registry is the process-wide font registry backing Load.
var registry = struct {
	mu    sync.RWMutex
	dir   string
	emoji string
	cache map[string]*Source // keyed by resolved path
}{
	cache: make(map[string]*Source),
}

// SetFontDir sets the directory Load resolves bare font names against.
func SetFontDir(dir string) {
	registry.mu.Lock()
	registry.dir = dir
	registry.mu.Unlock()
}

// FontDir returns the current font directory.
func FontDir() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.dir
}

// SetEmojiFont sets the name of the font used as the fallback face for
// symbolic runs. The name is resolved through Load on first use.
func SetEmojiFont(name string) {
	registry.mu.Lock()
	registry.emoji = name
	registry.mu.Unlock()
}

// EmojiFont returns the configured symbolic fallback font name, or ""
// when none is set.
func EmojiFont() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.emoji
}

// Register adds a Source to the registry under the given name, making it
// resolvable through Load without touching the filesystem. This is how
// embedded fonts are installed.
func Register(name string, s *Source) {
	s.copyCheck()
	registry.mu.Lock()
	registry.cache[name] = s
	registry.mu.Unlock()
}

// Load resolves a font name to a Source. Resolution order:
//
//  1. a Source previously installed under name via [Register]
//  2. name as a literal path
//  3. name under the font directory (see [SetFontDir])
//  4. name under the font directory with a .ttf, then .otf suffix
//
// Sources are cached by resolved path; repeated loads of the same font
// return the same Source. When no candidate exists, Load returns a
// *FontNotFoundError listing every path tried.
func Load(name string) (*Source, error) {
	registry.mu.RLock()
	s, ok := registry.cache[name]
	dir := registry.dir
	registry.mu.RUnlock()
	if ok {
		return s, nil
	}

	candidates := []string{name}
	if dir != "" && !filepath.IsAbs(name) {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	if filepath.Ext(name) == "" {
		base := name
		if dir != "" && !filepath.IsAbs(name) {
			base = filepath.Join(dir, name)
		}
		candidates = append(candidates, base+".ttf", base+".otf")
	}

	path := ""
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			path = c
			break
		}
	}
	if path == "" {
		return nil, &FontNotFoundError{Name: name, Tried: candidates}
	}

	registry.mu.RLock()
	s, ok = registry.cache[path]
	registry.mu.RUnlock()
	if ok {
		return s, nil
	}

	s, err := NewSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	s.name = name

	registry.mu.Lock()
	registry.cache[path] = s
	registry.mu.Unlock()

	return s, nil
}

// loadEmoji resolves the configured symbolic fallback font, or nil when
// none is configured or it fails to load. Failures are logged, not fatal;
// symbolic runs then render with the primary face (usually as tofu).
func loadEmoji() *Source {
	name := EmojiFont()
	if name == "" {
		return nil
	}
	s, err := Load(name)
	if err != nil {
		logger().Debug("emoji font unavailable", "name", name, "error", err)
		return nil
	}
	return s
}
