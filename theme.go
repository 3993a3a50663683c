package box

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/box/text"
)

// Theme names the fonts, colors, and text styles a document renders
// with. Themes load from YAML and take effect through Apply; widgets
// that leave a font or style unset fall back to the applied theme.
type Theme struct {
	// FontDir is where font names resolve to files (see text.SetFontDir).
	FontDir string `yaml:"font_dir"`

	// Fonts names the theme's font roles.
	Fonts ThemeFonts `yaml:"fonts"`

	// Colors maps theme color names to hex or named color values.
	Colors map[string]string `yaml:"colors"`

	// Styles maps style names to reusable text styles.
	Styles map[string]ThemeStyle `yaml:"styles"`
}

// ThemeFonts names the fonts a theme uses by role.
type ThemeFonts struct {
	Default string `yaml:"default"`
	Bold    string `yaml:"bold"`
	Heavy   string `yaml:"heavy"`
	Emoji   string `yaml:"emoji"`
}

// ThemeStyle is the YAML form of a TextStyle. An empty font means the
// theme default, a zero size means 16, the color is hex or a named
// color.
type ThemeStyle struct {
	Font  string `yaml:"font"`
	Size  int    `yaml:"size"`
	Color string `yaml:"color"`
}

// DefaultTheme returns the built-in theme: fonts named by role, 16px
// black default style.
func DefaultTheme() *Theme {
	return &Theme{
		Fonts: ThemeFonts{
			Default: "default",
			Bold:    "bold",
			Heavy:   "heavy",
		},
		Styles: map[string]ThemeStyle{
			"default": {Size: 16, Color: "black"},
			"title":   {Font: "bold", Size: 24, Color: "black"},
			"caption": {Size: 12, Color: "gray"},
		},
	}
}

// LoadTheme reads a YAML theme file, layered over the default theme.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("box: parse theme %s: %w", path, err)
	}
	return t, nil
}

// LoadOptionalTheme is LoadTheme, except a missing file yields the
// default theme instead of an error.
func LoadOptionalTheme(path string) (*Theme, error) {
	t, err := LoadTheme(path)
	if os.IsNotExist(err) {
		return DefaultTheme(), nil
	}
	return t, err
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// Apply makes the theme current: its font directory and emoji font are
// pushed into the text registry, and unset widget fonts and styles
// resolve against it from now on.
func (t *Theme) Apply() {
	if t.FontDir != "" {
		text.SetFontDir(t.FontDir)
	}
	if t.Fonts.Emoji != "" {
		text.SetEmojiFont(t.Fonts.Emoji)
	}
	themeMu.Lock()
	currentTheme = t
	themeMu.Unlock()
	Logger().Debug("theme applied", "font_dir", t.FontDir, "default_font", t.Fonts.Default)
}

// CurrentTheme returns the applied theme.
func CurrentTheme() *Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// themeDefaultFont resolves the font name used when a style leaves the
// font empty.
func themeDefaultFont() string {
	return CurrentTheme().Fonts.Default
}

// Color resolves a theme color name; names not in the theme fall
// through to the named and hex colors ParseColor accepts.
func (t *Theme) Color(name string) (Color, error) {
	if v, ok := t.Colors[name]; ok {
		name = v
	}
	return ParseColor(name)
}

// Style resolves a named text style against the theme, filling the
// font, size, and color defaults.
func (t *Theme) Style(name string) (TextStyle, error) {
	ts, ok := t.Styles[name]
	if !ok {
		return TextStyle{}, fmt.Errorf("box: theme has no style %q", name)
	}
	style := TextStyle{Font: ts.Font, Size: ts.Size, Color: Black}
	if style.Size == 0 {
		style.Size = 16
	}
	if ts.Color != "" {
		c, err := t.Color(ts.Color)
		if err != nil {
			return TextStyle{}, fmt.Errorf("box: theme style %q: %w", name, err)
		}
		style.Color = c
	}
	return style, nil
}
