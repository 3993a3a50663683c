package box

import (
	"os"
	"path/filepath"
	"testing"
)

const themeYAML = `
font_dir: /tmp/fonts
fonts:
  default: roboto
  bold: roboto-bold
  emoji: noto-emoji
colors:
  accent: "#ff0000"
styles:
  headline:
    font: roboto-bold
    size: 24
    color: accent
  plain:
    color: white
`

// TestLoadTheme parses YAML over the defaults.
func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(themeYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.FontDir != "/tmp/fonts" {
		t.Errorf("FontDir = %q", th.FontDir)
	}
	if th.Fonts.Default != "roboto" || th.Fonts.Emoji != "noto-emoji" {
		t.Errorf("Fonts = %+v", th.Fonts)
	}
	// The default theme's heavy font survives the overlay.
	if th.Fonts.Heavy != "heavy" {
		t.Errorf("Fonts.Heavy = %q, want the default", th.Fonts.Heavy)
	}
}

// TestLoadTheme_Missing reports the file error; the optional variant
// falls back to the defaults.
func TestLoadTheme_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadTheme(path); err == nil {
		t.Error("LoadTheme on a missing file: expected error")
	}
	th, err := LoadOptionalTheme(path)
	if err != nil {
		t.Fatalf("LoadOptionalTheme: %v", err)
	}
	if th.Fonts.Default != "default" {
		t.Errorf("optional fallback Fonts.Default = %q", th.Fonts.Default)
	}
}

// TestLoadTheme_Malformed reports a parse error.
func TestLoadTheme_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fonts: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTheme(path); err == nil {
		t.Error("expected a parse error")
	}
}

// TestTheme_Style resolves the font, size, and color chain.
func TestTheme_Style(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(themeYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}

	headline, err := th.Style("headline")
	if err != nil {
		t.Fatal(err)
	}
	if headline.Font != "roboto-bold" || headline.Size != 24 || headline.Color != Red {
		t.Errorf("headline = %+v", headline)
	}

	// Size defaults and direct color names.
	plain, err := th.Style("plain")
	if err != nil {
		t.Fatal(err)
	}
	if plain.Size != 16 || plain.Color != White {
		t.Errorf("plain = %+v", plain)
	}

	if _, err := th.Style("nope"); err == nil {
		t.Error("unknown style: expected error")
	}
}

// TestTheme_Color resolves theme names, falling through to hex and
// named colors.
func TestTheme_Color(t *testing.T) {
	th := DefaultTheme()
	th.Colors = map[string]string{"brand": "#336699"}

	if c, err := th.Color("brand"); err != nil || c != RGB(0x33, 0x66, 0x99) {
		t.Errorf("Color(brand) = %v, %v", c, err)
	}
	if c, err := th.Color("red"); err != nil || c != Red {
		t.Errorf("Color(red) = %v, %v", c, err)
	}
	if _, err := th.Color("nope"); err == nil {
		t.Error("unknown color: expected error")
	}
}

// TestTheme_Apply switches the theme widgets resolve against.
func TestTheme_Apply(t *testing.T) {
	defer DefaultTheme().Apply()

	th := DefaultTheme()
	th.Fonts.Default = "custom-default"
	th.Apply()

	if CurrentTheme().Fonts.Default != "custom-default" {
		t.Errorf("CurrentTheme default font = %q", CurrentTheme().Fonts.Default)
	}
	if themeDefaultFont() != "custom-default" {
		t.Errorf("themeDefaultFont = %q", themeDefaultFont())
	}
}
