package box

import "testing"

// TestParseHex covers the accepted formats with and without '#'.
func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"f00", RGB(255, 0, 0)},
		{"#f00", RGB(255, 0, 0)},
		{"f008", RGBA(255, 0, 0, 136)},
		{"ff8040", RGB(255, 128, 64)},
		{"#FF8040", RGB(255, 128, 64)},
		{"ff804080", RGBA(255, 128, 64, 128)},
	}
	for _, c := range cases {
		got, err := ParseHex(c.in)
		if err != nil {
			t.Errorf("ParseHex(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHex(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// TestParseHex_Invalid verifies malformed input is reported.
func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "ff", "zzz", "12345", "ggg", "#ff00zz"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q): expected error", in)
		}
	}
}

// TestHex_Lenient verifies the lenient form falls back to opaque black.
func TestHex_Lenient(t *testing.T) {
	if got := Hex("not-a-color"); got != Black {
		t.Errorf("Hex on invalid input = %v, want %v", got, Black)
	}
	if got := Hex("#00ff00"); got != RGB(0, 255, 0) {
		t.Errorf("Hex(#00ff00) = %v", got)
	}
}

// TestLerp pins the endpoints and checks the midpoint.
func TestLerp(t *testing.T) {
	a, b := RGB(0, 0, 0), RGB(255, 255, 255)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, -5); got != a {
		t.Errorf("Lerp(-5) = %v, want clamp to %v", got, a)
	}
	if got := a.Lerp(b, 5); got != b {
		t.Errorf("Lerp(5) = %v, want clamp to %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R < 127 || mid.R > 128 {
		t.Errorf("Lerp(0.5).R = %d, want ~127", mid.R)
	}
}

// TestParseColor resolves names first, hex second.
func TestParseColor(t *testing.T) {
	if c, err := ParseColor("red"); err != nil || c != Red {
		t.Errorf("ParseColor(red) = %v, %v", c, err)
	}
	if c, err := ParseColor("grey"); err != nil || c != Gray {
		t.Errorf("ParseColor(grey) = %v, %v", c, err)
	}
	if c, err := ParseColor("#336699"); err != nil || c != RGB(0x33, 0x66, 0x99) {
		t.Errorf("ParseColor(#336699) = %v, %v", c, err)
	}
	if _, err := ParseColor("nosuch"); err == nil {
		t.Error("ParseColor(nosuch): expected error")
	}
}

// TestWithAlpha replaces only the alpha channel.
func TestWithAlpha(t *testing.T) {
	c := RGB(10, 20, 30).WithAlpha(40)
	if c != RGBA(10, 20, 30, 40) {
		t.Errorf("WithAlpha = %v", c)
	}
}

// TestFromColor round-trips through the standard color types.
func TestFromColor(t *testing.T) {
	c := RGBA(10, 20, 30, 200)
	if got := FromColor(c.NRGBA()); got != c {
		t.Errorf("FromColor(NRGBA()) = %v, want %v", got, c)
	}
}
