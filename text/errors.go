package text

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")
)

// FontNotFoundError is returned by Load when no candidate path for a font
// name exists on disk.
type FontNotFoundError struct {
	// Name is the font name as requested.
	Name string

	// Tried lists every path that was checked, in order.
	Tried []string
}

func (e *FontNotFoundError) Error() string {
	return fmt.Sprintf("text: font %q not found (tried %s)", e.Name, strings.Join(e.Tried, ", "))
}
