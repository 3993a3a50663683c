package box

import "fmt"

// SizingError is returned from measurement when a widget cannot compute
// its content size, for example a TextBox asked to wrap with no width
// bound anywhere above it.
type SizingError struct {
	// Widget names the widget kind that failed.
	Widget string

	// Reason describes what was missing.
	Reason string
}

func (e *SizingError) Error() string {
	return fmt.Sprintf("box: cannot size %s: %s", e.Widget, e.Reason)
}

// ConfigError is returned when a widget's configuration is inconsistent,
// detected at measurement time (fluent setters cannot return errors).
type ConfigError struct {
	Widget string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("box: invalid %s configuration: %s", e.Widget, e.Reason)
}

// CanvasSizeError is returned by Canvas.Render when the requested canvas
// exceeds the pixel budget.
type CanvasSizeError struct {
	Size Size
}

func (e *CanvasSizeError) Error() string {
	return fmt.Sprintf("box: canvas %dx%d exceeds the %dx%d pixel budget",
		e.Size.W, e.Size.H, maxCanvasSide, maxCanvasSide)
}
