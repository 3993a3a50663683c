package box

import (
	"fmt"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
)

// Background paints the area behind a widget's content. It is drawn
// with the painter's region set to the widget's post-margin rectangle.
type Background interface {
	Draw(p *Painter)
}

// FillBg fills the whole region with a color or gradient, optionally
// outlined.
type FillBg struct {
	Fill   Fill
	Stroke *Stroke
}

// NewFillBg creates a solid or gradient fill background.
func NewFillBg(fill Fill) *FillBg {
	return &FillBg{Fill: fill}
}

// WithStroke adds an outline.
func (bg *FillBg) WithStroke(c Color, width int) *FillBg {
	bg.Stroke = &Stroke{Color: c, Width: width}
	return bg
}

// Draw implements Background.
func (bg *FillBg) Draw(p *Painter) {
	p.Rect(Position{}, p.Size(), bg.Fill, bg.Stroke)
}

// RoundRectBg fills the region with a rounded rectangle.
type RoundRectBg struct {
	Fill    Fill
	Radius  int
	Stroke  *Stroke
	Corners Corners
}

// NewRoundRectBg creates a rounded-rectangle background.
func NewRoundRectBg(fill Fill, radius int) *RoundRectBg {
	return &RoundRectBg{Fill: fill, Radius: radius, Corners: AllCorners}
}

// WithStroke adds an outline.
func (bg *RoundRectBg) WithStroke(c Color, width int) *RoundRectBg {
	bg.Stroke = &Stroke{Color: c, Width: width}
	return bg
}

// WithCorners selects which corners are rounded.
func (bg *RoundRectBg) WithCorners(corners Corners) *RoundRectBg {
	bg.Corners = corners
	return bg
}

// Draw implements Background.
func (bg *RoundRectBg) Draw(p *Painter) {
	p.RoundRectCorners(Position{}, p.Size(), bg.Fill, bg.Radius, bg.Stroke, bg.Corners)
}

// BgMode controls how an image background covers its region.
type BgMode uint8

const (
	// BgFit scales the image uniformly until it covers the region,
	// cropping the overflowing axis per the alignment.
	BgFit BgMode = iota

	// BgFill stretches the image to the region, ignoring aspect ratio.
	BgFill

	// BgFixed pastes the image at its own size, placed per the
	// alignment.
	BgFixed

	// BgRepeat tiles the image from the top-left corner.
	BgRepeat
)

// ImageBg paints an image behind the widget. By default the image is
// blurred and faded slightly so foreground content stays readable.
type ImageBg struct {
	img   *Pixmap
	align Align
	mode  BgMode
}

// ImageBgOption configures NewImageBg.
type ImageBgOption func(*imageBgConfig)

type imageBgConfig struct {
	align      Align
	mode       BgMode
	blurRadius float64
	fade       float64
}

// WithBgAlign sets the image placement for BgFit and BgFixed.
func WithBgAlign(a Align) ImageBgOption {
	return func(c *imageBgConfig) { c.align = a }
}

// WithBgMode sets the cover mode.
func WithBgMode(m BgMode) ImageBgOption {
	return func(c *imageBgConfig) { c.mode = m }
}

// WithBgBlur sets the Gaussian blur radius. Zero disables the blur.
func WithBgBlur(radius float64) ImageBgOption {
	return func(c *imageBgConfig) { c.blurRadius = radius }
}

// WithBgFade darkens the image by the given fraction in [0, 1].
// Zero disables the fade.
func WithBgFade(fade float64) ImageBgOption {
	return func(c *imageBgConfig) { c.fade = fade }
}

// NewImageBg creates an image background. The blur and fade are applied
// once here, not per draw.
func NewImageBg(img *Pixmap, opts ...ImageBgOption) *ImageBg {
	cfg := imageBgConfig{
		align:      AlignCenter,
		mode:       BgFit,
		blurRadius: 3,
		fade:       0.1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.blurRadius > 0 {
		img = FromImage(blur.Gaussian(img.NRGBA(), cfg.blurRadius))
	}
	if cfg.fade > 0 {
		img = FromImage(adjust.Brightness(img.NRGBA(), -cfg.fade))
	}

	return &ImageBg{img: img, align: cfg.align, mode: cfg.mode}
}

// LoadImageBg creates an image background from an image file.
func LoadImageBg(path string, opts ...ImageBgOption) (*ImageBg, error) {
	img, err := LoadPixmap(path)
	if err != nil {
		return nil, fmt.Errorf("box: loading background image: %w", err)
	}
	return NewImageBg(img, opts...), nil
}

// Draw implements Background.
func (bg *ImageBg) Draw(p *Painter) {
	region := p.Size()
	if region.IsZero() || bg.img.Size().IsZero() {
		return
	}
	h, v := bg.align.factors()

	switch bg.mode {
	case BgFit:
		scale := max(
			float64(region.W)/float64(bg.img.Width()),
			float64(region.H)/float64(bg.img.Height()),
		)
		w := int(float64(bg.img.Width()) * scale)
		hh := int(float64(bg.img.Height()) * scale)
		x := placeAxis(h, region.W, w)
		y := placeAxis(v, region.H, hh)
		p.PasteScaled(bg.img, Position{X: x, Y: y}, Size{W: w, H: hh})

	case BgFill:
		p.PasteScaled(bg.img, Position{}, region)

	case BgFixed:
		x := placeAxis(h, region.W, bg.img.Width())
		y := placeAxis(v, region.H, bg.img.Height())
		p.Paste(bg.img, Position{X: x, Y: y})

	case BgRepeat:
		for y := 0; y < region.H; y += bg.img.Height() {
			for x := 0; x < region.W; x += bg.img.Width() {
				p.Paste(bg.img, Position{X: x, Y: y})
			}
		}
	}
}

// placeAxis positions a length inside an available length, allowing the
// negative positions BgFit needs to center its crop.
func placeAxis(factor float64, avail, length int) int {
	switch factor {
	case 0:
		return 0
	case 1:
		return avail - length
	default:
		return (avail - length) / 2
	}
}
