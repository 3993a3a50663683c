package box

// unboundedExtent stands in for a missing extent when scaling an image
// against only one fixed dimension.
const unboundedExtent = 1 << 20

// ImageSizeMode controls how an ImageBox scales its image.
type ImageSizeMode uint8

const (
	// ImageOriginal keeps the image at its own size.
	ImageOriginal ImageSizeMode = iota

	// ImageFit scales the image uniformly until it touches the fixed
	// extents from the inside. At least one extent must be fixed.
	ImageFit

	// ImageFill covers the fixed extents: with both fixed the image
	// stretches to them exactly, otherwise it scales uniformly until
	// both extents are covered (a missing extent counts as unbounded).
	ImageFill
)

// ImageBox is a leaf that renders a pixmap.
type ImageBox struct {
	Box
	image      *Pixmap
	mode       ImageSizeMode
	alphaBlend bool
	alpha      float64
}

// NewImageBox creates an image leaf at the image's own size; combine
// with SetSize and SetImageSizeMode for scaling. Margin and padding
// default to zero.
func NewImageBox(img *Pixmap) *ImageBox {
	b := &ImageBox{image: img, alpha: 1}
	b.Box.init(b, "ImageBox")
	return b
}

// LoadImageBox creates an image leaf from an image file.
func LoadImageBox(path string) (*ImageBox, error) {
	img, err := LoadPixmap(path)
	if err != nil {
		return nil, err
	}
	return NewImageBox(img), nil
}

// SetImage replaces the image.
func (b *ImageBox) SetImage(img *Pixmap) *ImageBox {
	b.ensureMutable()
	b.image = img
	return b
}

// SetImageSizeMode selects the scaling mode.
func (b *ImageBox) SetImageSizeMode(mode ImageSizeMode) *ImageBox {
	b.ensureMutable()
	b.mode = mode
	return b
}

// SetAlphaBlend switches the paste to a true source-over composite with
// the image's alpha scaled by the alpha adjustment.
func (b *ImageBox) SetAlphaBlend(on bool) *ImageBox {
	b.ensureMutable()
	b.alphaBlend = on
	return b
}

// SetAlphaAdjust scales the image alpha for alpha-blend pastes, in
// [0, 1].
func (b *ImageBox) SetAlphaAdjust(alpha float64) *ImageBox {
	b.ensureMutable()
	b.alpha = alpha
	return b
}

func (b *ImageBox) contentSize() (Size, error) {
	w, h := b.image.Width(), b.image.Height()
	switch b.mode {
	case ImageOriginal:
		return Size{W: w, H: h}, nil

	case ImageFit:
		if b.w == Auto && b.h == Auto {
			return Size{}, &ConfigError{Widget: "ImageBox", Reason: "fit mode requires a fixed width or height"}
		}
		tw, th := b.targetExtents()
		scale := min(float64(tw)/float64(w), float64(th)/float64(h))
		return Size{W: int(float64(w) * scale), H: int(float64(h) * scale)}, nil

	default: // ImageFill
		if b.w == Auto && b.h == Auto {
			return Size{}, &ConfigError{Widget: "ImageBox", Reason: "fill mode requires a fixed width or height"}
		}
		if b.w != Auto && b.h != Auto {
			return Size{W: b.w - 2*b.hpadding, H: b.h - 2*b.vpadding}, nil
		}
		tw, th := b.targetExtents()
		scale := max(float64(tw)/float64(w), float64(th)/float64(h))
		return Size{W: int(float64(w) * scale), H: int(float64(h) * scale)}, nil
	}
}

// targetExtents returns the padding-adjusted fixed extents, substituting
// an effectively unbounded length for Auto.
func (b *ImageBox) targetExtents() (tw, th int) {
	tw, th = unboundedExtent, unboundedExtent
	if b.w != Auto {
		tw = b.w - 2*b.hpadding
	}
	if b.h != Auto {
		th = b.h - 2*b.vpadding
	}
	return tw, th
}

func (b *ImageBox) drawContent(p *Painter) error {
	size, err := b.contentSize()
	if err != nil {
		return err
	}
	img := b.image
	if size != img.Size() {
		img = img.Resized(size.W, size.H)
	}
	if b.alphaBlend {
		p.PasteAlpha(img, Position{}, uint8(clamp01(b.alpha)*255+0.5))
	} else {
		p.Paste(img, Position{})
	}
	return nil
}

func clamp01(v float64) float64 {
	return min(1, max(0, v))
}
