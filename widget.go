package box

import "fmt"

// Auto marks a widget dimension as derived from content.
const Auto = -1

// Default attribute values shared by all widgets.
const (
	DefaultMargin  = 0
	DefaultPadding = 0
	DefaultSep     = 8
)

// Widget is a node in the layout tree. Widgets are measured bottom-up
// (SelfSize) and drawn top-down (Draw). The first measurement freezes
// the widget: layout attributes can no longer change afterwards, so the
// cached size can never go stale.
//
// All implementations embed [Box], which carries the shared attributes
// and implements the measurement and draw protocol.
type Widget interface {
	// SelfSize returns the widget's outer size: content clamped to the
	// explicit width/height, plus padding and margin on each side.
	// The first call computes the size and freezes the widget.
	SelfSize() (Size, error)

	// ContentSize returns the natural size of the widget's content,
	// before padding, margin, and explicit size are applied.
	ContentSize() (Size, error)

	// Draw renders the widget into the painter's current region. The
	// region size must equal SelfSize; a mismatch is a bug in the
	// caller and panics.
	Draw(p *Painter) error

	// Base exposes the embedded Box for shared attribute access.
	Base() *Box

	// contentSize and drawContent are the two points a widget kind
	// customizes; Box provides empty defaults.
	contentSize() (Size, error)
	drawContent(p *Painter) error
}

// DrawHook runs after a widget's background is drawn, with the painter's
// region set to the widget's post-margin rectangle. Hooks are the escape
// hatch for custom drawing inside the layout tree.
type DrawHook func(w Widget, p *Painter)

// Box carries the attributes every widget shares and implements the
// measurement and draw protocol around the widget's own content.
//
// The zero value is not usable; widget constructors call init to wire
// the outer widget in (Box needs it to reach the overriding contentSize
// and drawContent).
type Box struct {
	self Widget

	name         string // widget kind, for errors and traces
	contentAlign Align
	hmargin      int
	vmargin      int
	hpadding     int
	vpadding     int
	w, h         int // Auto or fixed, excluding margin
	bg           Background
	omitParentBg bool
	offset       Position
	offsetAnchor Align
	hooks        []DrawHook

	// calc caches the measured self size. Non-nil means frozen.
	calc *Size
}

// init wires the embedding widget and applies defaults.
func (b *Box) init(self Widget, name string) {
	b.self = self
	b.name = name
	b.contentAlign = AlignTopLeft
	b.offsetAnchor = AlignTopLeft
	b.w, b.h = Auto, Auto
}

// Base implements Widget.
func (b *Box) Base() *Box { return b }

// Frozen reports whether the widget has been measured.
func (b *Box) Frozen() bool { return b.calc != nil }

// ensureMutable panics when a layout attribute is set after measurement.
func (b *Box) ensureMutable() {
	if b.calc != nil {
		panic(fmt.Sprintf("box: %s modified after measurement froze it", b.name))
	}
}

// SetContentAlign places the content inside the padding box.
func (b *Box) SetContentAlign(a Align) *Box {
	b.ensureMutable()
	b.contentAlign = a
	return b
}

// SetMargin sets both margins to the same value.
func (b *Box) SetMargin(m int) *Box { return b.SetMarginXY(m, m) }

// SetMarginXY sets the horizontal and vertical margins.
func (b *Box) SetMarginXY(h, v int) *Box {
	b.ensureMutable()
	b.hmargin, b.vmargin = h, v
	return b
}

// SetPadding sets both paddings to the same value.
func (b *Box) SetPadding(pd int) *Box { return b.SetPaddingXY(pd, pd) }

// SetPaddingXY sets the horizontal and vertical paddings.
func (b *Box) SetPaddingXY(h, v int) *Box {
	b.ensureMutable()
	b.hpadding, b.vpadding = h, v
	return b
}

// SetSize fixes both dimensions. A fixed dimension covers padding and
// content but not margin; pass Auto to derive one from content.
func (b *Box) SetSize(w, h int) *Box {
	b.ensureMutable()
	b.w, b.h = w, h
	return b
}

// SetW fixes the width.
func (b *Box) SetW(w int) *Box {
	b.ensureMutable()
	b.w = w
	return b
}

// SetH fixes the height.
func (b *Box) SetH(h int) *Box {
	b.ensureMutable()
	b.h = h
	return b
}

// SetOffset displaces the widget from its slot during drawing. Layout
// ignores the offset; it is purely a draw-time shift.
func (b *Box) SetOffset(x, y int) *Box {
	b.ensureMutable()
	b.offset = Position{X: x, Y: y}
	return b
}

// SetOffsetAnchor chooses which point of the widget the offset positions:
// with AlignBottomRight the widget's bottom-right corner lands on the
// offset, and so on. Default is the top-left corner.
func (b *Box) SetOffsetAnchor(a Align) *Box {
	b.ensureMutable()
	b.offsetAnchor = a
	return b
}

// SetBg sets the widget background, drawn into the post-margin region
// before content.
func (b *Box) SetBg(bg Background) *Box {
	b.ensureMutable()
	b.bg = bg
	return b
}

// SetOmitParentBg excludes this widget from per-item backgrounds its
// parent container would otherwise draw behind it.
func (b *Box) SetOmitParentBg(omit bool) *Box {
	b.ensureMutable()
	b.omitParentBg = omit
	return b
}

// OmitParentBg reports whether the parent's per-item background is
// suppressed for this widget.
func (b *Box) OmitParentBg() bool { return b.omitParentBg }

// AddDrawHook appends a draw hook.
func (b *Box) AddDrawHook(h DrawHook) *Box {
	b.ensureMutable()
	b.hooks = append(b.hooks, h)
	return b
}

// contentSize is the default (empty) content.
func (b *Box) contentSize() (Size, error) { return Size{}, nil }

// drawContent is the default (empty) content.
func (b *Box) drawContent(*Painter) error { return nil }

// ContentSize implements Widget.
func (b *Box) ContentSize() (Size, error) {
	return b.self.contentSize()
}

// SelfSize implements Widget. On success the widget is frozen.
func (b *Box) SelfSize() (Size, error) {
	if b.calc != nil {
		return *b.calc, nil
	}

	content, err := b.self.contentSize()
	if err != nil {
		return Size{}, err
	}

	limitW, limitH := content.W, content.H
	if b.w != Auto {
		limitW = b.w - 2*b.hpadding
	}
	if b.h != Auto {
		limitH = b.h - 2*b.vpadding
	}
	if content.W > limitW || content.H > limitH {
		return Size{}, &SizingError{
			Widget: b.name,
			Reason: fmt.Sprintf("content %dx%d exceeds the fixed size's room %dx%d",
				content.W, content.H, limitW, limitH),
		}
	}

	size := Size{
		W: limitW + 2*b.hpadding + 2*b.hmargin,
		H: limitH + 2*b.vpadding + 2*b.vmargin,
	}
	b.calc = &size
	return size, nil
}

// contentPos places the content inside the padding box per the content
// alignment.
func (b *Box) contentPos() (Position, error) {
	size, err := b.SelfSize()
	if err != nil {
		return Position{}, err
	}
	avail := Size{
		W: size.W - 2*b.hpadding - 2*b.hmargin,
		H: size.H - 2*b.vpadding - 2*b.vmargin,
	}
	content, err := b.self.contentSize()
	if err != nil {
		return Position{}, err
	}
	h, v := b.contentAlign.factors()
	return Position{
		X: int(float64(avail.W-content.W) * h),
		Y: int(float64(avail.H-content.H) * v),
	}, nil
}

// Draw implements Widget. The protocol, inside a Save/Restore pair:
// move by the anchored offset, shrink by the margin, draw background and
// hooks, shrink by the padding, move to the aligned content position,
// draw the content.
func (b *Box) Draw(p *Painter) error {
	size, err := b.SelfSize()
	if err != nil {
		return err
	}
	if p.Size() != size {
		panic(fmt.Sprintf("box: drawing %s into a %v region, self size is %v",
			b.name, p.Size(), size))
	}

	ax, ay := b.offsetAnchor.factors()
	offX := b.offset.X - anchorShift(ax, size.W)
	offY := b.offset.Y - anchorShift(ay, size.H)

	mark := p.Save()
	defer p.Restore(mark)

	p.MoveRegion(offX, offY)
	p.ShrinkRegion(b.hmargin, b.vmargin)

	Logger().Debug("draw widget", "kind", b.name, "region", p.Region())

	if b.bg != nil {
		b.bg.Draw(p)
	}
	for _, hook := range b.hooks {
		hook(b.self, p)
	}

	p.ShrinkRegion(b.hpadding, b.vpadding)
	cp, err := b.contentPos()
	if err != nil {
		return err
	}
	p.MoveRegion(cp.X, cp.Y)
	return b.self.drawContent(p)
}

// anchorShift converts an anchor factor to a pixel shift: the start edge
// shifts nothing, the center half the length, the end edge the whole.
func anchorShift(factor float64, length int) int {
	switch factor {
	case 0:
		return 0
	case 1:
		return length
	default:
		return length / 2
	}
}

// drawChildInto draws a child widget with the painter region moved and
// resized to the child's slot; containers share it.
func drawChildInto(p *Painter, child Widget, x, y int, size Size) error {
	p.MoveResizeRegion(x, y, size)
	err := child.Draw(p)
	p.Pop()
	return err
}
