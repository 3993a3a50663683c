package box

// Frame is an overlay container: children stack on top of each other in
// insertion order, each placed inside the frame's content box per the
// frame's content alignment. The content size is the maximum child size
// on each axis.
type Frame struct {
	Box
	children []Widget
}

// NewFrame creates a frame over the given children.
func NewFrame(children ...Widget) *Frame {
	f := &Frame{children: children}
	f.Box.init(f, "Frame")
	return f
}

// AddChild appends a child on top of the existing ones.
func (f *Frame) AddChild(w Widget) *Frame {
	f.ensureMutable()
	f.children = append(f.children, w)
	return f
}

// SetChildren replaces all children.
func (f *Frame) SetChildren(children []Widget) *Frame {
	f.ensureMutable()
	f.children = children
	return f
}

// Children returns the child list.
func (f *Frame) Children() []Widget { return f.children }

func (f *Frame) contentSize() (Size, error) {
	var size Size
	for _, child := range f.children {
		s, err := child.SelfSize()
		if err != nil {
			return Size{}, err
		}
		size.W = max(size.W, s.W)
		size.H = max(size.H, s.H)
	}
	return size, nil
}

func (f *Frame) drawContent(p *Painter) error {
	content, err := f.contentSize()
	if err != nil {
		return err
	}
	for _, child := range f.children {
		s, err := child.SelfSize()
		if err != nil {
			return err
		}
		pos := alignOffset(f.contentAlign, content, s)
		if err := drawChildInto(p, child, pos.X, pos.Y, s); err != nil {
			return err
		}
	}
	return nil
}
