package box

// Spacer is an empty leaf with a fixed size, used to hold space open in
// containers.
type Spacer struct {
	Box
}

// NewSpacer creates a spacer of the given size.
func NewSpacer(w, h int) *Spacer {
	s := &Spacer{}
	s.Box.init(s, "Spacer")
	s.SetSize(w, h)
	return s
}

func (s *Spacer) contentSize() (Size, error) {
	w, h := 0, 0
	if s.w != Auto {
		w = s.w - 2*s.hpadding
	}
	if s.h != Auto {
		h = s.h - 2*s.vpadding
	}
	return Size{W: w, H: h}, nil
}
