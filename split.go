package box

import "fmt"

// SizeMode controls how a container sizes its item slots.
type SizeMode uint8

const (
	// SizeFixed derives slot sizes from the children themselves.
	SizeFixed SizeMode = iota

	// SizeExpand divides the container's explicit extent among the
	// slots. The container must have a fixed size on the split axis.
	SizeExpand
)

// splitAxis selects the main axis of a Split.
type splitAxis uint8

const (
	axisH splitAxis = iota // children side by side
	axisV                  // children stacked
)

// Split lays children out along one axis. HSplit places them side by
// side, VSplit stacks them; both share this implementation.
//
// Each child gets a slot. Slot lengths on the main axis follow the
// ratios (fractional results truncate toward zero): with SizeFixed the
// unit length is the smallest that still fits every child with a
// positive ratio, with SizeExpand the container's fixed extent minus
// separators and padding is divided by the ratio sum. Without explicit
// ratios each child's own length is its ratio. The cross-axis slot
// length is the largest child. Children are placed inside their slots
// per the item alignment (default centered).
type Split struct {
	Box
	axis      splitAxis
	children  []Widget
	ratios    []float64
	sep       int
	mode      SizeMode
	itemAlign Align
	itemBg    Background
}

// NewHSplit creates a horizontal split over the given children.
func NewHSplit(children ...Widget) *Split {
	return newSplit(axisH, "HSplit", children)
}

// NewVSplit creates a vertical split over the given children.
func NewVSplit(children ...Widget) *Split {
	return newSplit(axisV, "VSplit", children)
}

func newSplit(axis splitAxis, name string, children []Widget) *Split {
	s := &Split{
		axis:      axis,
		children:  children,
		sep:       DefaultSep,
		itemAlign: AlignCenter,
	}
	s.Box.init(s, name)
	return s
}

// AddChild appends a child.
func (s *Split) AddChild(w Widget) *Split {
	s.ensureMutable()
	s.children = append(s.children, w)
	return s
}

// SetChildren replaces all children.
func (s *Split) SetChildren(children []Widget) *Split {
	s.ensureMutable()
	s.children = children
	return s
}

// Children returns the child list.
func (s *Split) Children() []Widget { return s.children }

// SetRatios sets the main-axis slot proportions, one per child.
func (s *Split) SetRatios(ratios []float64) *Split {
	s.ensureMutable()
	s.ratios = ratios
	return s
}

// SetSep sets the gap between adjacent slots.
func (s *Split) SetSep(sep int) *Split {
	s.ensureMutable()
	s.sep = sep
	return s
}

// SetSizeMode selects fixed or expand slot sizing.
func (s *Split) SetSizeMode(mode SizeMode) *Split {
	s.ensureMutable()
	s.mode = mode
	return s
}

// SetItemAlign places each child inside its slot.
func (s *Split) SetItemAlign(a Align) *Split {
	s.ensureMutable()
	s.itemAlign = a
	return s
}

// SetItemBg draws a background into every slot, behind the child.
// Children with SetOmitParentBg(true) skip it.
func (s *Split) SetItemBg(bg Background) *Split {
	s.ensureMutable()
	s.itemBg = bg
	return s
}

// main and cross split a size into the two axes.
func (s *Split) main(sz Size) int {
	if s.axis == axisH {
		return sz.W
	}
	return sz.H
}

func (s *Split) cross(sz Size) int {
	if s.axis == axisH {
		return sz.H
	}
	return sz.W
}

func (s *Split) slot(main, cross int) Size {
	if s.axis == axisH {
		return Size{W: main, H: cross}
	}
	return Size{W: cross, H: main}
}

// slotSizes computes one slot per child.
func (s *Split) slotSizes() ([]Size, error) {
	childSizes := make([]Size, len(s.children))
	for i, child := range s.children {
		sz, err := child.SelfSize()
		if err != nil {
			return nil, err
		}
		childSizes[i] = sz
	}

	ratios := s.ratios
	if len(ratios) == 0 {
		ratios = make([]float64, len(childSizes))
		for i, sz := range childSizes {
			ratios[i] = float64(s.main(sz))
		}
	} else if len(ratios) != len(s.children) {
		return nil, &ConfigError{
			Widget: s.name,
			Reason: fmt.Sprintf("%d ratios for %d children", len(ratios), len(s.children)),
		}
	}

	var unit float64
	switch s.mode {
	case SizeExpand:
		extent, padding := s.w, s.hpadding
		if s.axis == axisV {
			extent, padding = s.h, s.vpadding
		}
		if extent == Auto {
			return nil, &ConfigError{Widget: s.name, Reason: "expand mode requires a fixed size on the split axis"}
		}
		sum := 0.0
		for _, r := range ratios {
			sum += r
		}
		if sum <= 0 {
			return nil, &ConfigError{Widget: s.name, Reason: "ratios sum to zero"}
		}
		unit = float64(extent-s.sep*(len(ratios)-1)-2*padding) / sum
	default:
		for i, r := range ratios {
			if r > 0 {
				unit = max(unit, float64(s.main(childSizes[i]))/r)
			}
		}
	}

	cross := 0
	for _, sz := range childSizes {
		cross = max(cross, s.cross(sz))
	}

	slots := make([]Size, len(s.children))
	for i, r := range ratios {
		slots[i] = s.slot(int(unit*r), cross)
	}
	return slots, nil
}

func (s *Split) contentSize() (Size, error) {
	if len(s.children) == 0 {
		return Size{}, nil
	}
	slots, err := s.slotSizes()
	if err != nil {
		return Size{}, err
	}
	mainTotal := s.sep * (len(slots) - 1)
	cross := 0
	for _, sz := range slots {
		mainTotal += s.main(sz)
		cross = max(cross, s.cross(sz))
	}
	return s.slot(mainTotal, cross), nil
}

func (s *Split) drawContent(p *Painter) error {
	if len(s.children) == 0 {
		return nil
	}
	slots, err := s.slotSizes()
	if err != nil {
		return err
	}
	cur := 0
	for i, child := range s.children {
		slot := slots[i]
		childSize, err := child.SelfSize()
		if err != nil {
			return err
		}

		var sx, sy int
		if s.axis == axisH {
			sx = cur
		} else {
			sy = cur
		}
		p.MoveResizeRegion(sx, sy, slot)

		if s.itemBg != nil && !child.Base().OmitParentBg() {
			s.itemBg.Draw(p)
		}

		pos := alignOffset(s.itemAlign, slot, childSize)
		err = drawChildInto(p, child, pos.X, pos.Y, childSize)
		p.Pop()
		if err != nil {
			return err
		}

		cur += s.main(slot) + s.sep
	}
	return nil
}
