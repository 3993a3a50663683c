package text

import "golang.org/x/text/unicode/bidi"

// Direction is the horizontal direction of a text run.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// DirRun is a run of text with uniform direction, in visual order.
type DirRun struct {
	Text      string
	Direction Direction
}

// VisualRuns splits text into direction runs ordered left to right as
// they should appear on screen, per the Unicode bidirectional algorithm.
// Pure-LTR text (the common case) yields a single run.
func VisualRuns(text string) []DirRun {
	if text == "" {
		return nil
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return []DirRun{{Text: text, Direction: DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []DirRun{{Text: text, Direction: DirectionLTR}}
	}

	runs := make([]DirRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		dir := DirectionLTR
		s := run.String()
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
			s = reverseRunes(s)
		}
		runs = append(runs, DirRun{Text: s, Direction: dir})
	}
	return runs
}

// reverseRunes reverses a string rune-wise, turning a logical-order RTL
// run into visual order for left-to-right pen advancement.
func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
