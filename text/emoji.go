package text

// Symbolic rune classification and run segmentation.
//
// "Symbolic" covers the emoji-class code points a regular text font
// usually cannot draw: emoji-presentation pictographs, flags, keycap and
// ZWJ sequences. Text is split into symbolic and plain runs so the
// fallback face only handles the runs that need it. Multi-codepoint
// sequences (ZWJ joins, skin tones, variation selectors, flag pairs,
// keycaps, tag sequences) are always kept inside one run.

// Run is a contiguous substring with uniform symbolic status.
type Run struct {
	// Text is the substring of the run.
	Text string

	// Symbolic is true when the run should render with the symbolic
	// fallback face.
	Symbolic bool
}

// IsSymbolic reports whether the rune belongs to the symbolic class.
func IsSymbolic(r rune) bool {
	return isEmojiPresentation(r) || isEmojiComponent(r)
}

// HasSymbolic reports whether text contains any symbolic rune.
func HasSymbolic(text string) bool {
	for _, r := range text {
		if IsSymbolic(r) {
			return true
		}
	}
	return false
}

// SplitRuns splits text into symbolic and plain runs. Adjacent runs of
// the same kind are merged, so the result alternates. An empty string
// yields nil.
func SplitRuns(text string) []Run {
	if text == "" {
		return nil
	}
	runes := []rune(text)

	runs := make([]Run, 0, 2)
	appendRun := func(s string, symbolic bool) {
		if n := len(runs); n > 0 && runs[n-1].Symbolic == symbolic {
			runs[n-1].Text += s
			return
		}
		runs = append(runs, Run{Text: s, Symbolic: symbolic})
	}

	for i := 0; i < len(runes); {
		if n := symbolicSequenceLen(runes[i:]); n > 0 {
			appendRun(string(runes[i:i+n]), true)
			i += n
		} else {
			appendRun(string(runes[i]), false)
			i++
		}
	}
	return runs
}

// symbolicSequenceLen returns the number of runes in the symbolic
// sequence starting at runes[0], or 0 when it does not start one.
func symbolicSequenceLen(runes []rune) int {
	r := runes[0]

	// Flag pair: two regional indicators.
	if isRegionalIndicator(r) {
		if len(runes) >= 2 && isRegionalIndicator(runes[1]) {
			return 2
		}
		return 1
	}

	// Subdivision flag: black flag + tag characters + cancel tag.
	if r == 0x1F3F4 && len(runes) >= 2 && isTagCharacter(runes[1]) {
		i := 1
		for i < len(runes) && isTagCharacter(runes[i]) {
			i++
		}
		if i < len(runes) && runes[i] == 0xE007F {
			i++
		}
		return i
	}

	// Keycap: digit/#/* + optional U+FE0F + U+20E3.
	if isKeycapBase(r) {
		i := 1
		if i < len(runes) && runes[i] == 0xFE0F {
			i++
		}
		if i < len(runes) && runes[i] == 0x20E3 {
			return i + 1
		}
		return 0
	}

	if !isEmojiPresentation(r) {
		return 0
	}

	// Base pictograph plus extensions: variation selector, skin tone,
	// then any number of ZWJ-joined continuations.
	i := extendSymbolic(runes, 1)
	for i < len(runes) && runes[i] == zwj {
		if i+1 >= len(runes) || !isEmojiPresentation(runes[i+1]) {
			break
		}
		i = extendSymbolic(runes, i+2)
	}
	return i
}

// extendSymbolic consumes an optional variation selector and skin-tone
// modifier following the base glyph at runes[i-1].
func extendSymbolic(runes []rune, i int) int {
	if i < len(runes) && (runes[i] == 0xFE0E || runes[i] == 0xFE0F) {
		i++
	}
	if i < len(runes) && isSkinTone(runes[i]) {
		i++
	}
	return i
}

const zwj = 0x200D // zero-width joiner

func isSkinTone(r rune) bool          { return r >= 0x1F3FB && r <= 0x1F3FF }
func isRegionalIndicator(r rune) bool { return r >= 0x1F1E6 && r <= 0x1F1FF }
func isTagCharacter(r rune) bool      { return r >= 0xE0020 && r <= 0xE007E }
func isKeycapBase(r rune) bool        { return (r >= '0' && r <= '9') || r == '#' || r == '*' }

// isEmojiComponent reports runes that only appear inside symbolic
// sequences (joiners, selectors, modifiers, tags).
func isEmojiComponent(r rune) bool {
	switch {
	case isSkinTone(r), isRegionalIndicator(r), isTagCharacter(r):
		return true
	case r == zwj, r == 0xFE0E, r == 0xFE0F, r == 0x20E3, r == 0xE007F:
		return true
	}
	return false
}

// isEmojiPresentation reports runes that default to emoji presentation
// (Emoji_Presentation=Yes blocks plus the pictographic legacy blocks).
func isEmojiPresentation(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F300 && r <= 0x1F5FF: // misc symbols and pictographs
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental pictographs
		return true
	case r >= 0x1FA00 && r <= 0x1FAFF: // pictographs extended
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // misc symbols and arrows
		return true
	case r >= 0x1F000 && r <= 0x1F0FF: // mahjong, dominoes, cards
		return true
	}
	return false
}
