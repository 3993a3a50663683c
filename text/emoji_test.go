package text

import "testing"

// TestSplitRuns_Plain yields a single non-symbolic run.
func TestSplitRuns_Plain(t *testing.T) {
	runs := SplitRuns("hello")
	if len(runs) != 1 || runs[0].Symbolic || runs[0].Text != "hello" {
		t.Fatalf("runs = %+v", runs)
	}
}

// TestSplitRuns_Empty yields nil.
func TestSplitRuns_Empty(t *testing.T) {
	if runs := SplitRuns(""); runs != nil {
		t.Fatalf("runs = %+v, want nil", runs)
	}
}

// TestSplitRuns_Mixed alternates plain and symbolic runs, merging
// neighbors of the same kind.
func TestSplitRuns_Mixed(t *testing.T) {
	runs := SplitRuns("hi😀😁 bye")
	want := []Run{
		{Text: "hi", Symbolic: false},
		{Text: "😀😁", Symbolic: true},
		{Text: " bye", Symbolic: false},
	}
	if len(runs) != len(want) {
		t.Fatalf("runs = %+v, want %+v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

// TestSplitRuns_ZWJSequence keeps a joined family emoji in one run.
func TestSplitRuns_ZWJSequence(t *testing.T) {
	family := "\U0001F468‍\U0001F469‍\U0001F467" // man, ZWJ, woman, ZWJ, girl
	runs := SplitRuns("a" + family + "b")
	if len(runs) != 3 {
		t.Fatalf("runs = %+v, want 3 runs", runs)
	}
	if !runs[1].Symbolic || runs[1].Text != family {
		t.Errorf("middle run = %+v, want the whole ZWJ sequence", runs[1])
	}
}

// TestSplitRuns_SkinToneAndSelector keeps modifiers with their base.
func TestSplitRuns_SkinToneAndSelector(t *testing.T) {
	wave := "\U0001F44B\U0001F3FD" // waving hand + medium skin tone
	runs := SplitRuns(wave)
	if len(runs) != 1 || !runs[0].Symbolic || runs[0].Text != wave {
		t.Fatalf("runs = %+v, want one symbolic run", runs)
	}

	sun := "☀️" // sun + emoji variation selector
	runs = SplitRuns(sun)
	if len(runs) != 1 || !runs[0].Symbolic || runs[0].Text != sun {
		t.Fatalf("runs = %+v, want one symbolic run", runs)
	}
}

// TestSplitRuns_Flag keeps a regional-indicator pair together.
func TestSplitRuns_Flag(t *testing.T) {
	flag := "\U0001F1EF\U0001F1F5" // JP
	runs := SplitRuns("x" + flag + flag)
	if len(runs) != 2 {
		t.Fatalf("runs = %+v, want 2 runs", runs)
	}
	if !runs[1].Symbolic || runs[1].Text != flag+flag {
		t.Errorf("flag run = %+v", runs[1])
	}
}

// TestSplitRuns_Keycap recognizes digit+FE0F+20E3 but leaves bare
// digits plain.
func TestSplitRuns_Keycap(t *testing.T) {
	keycap := "1️⃣"
	runs := SplitRuns(keycap)
	if len(runs) != 1 || !runs[0].Symbolic {
		t.Fatalf("keycap runs = %+v", runs)
	}

	runs = SplitRuns("123")
	if len(runs) != 1 || runs[0].Symbolic {
		t.Fatalf("plain digits runs = %+v", runs)
	}
}

// TestHasSymbolic scans for any symbolic rune.
func TestHasSymbolic(t *testing.T) {
	if HasSymbolic("plain text") {
		t.Error("HasSymbolic(plain) = true")
	}
	if !HasSymbolic("a😀b") {
		t.Error("HasSymbolic(emoji) = false")
	}
}

// TestIsSymbolic spot-checks the classification ranges.
func TestIsSymbolic(t *testing.T) {
	symbolic := []rune{'😀', '🚀', '☀', 0x1F3FD, 0x200D}
	for _, r := range symbolic {
		if !IsSymbolic(r) {
			t.Errorf("IsSymbolic(%U) = false", r)
		}
	}
	plain := []rune{'a', '0', '哇', 'é'}
	for _, r := range plain {
		if IsSymbolic(r) {
			t.Errorf("IsSymbolic(%U) = true", r)
		}
	}
}
