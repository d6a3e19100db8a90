package crispr

import "testing"

func buildCandidate(t *testing.T, seq string, indices []int, repeatLength int) *Crispr {
	t.Helper()
	c := newCandidate(NewHandle([]byte(seq)))
	c.indices = append([]int(nil), indices...)
	c.repeatLength = repeatLength
	return c
}

func TestCandidateStartEndLen(t *testing.T) {
	// Two 4-base repeats separated by a 3-base spacer.
	seq := "AAAA" + "CGT" + "AAAA"
	c := buildCandidate(t, seq, []int{0, 7}, 4)

	if got, want := c.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got, want := c.Start(), 0; got != want {
		t.Errorf("Start() = %d, want %d", got, want)
	}
	if got, want := c.End(), 11; got != want {
		t.Errorf("End() = %d, want %d", got, want)
	}
	if got, want := c.RepeatLength(), 4; got != want {
		t.Errorf("RepeatLength() = %d, want %d", got, want)
	}
}

func TestCandidateEmpty(t *testing.T) {
	c := newCandidate(NewHandle([]byte("ACGT")))
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if c.Start() != 0 || c.End() != 0 {
		t.Errorf("Start()/End() = %d/%d, want 0/0", c.Start(), c.End())
	}
}

func TestCandidateRepeatAndSpacer(t *testing.T) {
	seq := "AAAA" + "CGT" + "AAAA" + "TTT" + "AAAA"
	c := buildCandidate(t, seq, []int{0, 7, 14}, 4)

	if got, want := c.Repeat(0).String(), "AAAA"; got != want {
		t.Errorf("Repeat(0) = %q, want %q", got, want)
	}
	if got, want := c.Repeat(2).String(), "AAAA"; got != want {
		t.Errorf("Repeat(2) = %q, want %q", got, want)
	}
	if got, want := c.Spacer(0).String(), "CGT"; got != want {
		t.Errorf("Spacer(0) = %q, want %q", got, want)
	}
	if got, want := c.Spacer(1).String(), "TTT"; got != want {
		t.Errorf("Spacer(1) = %q, want %q", got, want)
	}
	if got, want := c.RepeatSpacing(0), 7; got != want {
		t.Errorf("RepeatSpacing(0) = %d, want %d", got, want)
	}
}

func TestCandidateRepeatsAndSpacers(t *testing.T) {
	seq := "AAAA" + "CGT" + "AAAA" + "TTT" + "AAAA"
	c := buildCandidate(t, seq, []int{0, 7, 14}, 4)

	repeats := c.Repeats()
	if len(repeats) != 3 {
		t.Fatalf("got %d repeats, want 3", len(repeats))
	}
	for _, r := range repeats {
		if r.String() != "AAAA" {
			t.Errorf("repeat = %q, want %q", r.String(), "AAAA")
		}
	}

	spacers := c.Spacers()
	if len(spacers) != 2 {
		t.Fatalf("got %d spacers, want 2", len(spacers))
	}
	if spacers[0].String() != "CGT" || spacers[1].String() != "TTT" {
		t.Errorf("spacers = %q, %q", spacers[0].String(), spacers[1].String())
	}
}

func TestCandidateSpacersEmptyForSingleRepeat(t *testing.T) {
	c := buildCandidate(t, "AAAA", []int{0}, 4)
	if got := c.Spacers(); got != nil {
		t.Errorf("Spacers() = %v, want nil", got)
	}
}

func TestCandidateRegionSpansFirstToLast(t *testing.T) {
	seq := "AAAA" + "CGT" + "AAAA" + "TTT" + "AAAA"
	c := buildCandidate(t, seq, []int{0, 7, 14}, 4)
	r := c.Region()
	if got, want := r.String(), seq; got != want {
		t.Errorf("Region() = %q, want %q", got, want)
	}
}

func TestCandidateRepeatOutOfRangePanics(t *testing.T) {
	c := buildCandidate(t, "AAAA", []int{0}, 4)
	defer func() {
		if recover() == nil {
			t.Errorf("Repeat(5) did not panic")
		}
	}()
	_ = c.Repeat(5)
}
