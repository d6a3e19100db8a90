package crispr

// maskSize sets the homopolymer threshold: a run of a single repeated
// byte is skipped during seeding when it is longer than maskSize bytes
// (at least maskSize+1).
const maskSize = 100

// maskInterval is a half-open [start, end) homopolymer run, with
// end-start >= maskSize.
type maskInterval struct {
	start, end int
}

// sequence wraps a sequence Handle together with the homopolymer mask
// computed once, eagerly, at construction time.
//
// The mask is used to skip low-complexity stretches during seeding:
// probing inside a long run of a single base wastes time and produces
// meaningless seeds, since every window within the run is identical.
type sequence struct {
	handle Handle
	mask   []maskInterval
}

// newSequence scans seq once for maximal homopolymer runs longer than
// maskSize bytes and records them as maskInterval values in ascending,
// non-overlapping order. A sentinel interval [len(seq), len(seq)) is
// appended so that is_masked's cursor-advance loop never needs a bounds
// check.
func newSequence(handle Handle) *sequence {
	s := handle.Bytes()
	var mask []maskInterval

	i := 0
	for i < len(s) {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if j-i-1 >= maskSize {
			mask = append(mask, maskInterval{start: i, end: j})
		}
		i = j
	}
	mask = append(mask, maskInterval{start: len(s), end: len(s)})

	return &sequence{handle: handle, mask: mask}
}

// len returns the length, in bytes, of the underlying sequence.
func (s *sequence) len() int {
	return s.handle.Len()
}

// bytes returns the raw bytes of the underlying sequence.
func (s *sequence) bytes() []byte {
	return s.handle.Bytes()
}

// isMasked reports whether the range from begin to end overlaps or
// touches a homopolymer mask interval: both bounds are compared
// inclusively (begin <= interval end and interval start <= end), so a
// range that merely abuts an interval, or reaches the trailing sentinel,
// counts as masked. cursor is an in/out parameter: it is advanced monotonically
// while begin exceeds the end of the interval it currently points at, so
// repeated queries with non-decreasing begin values are amortized O(1)
// each rather than O(len(mask)).
func (s *sequence) isMasked(cursor *int, begin, end int) bool {
	for begin > s.mask[*cursor].end {
		*cursor++
	}
	return begin <= s.mask[*cursor].end && s.mask[*cursor].start <= end
}
