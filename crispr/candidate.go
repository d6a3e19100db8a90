package crispr

// Crispr is a CRISPR repeat region discovered by a Scanner: an ordered,
// strictly increasing set of repeat-start offsets sharing a single
// repeat length. It is mutated in place by the Scanner's internal
// subphases and handed to callers only once fully built.
type Crispr struct {
	seq          Handle
	indices      []int
	repeatLength int
}

// newCandidate starts a fresh, empty candidate over seq.
func newCandidate(seq Handle) *Crispr {
	return &Crispr{seq: seq}
}

// Len returns the number of repeats in the CRISPR region.
func (c *Crispr) Len() int {
	return len(c.indices)
}

// Start returns the zero-based start offset of the region, i.e. the
// offset of its first repeat.
func (c *Crispr) Start() int {
	if len(c.indices) == 0 {
		return 0
	}
	return c.indices[0]
}

// End returns the zero-based, exclusive end offset of the region, i.e.
// the offset just past its last repeat.
func (c *Crispr) End() int {
	if len(c.indices) == 0 {
		return 0
	}
	return c.indices[len(c.indices)-1] + c.repeatLength
}

// RepeatLength returns the shared length, in bases, of every repeat in
// the region.
func (c *Crispr) RepeatLength() int {
	return c.repeatLength
}

// Repeat returns the k-th repeat as a Region. It panics if k is out of
// range; the scanner never calls it out of range during normal
// iteration.
func (c *Crispr) Repeat(k int) Region {
	start := c.indices[k]
	r, err := NewRegion(c.seq, start, start+c.repeatLength)
	if err != nil {
		panic(err)
	}
	return r
}

// Spacer returns the k-th spacer (the sequence between repeat k and
// repeat k+1) as a Region. It may be empty. It panics if k+1 is out of
// range.
func (c *Crispr) Spacer(k int) Region {
	spacerStart := c.indices[k] + c.repeatLength
	spacerEnd := c.indices[k+1]
	r, err := NewRegion(c.seq, spacerStart, spacerEnd)
	if err != nil {
		panic(err)
	}
	return r
}

// RepeatSpacing returns the distance between the start of repeat k and
// the start of repeat k+1.
func (c *Crispr) RepeatSpacing(k int) int {
	return c.indices[k+1] - c.indices[k]
}

// Region returns the complete CRISPR array, from the start of its first
// repeat to the end of its last, as a single Region.
func (c *Crispr) Region() Region {
	r, err := NewRegion(c.seq, c.Start(), c.End())
	if err != nil {
		panic(err)
	}
	return r
}

// Repeats returns every repeat in the region, in order.
func (c *Crispr) Repeats() []Region {
	out := make([]Region, c.Len())
	for i := range out {
		out[i] = c.Repeat(i)
	}
	return out
}

// Spacers returns every spacer in the region, in order. There is one
// fewer spacer than repeat; a region with fewer than two repeats has
// none and returns nil.
func (c *Crispr) Spacers() []Region {
	if c.Len() < 2 {
		return nil
	}
	out := make([]Region, c.Len()-1)
	for i := range out {
		out[i] = c.Spacer(i)
	}
	return out
}
