package crispr

import (
	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned by Region construction when the
// requested range falls outside the bounds of the underlying sequence.
// The indexed Crispr accessors (Repeat, Spacer, ...) panic on an
// out-of-range index instead of returning an error. The scanner never
// triggers either during ordinary iteration.
var ErrIndexOutOfRange = errors.New("crispr: index out of range")

// Handle is a cheaply cloneable, immutable view of an ASCII nucleotide
// sequence. Every Region and Crispr produced by a Scanner carries its
// own Handle so that outputs outlive the scanner that produced them.
//
// Handle wraps a byte slice rather than a string so that callers reading
// FASTA records (see encoding/fasta) do not need to copy bytes into a
// string just to hand them to the scanner. Go slices already share their
// backing array on copy, so cloning a Handle is O(1) regardless of
// sequence length.
type Handle struct {
	seq []byte
}

// NewHandle wraps seq in a Handle. The caller must not mutate seq after
// this call; the scanner and every Region/Crispr it produces treat the
// bytes as immutable for the life of the scan.
func NewHandle(seq []byte) Handle {
	return Handle{seq: seq}
}

// Bytes returns the underlying byte slice.
func (h Handle) Bytes() []byte {
	return h.seq
}

// Len returns the number of bytes in the sequence.
func (h Handle) Len() int {
	return len(h.seq)
}

// Region is a zero-copy view of a half-open [start, end) byte range over
// a Handle's sequence.
type Region struct {
	seq        Handle
	start, end int
}

// NewRegion constructs a Region over [start, end) of seq. It returns
// ErrIndexOutOfRange if 0 <= start <= end <= seq.Len() does not hold.
func NewRegion(seq Handle, start, end int) (Region, error) {
	if start < 0 || start > end || end > seq.Len() {
		return Region{}, ErrIndexOutOfRange
	}
	return Region{seq: seq, start: start, end: end}, nil
}

// Start returns the zero-based, inclusive start offset of the region.
func (r Region) Start() int { return r.start }

// End returns the zero-based, exclusive end offset of the region.
func (r Region) End() int { return r.end }

// Len returns the length in bytes of the region.
func (r Region) Len() int { return r.end - r.start }

// IsEmpty reports whether the region spans zero bytes.
func (r Region) IsEmpty() bool { return r.start == r.end }

// Bytes returns the byte-slice view of the region.
func (r Region) Bytes() []byte {
	return r.seq.seq[r.start:r.end]
}

// String returns the string view of the region.
func (r Region) String() string {
	return string(r.Bytes())
}

// Equal reports whether the region's content is byte-equal to s.
func (r Region) Equal(s string) bool {
	return r.String() == s
}
