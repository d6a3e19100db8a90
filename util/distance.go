// Package util provides the byte-level edit-distance primitives the
// crispr scanner treats as black boxes: Levenshtein distance, a
// Hamming-or-gap distance for strings of unequal length, and a
// normalized similarity score built on top of Levenshtein.
//
// The classical Levenshtein computation is delegated to
// github.com/antzucaro/matchr, a general-purpose approximate-string
// matching library already used elsewhere in this module as the
// reference implementation to validate against.
package util

import (
	"github.com/antzucaro/matchr"
)

// Levenshtein returns the classical edit distance between a and b: the
// minimum number of single-byte insertions, deletions, and
// substitutions required to turn a into b.
func Levenshtein(a, b []byte) int {
	return matchr.Levenshtein(string(a), string(b))
}

// HammingOrGap returns the byte-wise Hamming distance between a and b
// when they have equal length. When they differ in length, it returns
// the Hamming distance over their common prefix (of length
// min(len(a), len(b))) plus the absolute difference in length, so a
// single indel near the end of a repeat or spacer costs a handful of
// edits instead of making the two strings maximally dissimilar.
func HammingOrGap(a, b []byte) int {
	if len(a) == len(b) {
		return hamming(a, b)
	}
	l := len(a)
	if len(b) < l {
		l = len(b)
	}
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return hamming(a[:l], b[:l]) + d
}

func hamming(a, b []byte) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// Similarity returns a normalized similarity score in [0, 1]:
// 1 - levenshtein(a, b) / max(len(a), len(b)). The similarity of two
// empty strings is undefined (division by zero); callers must guard
// against that case themselves.
func Similarity(a, b []byte) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1 - float64(Levenshtein(a, b))/float64(maxLen)
}
