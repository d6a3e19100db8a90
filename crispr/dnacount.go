package crispr

// dnaCount is a per-column tally of the four canonical nucleotides,
// case-insensitive; every other byte is ignored. It backs the
// consensus-fraction tests used by repeat-length refinement and trim.
type dnaCount struct {
	a, c, g, t int
}

// count records one occurrence of b. Bytes outside {A,C,G,T,a,c,g,t} do
// not contribute to any tally, which has the effect of lowering the
// consensus fraction (and so suppressing detection) inside ambiguous or
// non-ASCII stretches of the input.
func (d *dnaCount) count(b byte) {
	switch b {
	case 'a', 'A':
		d.a++
	case 'c', 'C':
		d.c++
	case 'g', 'G':
		d.g++
	case 't', 'T':
		d.t++
	}
}

// max returns the largest of the four tallies. Ties are broken by the
// fixed enumeration order A < C < G < T, but since only the numeric
// value is ever tested against a threshold, the tie-break is never
// observable.
func (d *dnaCount) max() int {
	m := d.a
	if d.c > m {
		m = d.c
	}
	if d.g > m {
		m = d.g
	}
	if d.t > m {
		m = d.t
	}
	return m
}

// clear resets every tally to zero.
func (d *dnaCount) clear() {
	*d = dnaCount{}
}
