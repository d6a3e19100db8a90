// Package fasta contains code for reading FASTA-formatted nucleotide data.
// FASTA files consist of a number of named sequences that may be
// interrupted by newlines. For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters
// excluding spaces immediately after '>'. Any text appearing after a
// space is ignored. For example, '>chr1 A viral sequence' becomes
// 'chr1'.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	mib            = 1024 * 1024
	bufferInitSize = 16 * mib
)

// Record is a single named sequence read from a FASTA file.
type Record struct {
	Name string
	Seq  []byte
}

// Reader reads FASTA records sequentially from an underlying stream. A
// Reader is not safe for concurrent use. Unlike a random-access FASTA
// index, Reader never holds more than one record in memory at a time,
// which keeps scanning whole-genome FASTA files cheap.
type Reader struct {
	scanner *bufio.Scanner
	pending string // sequence name carried over from the previous Next call
	done    bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)
	return &Reader{scanner: scanner}
}

// Next returns the next record in the stream. It returns io.EOF once
// every record has been consumed.
func (r *Reader) Next() (*Record, error) {
	if r.done {
		return nil, io.EOF
	}

	var (
		name string
		seq  strings.Builder
	)
	sawAny := false
	if r.pending != "" {
		name = r.pending
		r.pending = ""
		sawAny = true
	}

	for r.scanner.Scan() {
		line := r.scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if sawAny {
				// We've already accumulated a sequence; this '>' starts the
				// next record. Stash its name for the following Next call.
				r.pending = strings.Split(line[1:], " ")[0]
				return &Record{Name: name, Seq: []byte(seq.String())}, nil
			}
			name = strings.Split(line[1:], " ")[0]
			sawAny = true
			continue
		}
		if !sawAny {
			return nil, errors.Errorf("malformed FASTA: sequence data before any '>' header")
		}
		seq.WriteString(line)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	r.done = true
	if !sawAny {
		return nil, io.EOF
	}
	return &Record{Name: name, Seq: []byte(seq.String())}, nil
}
