// Package crispr detects CRISPR (Clustered Regularly Interspaced Short
// Palindromic Repeats) arrays in a nucleotide sequence.
//
// A CRISPR array is a run of three or more near-identical direct repeats
// separated by spacers of comparable length but dissimilar content. Given
// a single ASCII nucleotide sequence, a Scanner produces a lazy,
// left-to-right sequence of Crispr candidates using a seed-and-extend
// algorithm: short literal seeds are discovered and extended to the
// right, the true repeat length is refined by consensus voting, spacer
// structure is filtered for CRISPR-like statistics, and the array is
// finally extended at both flanks and trimmed to its best-supported
// boundary.
//
// The scanner is single-threaded and stateful: a Scanner instance is
// exclusively owned by its caller and is not safe for concurrent use.
// Independent sequences may be scanned concurrently by independent
// Scanner values.
package crispr
