package crispr

// Config holds the tunable thresholds that parameterize a Scanner. All
// fields are positive integers in the default configuration; no
// particular ordering between min/max pairs is enforced here. An
// inconsistent configuration (min > max) is not an error: the Scanner
// simply produces no candidates, never panics or returns an error.
type Config struct {
	minRepeatCount      int
	minRepeatLength     int
	maxRepeatLength     int
	minSpacerLength     int
	maxSpacerLength     int
	searchWindowLength  int
}

// defaultConfig mirrors the reference scanner's defaults.
func defaultConfig() Config {
	return Config{
		minRepeatCount:     3,
		minRepeatLength:    23,
		maxRepeatLength:    47,
		minSpacerLength:    26,
		maxSpacerLength:    50,
		searchWindowLength: 8,
	}
}

// ScannerBuilder builds a Scanner from a Config, following the same
// chained-setter style as the rest of this module's construction code.
// The zero value is not usable; use NewScannerBuilder.
type ScannerBuilder struct {
	config Config
}

// NewScannerBuilder returns a builder initialized with the default
// configuration (min_repeat_count=3, min_repeat_length=23,
// max_repeat_length=47, min_spacer_length=26, max_spacer_length=50,
// search_window_length=8).
func NewScannerBuilder() *ScannerBuilder {
	return &ScannerBuilder{config: defaultConfig()}
}

// MinRepeatCount sets the minimum number of repeats a published CRISPR
// candidate must contain.
func (b *ScannerBuilder) MinRepeatCount(n int) *ScannerBuilder {
	b.config.minRepeatCount = n
	return b
}

// MinRepeatLength sets the minimum repeat length, in bases.
func (b *ScannerBuilder) MinRepeatLength(n int) *ScannerBuilder {
	b.config.minRepeatLength = n
	return b
}

// MaxRepeatLength sets the maximum repeat length, in bases.
func (b *ScannerBuilder) MaxRepeatLength(n int) *ScannerBuilder {
	b.config.maxRepeatLength = n
	return b
}

// MinSpacerLength sets the minimum spacer length, in bases.
func (b *ScannerBuilder) MinSpacerLength(n int) *ScannerBuilder {
	b.config.minSpacerLength = n
	return b
}

// MaxSpacerLength sets the maximum spacer length, in bases.
func (b *ScannerBuilder) MaxSpacerLength(n int) *ScannerBuilder {
	b.config.maxSpacerLength = n
	return b
}

// SearchWindowLength sets the length of the literal seed pattern used to
// discover candidate repeat starts before refinement.
func (b *ScannerBuilder) SearchWindowLength(n int) *ScannerBuilder {
	b.config.searchWindowLength = n
	return b
}

// Scan returns a Scanner over seq configured with this builder's
// current settings. The builder may be reused afterwards; each call
// produces an independent Scanner.
func (b *ScannerBuilder) Scan(seq Handle) *Scanner {
	return newScanner(seq, b.config)
}
