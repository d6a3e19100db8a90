package crispr

import "testing"

func TestNewScannerBuilderDefaults(t *testing.T) {
	b := NewScannerBuilder()
	want := defaultConfig()
	if b.config != want {
		t.Errorf("default config = %+v, want %+v", b.config, want)
	}
}

func TestScannerBuilderChainedSetters(t *testing.T) {
	b := NewScannerBuilder().
		MinRepeatCount(4).
		MinRepeatLength(20).
		MaxRepeatLength(40).
		MinSpacerLength(21).
		MaxSpacerLength(45).
		SearchWindowLength(10)

	want := Config{
		minRepeatCount:     4,
		minRepeatLength:    20,
		maxRepeatLength:    40,
		minSpacerLength:    21,
		maxSpacerLength:    45,
		searchWindowLength: 10,
	}
	if b.config != want {
		t.Errorf("config = %+v, want %+v", b.config, want)
	}
}

func TestScannerBuilderScanWiresConfig(t *testing.T) {
	b := NewScannerBuilder().MinRepeatCount(5)
	s := b.Scan(NewHandle([]byte("ACGT")))
	if s.config != b.config {
		t.Errorf("scanner config = %+v, want %+v", s.config, b.config)
	}
}

func TestScannerBuilderReusable(t *testing.T) {
	b := NewScannerBuilder()
	s1 := b.Scan(NewHandle([]byte("ACGT")))
	s2 := b.Scan(NewHandle([]byte("TTTT")))
	if s1 == s2 {
		t.Errorf("Scan() returned the same scanner instance across calls")
	}
}
