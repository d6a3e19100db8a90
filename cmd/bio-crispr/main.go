/*
bio-crispr scans one or more FASTA contigs for CRISPR repeat arrays and
reports them as GFF3 features on stdout.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/biogrep/crispr/crispr"
	"github.com/biogrep/crispr/encoding/fasta"
	"github.com/biogrep/crispr/encoding/gff"
)

var (
	minRepeatCount     = flag.Int("min-repeat-count", 3, "Minimum number of repeats a published CRISPR array must contain")
	minRepeatLength    = flag.Int("min-repeat-length", 23, "Minimum repeat length, in bases")
	maxRepeatLength    = flag.Int("max-repeat-length", 47, "Maximum repeat length, in bases")
	minSpacerLength    = flag.Int("min-spacer-length", 26, "Minimum spacer length, in bases")
	maxSpacerLength    = flag.Int("max-spacer-length", 50, "Maximum spacer length, in bases")
	searchWindowLength = flag.Int("search-window-length", 8, "Length of the literal seed pattern used to find candidate repeat starts")
	source             = flag.String("source", "bio-crispr", "GFF3 source column value")
)

func bioCrisprUsage() {
	fmt.Printf("Usage: %s [OPTIONS] [fasta-path]\n", os.Args[0])
	fmt.Printf("Reads FASTA from fasta-path, or stdin if omitted, and writes GFF3 to stdout.\n")
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioCrisprUsage
	shutdown := grail.Init()
	defer shutdown()

	in := os.Stdin
	if flag.NArg() > 1 {
		log.Fatalf("Too many positional arguments (only an optional fasta-path is expected)")
	}
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("opening %s: %v", flag.Arg(0), err)
		}
		defer f.Close()
		in = f
	}

	builder := crispr.NewScannerBuilder().
		MinRepeatCount(*minRepeatCount).
		MinRepeatLength(*minRepeatLength).
		MaxRepeatLength(*maxRepeatLength).
		MinSpacerLength(*minSpacerLength).
		MaxSpacerLength(*maxSpacerLength).
		SearchWindowLength(*searchWindowLength)

	if err := run(in, os.Stdout, builder, *source); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(in io.Reader, out io.Writer, builder *crispr.ScannerBuilder, source string) error {
	reader := fasta.NewReader(in)
	writer := gff.NewWriter(out, source)

	for {
		record, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		log.Debug.Printf("scanning %s (%d bases)", record.Name, len(record.Seq))

		scanner := builder.Scan(crispr.NewHandle(record.Seq))
		found := 0
		for {
			c, ok := scanner.Next()
			if !ok {
				break
			}
			if err := writer.WriteCrispr(record.Name, c); err != nil {
				return err
			}
			found++
		}
		log.Debug.Printf("%s: found %d CRISPR arrays", record.Name, found)
	}
}
