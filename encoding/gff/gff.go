// Package gff writes discovered CRISPR arrays as GFF3 features, using
// biogo's GFF encoder the way the rest of the pack's command-line tools
// report their hits.
package gff

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"github.com/pkg/errors"

	"github.com/biogrep/crispr/crispr"
)

// featRepeatRegion and featRepeatUnit are the SOFA feature types used for
// the outer CRISPR array and its individual repeats, matching the
// vocabulary minced/CRT-family tools already emit.
const (
	featRepeatRegion = "repeat_region"
	featRepeatUnit   = "repeat_unit"
	rptFamily        = "CRISPR"
)

// Writer emits GFF3 records for CRISPR arrays found on one or more
// sequences. It is not safe for concurrent use.
type Writer struct {
	enc    *gff.Writer
	source string
	n      int
}

// NewWriter returns a Writer that writes GFF3 to w, tagging every
// feature's source column with source.
func NewWriter(w io.Writer, source string) *Writer {
	return &Writer{enc: gff.NewWriter(w, 60, true), source: source}
}

// WriteCrispr writes one repeat_region feature spanning c, followed by
// one repeat_unit feature per repeat in c, against the named sequence.
// Features carry c's zero-based half-open coordinates; the biogo encoder
// adds one to the start when writing, so the output uses GFF3's one-based
// inclusive convention.
func (w *Writer) WriteCrispr(seqName string, c *crispr.Crispr) error {
	w.n++
	id := fmt.Sprintf("CRISPR%d", w.n)

	region := c.Region()
	repeatCount := float64(c.Len())
	// The reference output uses the second repeat (index 1), not the
	// first, as the representative rpt_unit_seq.
	regionFeat := &gff.Feature{
		SeqName:    seqName,
		Source:     w.source,
		Feature:    featRepeatRegion,
		FeatStart:  region.Start(),
		FeatEnd:    region.End(),
		FeatScore:  &repeatCount,
		FeatStrand: seq.Plus,
		FeatFrame:  gff.NoFrame,
		FeatAttributes: gff.Attributes{
			{Tag: "ID", Value: id},
			{Tag: "rpt_type", Value: "direct"},
			{Tag: "rpt_family", Value: rptFamily},
			{Tag: "rpt_unit_seq", Value: c.Repeat(1).String()},
		},
	}
	if _, err := w.enc.Write(regionFeat); err != nil {
		return err
	}

	for i, r := range c.Repeats() {
		unitFeat := &gff.Feature{
			SeqName:    seqName,
			Source:     w.source,
			Feature:    featRepeatUnit,
			FeatStart:  r.Start(),
			FeatEnd:    r.End(),
			FeatStrand: seq.Plus,
			FeatFrame:  gff.NoFrame,
			FeatAttributes: gff.Attributes{
				{Tag: "Parent", Value: id},
				{Tag: "rpt_type", Value: "direct"},
				{Tag: "rpt_family", Value: rptFamily},
			},
		}
		if _, err := w.enc.Write(unitFeat); err != nil {
			return errors.Wrapf(err, "writing repeat %d of %s", i, id)
		}
	}
	return nil
}
