// Package manifest discovers paired-end FASTQ files by filename and builds
// the input CSV consumed by the nf-core/sarek pipeline. Files that cannot
// be paired are never written to the manifest; they are reported separately.
package manifest

import (
	"fmt"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
)

// WriteManifest writes the sarek input CSV, one row per MatePair with a
// header of patient,sample,lane,fastq_1,fastq_2. Patient ids are numbered
// from the sorted set of sample names, so output is deterministic for a
// given set of pairs.
func WriteManifest(pairs []MatePair, outfile string) {
	var samples []string
	for _, p := range pairs {
		if !slices.Contains(samples, p.Sample) {
			samples = append(samples, p.Sample)
		}
	}
	slices.Sort(samples)
	patient := make(map[string]int)
	for i, s := range samples {
		patient[s] = i + 1
	}

	out := fileio.EasyCreate(outfile)
	fmt.Fprintln(out, "patient,sample,lane,fastq_1,fastq_2")
	for _, p := range pairs {
		fmt.Fprintf(out, "%d,%s,%s,%s,%s\n", patient[p.Sample], p.Sample, p.Lane, p.R1, p.R2)
	}
	err := out.Close()
	exception.PanicOnErr(err)
}

// WriteReport writes a human-readable listing of unmatched files and
// duplicate-slot errors next to the manifest.
func WriteReport(rep Report, outfile string) {
	out := fileio.EasyCreate(outfile)
	fmt.Fprintf(out, "Paired FASTQs: %d\n", rep.Pairs)
	fmt.Fprintf(out, "Unmatched files: %d\n", len(rep.Unmatched))
	for _, f := range rep.Unmatched {
		fmt.Fprintf(out, "\tunmatched R%d: %s\n", f.Read, f.Path)
	}
	fmt.Fprintf(out, "Ambiguous groups: %d\n", len(rep.Duplicates))
	for _, d := range rep.Duplicates {
		fmt.Fprintf(out, "\tduplicate slot: %s\n", d)
	}
	err := out.Close()
	exception.PanicOnErr(err)
}
