// Package summary computes quick QC numbers over a final callset:
// per-sample variant counts and the Ts/Tv ratio of SNVs. Sarek's own
// vcftools Ts/Tv step segfaults on some joint-called VCFs, so this gives
// the same sanity numbers without the pipeline dependency.
package summary

import (
	"fmt"

	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/vcf"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Stats holds per-sample non-reference genotype counts and SNV
// transition/transversion tallies for one VCF.
type Stats struct {
	Samples       []string
	Counts        []int
	Records       int
	Transitions   int
	Transversions int
}

// Collect reads a VCF and tallies per-sample non-ref genotypes and SNV
// transition/transversion counts.
func Collect(vcfFile string) Stats {
	vcfChan, header := vcf.GoReadToChan(vcfFile)

	var s Stats
	s.Samples = sampleNames(header)
	s.Counts = make([]int, len(s.Samples))

	for v := range vcfChan {
		s.Records++
		if isSnv(v) {
			if isTransition(v.Ref, v.Alt[0]) {
				s.Transitions++
			} else {
				s.Transversions++
			}
		}
		for i := range v.Samples {
			if i >= len(s.Counts) {
				break
			}
			if hasAlt(v.Samples[i].Alleles) {
				s.Counts[i]++
			}
		}
	}
	return s
}

// sampleNames orders the header sample map by column index.
func sampleNames(header vcf.Header) []string {
	names := maps.Keys(header.Samples)
	slices.SortFunc(names, func(a, b string) int {
		return header.Samples[a] - header.Samples[b]
	})
	return names
}

func hasAlt(alleles []int16) bool {
	for _, a := range alleles {
		if a > 0 {
			return true
		}
	}
	return false
}

func isSnv(v vcf.Vcf) bool {
	return len(v.Ref) == 1 && len(v.Alt) >= 1 && len(v.Alt[0]) == 1 &&
		isBase(v.Ref[0]) && isBase(v.Alt[0][0])
}

// isBase rejects missing and symbolic alleles before base parsing.
func isBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	default:
		return false
	}
}

// isTransition reports whether a ref/alt SNV pair is a purine-purine or
// pyrimidine-pyrimidine exchange.
func isTransition(ref, alt string) bool {
	r := dna.StringToBases(ref)[0]
	a := dna.StringToBases(alt)[0]
	switch {
	case r == dna.A && a == dna.G, r == dna.G && a == dna.A:
		return true
	case r == dna.C && a == dna.T, r == dna.T && a == dna.C:
		return true
	default:
		return false
	}
}

// TsTv returns the transition/transversion ratio. Zero transversions give 0.
func (s Stats) TsTv() float64 {
	if s.Transversions == 0 {
		return 0
	}
	return float64(s.Transitions) / float64(s.Transversions)
}

// MeanSD returns the mean and standard deviation of per-sample counts.
func (s Stats) MeanSD() (mean, sd float64) {
	if len(s.Counts) == 0 {
		return 0, 0
	}
	vals := floatCounts(s.Counts)
	return stat.Mean(vals, nil), stat.StdDev(vals, nil)
}

func floatCounts(counts []int) []float64 {
	vals := make([]float64, len(counts))
	for i := range counts {
		vals[i] = float64(counts[i])
	}
	return vals
}

func (s Stats) String() string {
	mean, sd := s.MeanSD()
	return fmt.Sprintf("records: %d\tsamples: %d\tTs/Tv: %.2f\tvariants per sample: %.1f +/- %.1f",
		s.Records, len(s.Samples), s.TsTv(), mean, sd)
}
