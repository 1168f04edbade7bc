// Package bcftools builds argv slices for the bcftools commands used in
// sarek post-processing. Nothing here touches VCF content; commands are
// executed with conda.RunCommand, optionally inside a conda environment.
package bcftools

import (
	"strings"
)

// outputType picks the bcftools output type for a target path: compressed
// when the name ends in .gz, plain VCF otherwise.
func outputType(path string) string {
	if strings.HasSuffix(path, ".gz") {
		return "z"
	}
	return "v"
}

// ViewSamplesArgs subsets a VCF to the samples listed in sampleFile.
// Samples prefixed with ^ in the file are excluded, as bcftools defines it.
func ViewSamplesArgs(in, sampleFile, out string) []string {
	return []string{"bcftools", "view", "--samples-file", sampleFile, in, "-O" + outputType(out), "-o", out}
}

// ViewPassArgs keeps only records with FILTER == PASS.
func ViewPassArgs(in, out string) []string {
	return []string{"bcftools", "view", "-f", "PASS", in, "-O" + outputType(out), "-o", out}
}

// ViewIncludeArgs keeps only records matching a bcftools --include expression.
func ViewIncludeArgs(in, out, expr string) []string {
	return []string{"bcftools", "view", in, "--include", expr, "--output", out, "--output-type", outputType(out)}
}

// IndexArgs builds a tabix index for a compressed VCF.
func IndexArgs(vcf string) []string {
	return []string{"bcftools", "index", "-t", vcf}
}

// SplitVepArgs explodes the CSQ annotation into one vep_-prefixed INFO tag
// per configured column, duplicating records with multiple consequences.
func SplitVepArgs(in, out, columns string) []string {
	return []string{
		"bcftools", "+split-vep", in,
		"--duplicate",
		"--columns", columns,
		"--annot-prefix", "vep_",
		"--output", out,
		"--output-type", outputType(out),
	}
}

// RemoveInfoArgs drops an INFO tag, used to strip the redundant CSQ blob
// after splitting.
func RemoveInfoArgs(in, out, tag string) []string {
	return []string{"bcftools", "annotate", "--remove", "INFO/" + tag, "-O" + outputType(out), "-o", out, in}
}
