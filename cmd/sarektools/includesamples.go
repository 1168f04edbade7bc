package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/genomepost/sarekTools/bcftools"
	"github.com/genomepost/sarekTools/conda"
)

func includeSamplesUsage(includeFlags *flag.FlagSet) {
	fmt.Print(
		"includesamples - write a new vcf keeping only the samples in a list file.\n" +
			"Samples prefixed with ^ in the list are excluded instead.\n\n" +
			"Usage:\n" +
			"  sarektools includesamples -p project -i input.vcf.gz -s samples.txt -o base_dir [-e env]\n\n" +
			"Options:\n")
	includeFlags.PrintDefaults()
}

func runIncludeSamples(args []string) {
	var err error
	includeFlags := flag.NewFlagSet("includesamples", flag.ContinueOnError)

	project := includeFlags.String("p", "", "Project name.")
	input := includeFlags.String("i", "", "Input vcf file.")
	sampleFile := includeFlags.String("s", "", "File listing samples to keep, one per line.")
	baseDir := includeFlags.String("o", "", "Base output directory.")
	env := includeFlags.String("e", "", "Conda environment with bcftools installed. Empty runs bcftools from the PATH.")

	parseFlags(includeFlags, func() { includeSamplesUsage(includeFlags) }, args)

	if *project == "" || *input == "" || *sampleFile == "" || *baseDir == "" {
		includeFlags.Usage()
		errExit("\nERROR: must set -p, -i, -s and -o")
	}
	if _, err = os.Stat(*input); err != nil {
		errExit(fmt.Sprintf("ERROR: input vcf not found: %s", *input))
	}
	if _, err = os.Stat(*sampleFile); err != nil {
		errExit(fmt.Sprintf("ERROR: sample list not found: %s", *sampleFile))
	}
	checkEnv(*env)

	outputDir := projectOutputDir(*baseDir, *project)
	logFile := startLog(outputDir, "includesamples", *project)
	start := time.Now()

	log.Print("# --- Subset vcf to listed samples ---")
	log.Printf("Project: %s", *project)
	log.Printf("Input vcf: %s", *input)
	log.Printf("Sample list: %s", *sampleFile)

	outfile := filepath.Join(outputDir, subsetName(*input))
	err = conda.RunCommand(conda.RunArgs(*env, bcftools.ViewSamplesArgs(*input, *sampleFile, outfile)...))
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	if strings.HasSuffix(outfile, ".gz") {
		err = conda.RunCommand(conda.RunArgs(*env, bcftools.IndexArgs(outfile)...))
		if err != nil {
			errExit("ERROR: " + err.Error())
		}
	}

	log.Printf("Output written: %s", outfile)
	log.Printf("Log written: %s", logFile)
	log.Printf("# Runtime: %s", formatRuntime(time.Since(start)))
}

// subsetName derives the output name from the input vcf, keeping the
// compression state: in.vcf.gz becomes in.include_samples.vcf.gz.
func subsetName(input string) string {
	base := filepath.Base(input)
	switch {
	case strings.HasSuffix(base, ".vcf.gz"):
		return strings.TrimSuffix(base, ".vcf.gz") + ".include_samples.vcf.gz"
	case strings.HasSuffix(base, ".vcf"):
		return strings.TrimSuffix(base, ".vcf") + ".include_samples.vcf"
	default:
		return base + ".include_samples.vcf.gz"
	}
}
