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

// jointCallingDir is where sarek leaves the annotated joint-called vcfs,
// relative to the project output directory.
var jointCallingDir = filepath.Join("sarek_results", "annotation", "haplotypecaller", "joint_variant_calling")

func filterPassUsage(passFlags *flag.FlagSet) {
	fmt.Print(
		"filterpass - keep only FILTER == PASS variants in the sarek joint-called vcfs.\n\n" +
			"Usage:\n" +
			"  sarektools filterpass -p project -o base_dir [-e env]\n\n" +
			"Options:\n")
	passFlags.PrintDefaults()
}

func runFilterPass(args []string) {
	var err error
	passFlags := flag.NewFlagSet("filterpass", flag.ContinueOnError)

	project := passFlags.String("p", "", "Project name.")
	baseDir := passFlags.String("o", "", "Base output directory holding the sarek results.")
	env := passFlags.String("e", "", "Conda environment with bcftools installed. Empty runs bcftools from the PATH.")

	parseFlags(passFlags, func() { filterPassUsage(passFlags) }, args)

	if *project == "" || *baseDir == "" {
		passFlags.Usage()
		errExit("\nERROR: must set -p and -o")
	}
	checkEnv(*env)

	outputDir := projectOutputDir(*baseDir, *project)
	inputDir := filepath.Join(outputDir, jointCallingDir)
	if _, err = os.Stat(inputDir); err != nil {
		errExit(fmt.Sprintf("ERROR: input directory does not exist: %s", inputDir))
	}

	vcfs := vcfGlob(inputDir, "*.vcf.gz")
	if len(vcfs) == 0 {
		errExit(fmt.Sprintf("ERROR: no vcf files found in %s", inputDir))
	}

	logFile := startLog(outputDir, "filterpass", *project)
	start := time.Now()
	log.Print("# --- Filter vcfs on PASS ---")
	log.Printf("Project: %s", *project)
	log.Printf("Input dir: %s", inputDir)

	var failed int
	for _, in := range vcfs {
		out := filepath.Join(outputDir, strings.TrimSuffix(filepath.Base(in), ".vcf.gz")+".PASS.vcf.gz")
		err = conda.RunCommand(conda.RunArgs(*env, bcftools.ViewPassArgs(in, out)...))
		if err == nil {
			err = conda.RunCommand(conda.RunArgs(*env, bcftools.IndexArgs(out)...))
		}
		if err != nil {
			log.Printf("ERROR: %s: %v", filepath.Base(in), err)
			failed++
			continue
		}
		log.Printf("%s -> %s", filepath.Base(in), filepath.Base(out))
	}

	log.Printf("# Summary: %d succeeded, %d failed, %d total", len(vcfs)-failed, failed, len(vcfs))
	log.Printf("Log written: %s", logFile)
	log.Printf("# Runtime: %s", formatRuntime(time.Since(start)))
	if failed > 0 {
		os.Exit(exitWarnings)
	}
}
