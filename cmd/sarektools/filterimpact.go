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

const impactExpr = "vep_IMPACT='MODERATE' || vep_IMPACT='HIGH'"

func filterImpactUsage(impactFlags *flag.FlagSet) {
	fmt.Print(
		"filterimpact - keep only HIGH and MODERATE impact variants from a split-VEP vcf.\n\n" +
			"Usage:\n" +
			"  sarektools filterimpact -p project -o base_dir [-e env]\n\n" +
			"Options:\n")
	impactFlags.PrintDefaults()
}

func runFilterImpact(args []string) {
	var err error
	impactFlags := flag.NewFlagSet("filterimpact", flag.ContinueOnError)

	project := impactFlags.String("p", "", "Project name.")
	baseDir := impactFlags.String("o", "", "Base output directory.")
	env := impactFlags.String("e", "", "Conda environment with bcftools installed. Empty runs bcftools from the PATH.")

	parseFlags(impactFlags, func() { filterImpactUsage(impactFlags) }, args)

	if *project == "" || *baseDir == "" {
		impactFlags.Usage()
		errExit("\nERROR: must set -p and -o")
	}
	checkEnv(*env)

	outputDir := projectOutputDir(*baseDir, *project)
	vcfs := vcfGlob(outputDir, "*split_vep.vcf*")
	if len(vcfs) == 0 {
		errExit(fmt.Sprintf("ERROR: no split_vep vcf files found in %s", outputDir))
	}

	logFile := startLog(outputDir, "filterimpact", *project)
	start := time.Now()
	log.Print("# --- Filter vcfs on VEP impact ---")
	log.Printf("Project: %s", *project)
	log.Printf("Include expression: %s", impactExpr)

	var failed int
	for _, in := range vcfs {
		out := filepath.Join(outputDir, "filter_impact.vcf.gz")
		if strings.HasSuffix(in, ".vcf") {
			out = filepath.Join(outputDir, "filter_impact.vcf")
		}
		err = conda.RunCommand(conda.RunArgs(*env, bcftools.ViewIncludeArgs(in, out, impactExpr)...))
		if err == nil && strings.HasSuffix(out, ".gz") {
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
