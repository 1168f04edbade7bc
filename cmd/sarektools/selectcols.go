package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/genomepost/sarekTools/vep"
)

func selectColsUsage(selectFlags *flag.FlagSet) {
	fmt.Print(
		"selectcols - extract selected VEP annotation columns from a split-VEP vcf to a tsv.\n" +
			"Only columns split out in the splitvep step are available; CHROM, POS, REF and ALT\n" +
			"are always included. Reads the vcf directly, no bcftools needed.\n\n" +
			"Usage:\n" +
			"  sarektools selectcols -p project -o base_dir -config fields.json\n\n" +
			"Options:\n")
	selectFlags.PrintDefaults()
}

func runSelectCols(args []string) {
	selectFlags := flag.NewFlagSet("selectcols", flag.ContinueOnError)

	project := selectFlags.String("p", "", "Project name.")
	baseDir := selectFlags.String("o", "", "Base output directory.")
	configFile := selectFlags.String("config", "", "JSON config with the 'fields' to extract.")

	parseFlags(selectFlags, func() { selectColsUsage(selectFlags) }, args)

	if *project == "" || *baseDir == "" || *configFile == "" {
		selectFlags.Usage()
		errExit("\nERROR: must set -p, -o and -config")
	}

	fields, err := vep.LoadFields(*configFile)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	outputDir := projectOutputDir(*baseDir, *project)
	vcfs := vcfGlob(outputDir, "*filter_impact.vcf*")
	if len(vcfs) == 0 {
		errExit(fmt.Sprintf("ERROR: no filter_impact vcf files found in %s", outputDir))
	}

	logFile := startLog(outputDir, "selectcols", *project)
	start := time.Now()
	log.Print("# --- Select VEP annotation columns ---")
	log.Printf("Project: %s", *project)
	log.Printf("Fields: %s", strings.Join(fields, ", "))

	for _, in := range vcfs {
		out := filepath.Join(outputDir, fmt.Sprintf("select_vep_cols_%s.tsv", *project))
		vep.ExtractColumns(in, out, fields)
		log.Printf("%s -> %s", filepath.Base(in), filepath.Base(out))
	}

	log.Printf("Log written: %s", logFile)
	log.Printf("# Runtime: %s", formatRuntime(time.Since(start)))
}
