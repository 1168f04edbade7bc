package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/genomepost/sarekTools/manifest"
)

func manifestUsage(manifestFlags *flag.FlagSet) {
	fmt.Print(
		"manifest - scan a directory for paired-end FASTQ files and build the input csv for nf-core/sarek\n\n" +
			"Recognizes _R1/_R2 and _1/_2 read designators, compressed or not, with optional lane\n" +
			"and chunk tokens. Files without a mate are reported, never written to the manifest.\n" +
			"Exits 0 when everything paired, " + fmt.Sprint(exitWarnings) + " when the manifest was written with warnings.\n\n" +
			"Usage:\n" +
			"  sarektools manifest -p project -f fastq_dir -o base_dir\n\n" +
			"Options:\n")
	manifestFlags.PrintDefaults()
}

func runManifest(args []string) {
	manifestFlags := flag.NewFlagSet("manifest", flag.ContinueOnError)

	project := manifestFlags.String("p", "", "Project name. Used for output file and directory naming.")
	fastqDir := manifestFlags.String("f", "", "Directory to scan for FASTQ files.")
	baseDir := manifestFlags.String("o", "", "Base output directory. Subdirectories are created per project.")

	parseFlags(manifestFlags, func() { manifestUsage(manifestFlags) }, args)

	if *project == "" || *fastqDir == "" || *baseDir == "" {
		manifestFlags.Usage()
		errExit("\nERROR: must set -p, -f and -o")
	}

	// fatal conditions are checked before any output is written
	files, err := manifest.Scan(*fastqDir, manifest.DefaultPatterns)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	if len(files) == 0 {
		errExit(fmt.Sprintf("ERROR: no FASTQ files found under %s", *fastqDir))
	}

	outputDir := projectOutputDir(*baseDir, *project)
	logFile := startLog(outputDir, "manifest", *project)
	start := time.Now()

	log.Print("# --- Generate FASTQ input file for sarek ---")
	log.Printf("Project: %s", *project)
	log.Printf("Fastq dir: %s", *fastqDir)
	log.Printf("Output dir: %s", outputDir)

	pairs, rep := manifest.Pair(files)
	outfile := filepath.Join(outputDir, fmt.Sprintf("sarek_fastq_input_%s.csv", *project))
	reportFile := filepath.Join(outputDir, fmt.Sprintf("fastq_pairing_report_%s.txt", *project))
	manifest.WriteManifest(pairs, outfile)
	manifest.WriteReport(rep, reportFile)

	log.Printf("Total paired FASTQs: %d", rep.Pairs)
	log.Printf("Total unmatched files: %d", len(rep.Unmatched))
	for _, f := range rep.Unmatched {
		log.Printf("WARNING: R%d file has no mate: %s", f.Read, f.Path)
	}
	for _, d := range rep.Duplicates {
		log.Printf("WARNING: %s", d)
	}
	log.Printf("Manifest written: %s", outfile)
	log.Printf("Report written: %s", reportFile)
	log.Printf("Log written: %s", logFile)
	log.Printf("# Runtime: %s", formatRuntime(time.Since(start)))

	if !rep.Clean() {
		os.Exit(exitWarnings)
	}
}
