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
	"github.com/genomepost/sarekTools/vep"
)

func splitVepUsage(splitFlags *flag.FlagSet) {
	fmt.Print(
		"splitvep - split the VEP CSQ annotation into separate vep_ INFO tags,\n" +
			"keep canonical transcripts only, and index the result.\n" +
			"Needs bcftools " + bcftools.MinSplitVepVersion + " or newer for the +split-vep plugin.\n\n" +
			"Usage:\n" +
			"  sarektools splitvep -p project -o base_dir -config columns.json [-e env] [-keepTemp]\n\n" +
			"Options:\n")
	splitFlags.PrintDefaults()
}

func runSplitVep(args []string) {
	splitFlags := flag.NewFlagSet("splitvep", flag.ContinueOnError)

	project := splitFlags.String("p", "", "Project name.")
	baseDir := splitFlags.String("o", "", "Base output directory.")
	configFile := splitFlags.String("config", "", "JSON config with the 'columns' to split out of CSQ.")
	env := splitFlags.String("e", "", "Conda environment with bcftools installed. Empty runs bcftools from the PATH.")
	keepTemp := splitFlags.Bool("keepTemp", false, "Keep intermediate temp files for debugging.")

	parseFlags(splitFlags, func() { splitVepUsage(splitFlags) }, args)

	if *project == "" || *baseDir == "" || *configFile == "" {
		splitFlags.Usage()
		errExit("\nERROR: must set -p, -o and -config")
	}
	checkEnv(*env)

	columns, err := vep.LoadColumns(*configFile)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	version, err := bcftools.Version(*env)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	if !bcftools.AtLeast(version, bcftools.MinSplitVepVersion) {
		errExit(fmt.Sprintf("ERROR: bcftools %s is too old, need >= %s for the +split-vep plugin", version, bcftools.MinSplitVepVersion))
	}

	outputDir := projectOutputDir(*baseDir, *project)
	vcfs := vcfGlob(outputDir, "*PASS.vcf*")
	if len(vcfs) == 0 {
		errExit(fmt.Sprintf("ERROR: no PASS vcf files found in %s", outputDir))
	}

	logFile := startLog(outputDir, "splitvep", *project)
	start := time.Now()
	log.Print("# --- Split VEP annotations ---")
	log.Printf("Project: %s", *project)
	log.Printf("bcftools version: %s", version)
	log.Printf("Columns: %s", columns)

	var failed int
	for _, in := range vcfs {
		out := filepath.Join(outputDir, "split_vep.vcf.gz")
		if strings.HasSuffix(in, ".vcf") {
			out = filepath.Join(outputDir, "split_vep.vcf")
		}
		if err = vep.Split(in, out, columns, *env, outputDir, *keepTemp); err != nil {
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
