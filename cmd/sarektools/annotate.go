package main

import (
	"flag"
	"fmt"

	"github.com/genomepost/sarekTools/sarek"
)

func annotateUsage(annotateFlags *flag.FlagSet) {
	fmt.Print(
		"annotate - run nf-core/sarek from the annotation step over existing VCFs.\n\n" +
			"Usage:\n" +
			"  sarektools annotate -p project -i vcf_input.csv -o base_dir -config run.json [-e env]\n\n" +
			"Options:\n")
	annotateFlags.PrintDefaults()
}

func runAnnotate(args []string) {
	annotateFlags := flag.NewFlagSet("annotate", flag.ContinueOnError)

	project := annotateFlags.String("p", "", "Project name.")
	input := annotateFlags.String("i", "", "Sarek input csv for the annotation step (vcf format).")
	baseDir := annotateFlags.String("o", "", "Base output directory.")
	configFile := annotateFlags.String("config", "", "JSON run config with reference paths, VEP plugins and dbNSFP settings.")
	env := annotateFlags.String("e", "", "Conda environment with nextflow installed. Empty runs nextflow from the PATH.")

	parseFlags(annotateFlags, func() { annotateUsage(annotateFlags) }, args)

	if *project == "" || *input == "" || *baseDir == "" || *configFile == "" {
		annotateFlags.Usage()
		errExit("\nERROR: must set -p, -i, -o and -config")
	}

	execSarek("annotate", *project, *input, *baseDir, *configFile, *env, sarek.AnnotateArgs, nil)
}
