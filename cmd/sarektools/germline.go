package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/genomepost/sarekTools/conda"
	"github.com/genomepost/sarekTools/sarek"
	"github.com/vertgenlab/gonomics/exception"
)

func germlineUsage(germlineFlags *flag.FlagSet) {
	fmt.Print(
		"germline - run the full nf-core/sarek germline pipeline: mapping, joint calling\n" +
			"with haplotypecaller, and VEP annotation, driven by a JSON run config.\n\n" +
			"Usage:\n" +
			"  sarektools germline -p project -i fastq_input.csv -o base_dir -config run.json [-e env]\n\n" +
			"Options:\n")
	germlineFlags.PrintDefaults()
}

func runGermline(args []string) {
	germlineFlags := flag.NewFlagSet("germline", flag.ContinueOnError)

	project := germlineFlags.String("p", "", "Project name.")
	input := germlineFlags.String("i", "", "Sarek FASTQ input csv, from the manifest step.")
	baseDir := germlineFlags.String("o", "", "Base output directory.")
	configFile := germlineFlags.String("config", "", "JSON run config with reference paths, VEP plugins and dbNSFP settings.")
	env := germlineFlags.String("e", "", "Conda environment with nextflow installed. Empty runs nextflow from the PATH.")
	skipVcftools := germlineFlags.String("skipVcftoolsConfig", "", "Extra nextflow config disabling the VCFTOOLS_TSTV_COUNT step, which segfaults on some joint-called vcfs. Ts/Tv is available from the summary command instead.")

	parseFlags(germlineFlags, func() { germlineUsage(germlineFlags) }, args)

	if *project == "" || *input == "" || *baseDir == "" || *configFile == "" {
		germlineFlags.Usage()
		errExit("\nERROR: must set -p, -i, -o and -config")
	}

	var extraConfigs []string
	if *skipVcftools != "" {
		extraConfigs = append(extraConfigs, *skipVcftools)
	}
	execSarek("germline", *project, *input, *baseDir, *configFile, *env, sarek.GermlineArgs, extraConfigs)
}

// execSarek validates inputs, builds the nextflow invocation with the given
// args builder and runs it, sharing the setup between the germline and
// annotate subcommands.
func execSarek(stage, project, input, baseDir, configFile, env string,
	build func(input, outdir string, cfg sarek.Config, nfConfigs []string) []string, extraConfigs []string) {
	cfg, err := sarek.LoadConfig(configFile)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	if _, err = os.Stat(input); err != nil {
		errExit(fmt.Sprintf("ERROR: input file not found: %s", input))
	}
	checkEnv(env)

	outputDir := projectOutputDir(baseDir, project)
	logFile := startLog(outputDir, stage, project)
	start := time.Now()

	// better nextflow diagnostics unless already set
	if os.Getenv("NXF_OPTS") == "" {
		err = os.Setenv("NXF_OPTS", "-Dnextflow.trace.stack=true")
		exception.PanicOnErr(err)
	}

	nfConfig, err := sarek.WriteNextflowConfig()
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	nfConfigs := append([]string{nfConfig}, extraConfigs...)

	log.Printf("# --- Run sarek (%s) ---", stage)
	log.Printf("Project: %s", project)
	log.Printf("Input file: %s", input)
	log.Printf("Output dir: %s", outputDir)
	log.Printf("Conda env: %s", env)
	log.Printf("Temp nextflow config: %s", nfConfig)

	err = conda.RunCommand(conda.RunArgs(env, build(input, outputDir, cfg, nfConfigs)...))
	if err != nil {
		log.Printf("ERROR: nextflow command failed: %v", err)
		// keep the temp config for debugging
		log.Printf("Left temp nextflow config at: %s", nfConfig)
		os.Exit(exitFatal)
	}
	err = os.Remove(nfConfig)
	exception.PanicOnErr(err)

	log.Printf("# Runtime: %s", formatRuntime(time.Since(start)))
	log.Printf("Log written: %s", logFile)
}
