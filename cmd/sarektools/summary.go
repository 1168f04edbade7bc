package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/genomepost/sarekTools/summary"
)

func summaryUsage(summaryFlags *flag.FlagSet) {
	fmt.Print(
		"summary - per-sample variant counts and Ts/Tv ratio for a callset.\n" +
			"A replacement for the vcftools Ts/Tv step that crashes inside sarek on\n" +
			"some joint-called vcfs.\n\n" +
			"Usage:\n" +
			"  sarektools summary -i input.vcf.gz [-plot counts.png]\n\n" +
			"Options:\n")
	summaryFlags.PrintDefaults()
}

func runSummary(args []string) {
	var err error
	summaryFlags := flag.NewFlagSet("summary", flag.ContinueOnError)

	input := summaryFlags.String("i", "", "Input vcf file.")
	plotFile := summaryFlags.String("plot", "", "Write a bar chart of per-sample counts (.png, .pdf or .svg).")

	parseFlags(summaryFlags, func() { summaryUsage(summaryFlags) }, args)

	if *input == "" {
		summaryFlags.Usage()
		errExit("\nERROR: must input a vcf file with -i")
	}
	if _, err = os.Stat(*input); err != nil {
		errExit(fmt.Sprintf("ERROR: input vcf not found: %s", *input))
	}

	stats := summary.Collect(*input)
	fmt.Println(stats)
	for i := range stats.Samples {
		fmt.Printf("%s\t%d\n", stats.Samples[i], stats.Counts[i])
	}
	if graph := stats.AsciiPlot(); graph != "" {
		fmt.Println(graph)
	}

	if *plotFile != "" {
		err = stats.SavePlot(*plotFile)
		if err != nil {
			errExit("ERROR: " + err.Error())
		}
		log.Printf("Plot written: %s", *plotFile)
	}
}
