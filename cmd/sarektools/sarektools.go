package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.1.0"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands, one per pipeline stage.
// New stages can be added to sarektools by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"manifest", runManifest, "build the sarek FASTQ input csv from a directory of FASTQs"},
	{"germline", runGermline, "run the full nf-core/sarek germline pipeline (FASTQ to annotated VCF)"},
	{"annotate", runAnnotate, "run nf-core/sarek from the annotation step"},
	{"includesamples", runIncludeSamples, "subset a vcf to the samples in a list"},
	{"filterpass", runFilterPass, "keep only PASS variants in sarek output vcfs"},
	{"splitvep", runSplitVep, "split VEP CSQ annotations into separate INFO tags"},
	{"filterimpact", runFilterImpact, "keep only HIGH and MODERATE impact variants"},
	{"selectcols", runSelectCols, "extract selected VEP columns to a tsv"},
	{"summary", runSummary, "per-sample counts and Ts/Tv for a callset"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: sarektools (run and post-process the nf-core/sarek pipeline)\n" +
			"Version: " + version + "\n" +
			"\nUsage:\tsarektools <command> [options]\n\n" +
			"Commands:\n")

	// add subcommand text via tabwriter so the columns align
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// check if first argument is a valid subcommand
	command := commandMap()[flag.Arg(0)]

	// a missing or unknown command is an input error, not a success
	if command == nil {
		flag.Usage()
		if flag.NArg() > 0 {
			errExit(fmt.Sprintf("\nERROR: unknown command %q", flag.Arg(0)))
		}
		os.Exit(exitFatal)
	}

	// if command successfully found, pass in remaining arguments and execute
	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitFatal)
}
