package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/genomepost/sarekTools/conda"
	"github.com/vertgenlab/gonomics/exception"
)

// Exit codes. Partial success (manifest produced, warnings present) is
// distinct from both full success and fatal failure.
const (
	exitFatal    = 1
	exitWarnings = 2
)

// parseFlags parses subcommand arguments. A malformed flag is an input
// error and exits fatally, so it never shares an exit code with a run
// that completed with warnings.
func parseFlags(flags *flag.FlagSet, usage func(), args []string) {
	flags.Usage = usage
	if flags.Parse(args) != nil {
		os.Exit(exitFatal)
	}
}

// projectOutputDir returns <base>/<project>/output, creating it and its
// logs subdirectory on demand.
func projectOutputDir(baseDir, project string) string {
	dir := filepath.Join(baseDir, project, "output")
	err := os.MkdirAll(filepath.Join(dir, "logs"), 0755)
	exception.PanicOnErr(err)
	return dir
}

// startLog sends log output to stdout and an append-mode log file named
// for the stage and project, and returns the log file path.
func startLog(outputDir, stage, project string) string {
	logFile := filepath.Join(outputDir, "logs", fmt.Sprintf("%s_%s.log", stage, project))
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	exception.PanicOnErr(err)
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return logFile
}

// checkEnv exits when a requested conda environment cannot be found.
// An empty name means the tool runs straight off the PATH.
func checkEnv(env string) {
	if env == "" {
		return
	}
	ok, err := conda.CheckEnv(env)
	if err != nil {
		errExit(fmt.Sprintf("ERROR: could not list conda environments: %v", err))
	}
	if !ok {
		errExit(fmt.Sprintf("ERROR: conda environment %q does not exist", env))
	}
}

// vcfGlob returns files in dir matching pattern, skipping .tbi/.csi
// index files.
func vcfGlob(dir, pattern string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	exception.PanicOnErr(err)
	var ans []string
	for _, m := range matches {
		if strings.HasSuffix(m, ".tbi") || strings.HasSuffix(m, ".csi") {
			continue
		}
		ans = append(ans, m)
	}
	return ans
}

func formatRuntime(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
