package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// When SAREKTOOLS_ARGS is set the test binary stands in for the real
// program, so the parent test process can observe real exit codes.
func TestMain(m *testing.M) {
	if args := os.Getenv("SAREKTOOLS_ARGS"); args != "" {
		os.Args = append([]string{"sarektools"}, strings.Fields(args)...)
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func runSelf(t *testing.T, args string) int {
	t.Helper()
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), "SAREKTOOLS_ARGS="+args)
	err := cmd.Run()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal(err)
	}
	return exitErr.ExitCode()
}

func writeFastqs(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// An unknown command and a malformed flag are both input errors and must
// exit with the fatal code, never 0 or the warning code.
func TestBadInputExitCodes(t *testing.T) {
	if got := runSelf(t, "boguscmd"); got != exitFatal {
		t.Errorf("unknown command exited %d, want %d", got, exitFatal)
	}
	if got := runSelf(t, "manifest -badflag"); got != exitFatal {
		t.Errorf("malformed flag exited %d, want %d", got, exitFatal)
	}
}

func TestManifestExitCodes(t *testing.T) {
	// all files paired
	clean := writeFastqs(t, "S1_L1_R1.fastq.gz", "S1_L1_R2.fastq.gz")
	if got := runSelf(t, "manifest -p proj -f "+clean+" -o "+t.TempDir()); got != 0 {
		t.Errorf("clean run exited %d, want 0", got)
	}

	// manifest written, but one file has no mate
	warn := writeFastqs(t, "S1_L1_R1.fastq.gz", "S1_L1_R2.fastq.gz", "S2_L1_R1.fq")
	if got := runSelf(t, "manifest -p proj -f "+warn+" -o "+t.TempDir()); got != exitWarnings {
		t.Errorf("run with an unmatched file exited %d, want %d", got, exitWarnings)
	}
}

// A directory with no recognized FASTQ files is fatal and must not
// create the project output directory.
func TestManifestNoFastqFatal(t *testing.T) {
	fastqDir := writeFastqs(t, "notes.txt", "alignments.bam")
	baseDir := t.TempDir()
	if got := runSelf(t, "manifest -p proj -f "+fastqDir+" -o "+baseDir); got != exitFatal {
		t.Errorf("fastq-free directory exited %d, want %d", got, exitFatal)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "proj")); !os.IsNotExist(err) {
		t.Error("output directory was created before the fatal check")
	}
}
