package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeFastqDir(t *testing.T, names ...string) string {
	dir := t.TempDir()
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), nil, 0644)
		if err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestScan(t *testing.T) {
	dir := makeFastqDir(t,
		"S1_L001_R1_001.fastq.gz",
		"S1_L001_R2_001.fastq.gz",
		"notes.txt",
	)
	// matching files in a subdirectory must be found too
	sub := filepath.Join(dir, "runB")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "S2_1.fq"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	files, err := Scan(dir, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 fastq files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if _, statErr := os.Stat(f.Path); statErr != nil {
			t.Errorf("scanned path does not exist on disk: %s", f.Path)
		}
	}
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), DefaultPatterns)
	if err == nil {
		t.Error("expected an error for a missing input directory")
	} else if !os.IsNotExist(errors.Unwrap(err)) {
		t.Errorf("stat error was not kept in the chain: %v", err)
	}
}

func TestScanNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Scan(file, DefaultPatterns)
	if err == nil {
		t.Error("expected an error when the input path is a plain file")
	} else if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("unexpected error for a non-directory input: %v", err)
	}
}

// A directory with files but no recognized FASTQ names must come back
// empty, so callers can refuse to write a manifest at all.
func TestScanNoFastqFiles(t *testing.T) {
	dir := makeFastqDir(t, "notes.txt", "alignments.bam", "S1_R3.fastq")
	files, err := Scan(dir, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected no fastq files, got %v", files)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := makeFastqDir(t,
		"S1_L1_R1.fastq.gz",
		"S1_L1_R2.fastq.gz",
		"S2_L1_R1.fq", // unmatched, must stay out of the manifest
	)
	files, err := Scan(dir, DefaultPatterns)
	if err != nil {
		t.Fatal(err)
	}
	pairs, rep := Pair(files)

	outfile := filepath.Join(dir, "sarek_fastq_input_test.csv")
	WriteManifest(pairs, outfile)
	b, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %q", string(b))
	}
	if lines[0] != "patient,sample,lane,fastq_1,fastq_2" {
		t.Errorf("bad header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,S1,1,") {
		t.Errorf("bad manifest row: %q", lines[1])
	}
	if strings.Contains(string(b), "S2_L1_R1.fq") {
		t.Error("unmatched file leaked into the manifest")
	}

	repfile := filepath.Join(dir, "report.txt")
	WriteReport(rep, repfile)
	b, err = os.ReadFile(repfile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "S2_L1_R1.fq") {
		t.Error("unmatched file missing from report")
	}
}

func TestManifestDeterministic(t *testing.T) {
	dir := makeFastqDir(t,
		"S3_L001_R1_001.fastq.gz",
		"S3_L001_R2_001.fastq.gz",
		"S1_1.fq.gz",
		"S1_2.fq.gz",
		"S2_L2_R1.fastq",
		"S2_L2_R2.fastq",
	)
	run := func(outfile string) []byte {
		files, err := Scan(dir, DefaultPatterns)
		if err != nil {
			t.Fatal(err)
		}
		pairs, _ := Pair(files)
		WriteManifest(pairs, outfile)
		b, err := os.ReadFile(outfile)
		if err != nil {
			t.Fatal(err)
		}
		return b
	}
	a := run(filepath.Join(dir, "a.csv"))
	b := run(filepath.Join(dir, "b.csv"))
	if string(a) != string(b) {
		t.Error("re-running the scan on an unchanged directory changed the manifest")
	}
}
