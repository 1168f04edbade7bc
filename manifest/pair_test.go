package manifest

import (
	"testing"
)

func mustMatch(t *testing.T, name string) FastqFile {
	f, ok := Match(name, DefaultPatterns)
	if !ok {
		t.Fatalf("test file %s did not match any pattern", name)
	}
	return f
}

func TestPairComplete(t *testing.T) {
	files := []FastqFile{
		mustMatch(t, "S1_L001_R1_001.fastq.gz"),
		mustMatch(t, "S1_L001_R2_001.fastq.gz"),
		mustMatch(t, "S1_L002_R1_001.fastq.gz"),
		mustMatch(t, "S1_L002_R2_001.fastq.gz"),
		mustMatch(t, "S2_1.fq"),
		mustMatch(t, "S2_2.fq"),
	}
	pairs, rep := Pair(files)
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(pairs))
	}
	if !rep.Clean() {
		t.Errorf("expected clean report, got %d unmatched and %d duplicates", len(rep.Unmatched), len(rep.Duplicates))
	}
	if rep.Pairs != 3 {
		t.Errorf("report pair count is %d, expected 3", rep.Pairs)
	}
	// sample then lane ordering
	if pairs[0].Sample != "S1" || pairs[0].Lane != "001" ||
		pairs[1].Sample != "S1" || pairs[1].Lane != "002" ||
		pairs[2].Sample != "S2" || pairs[2].Lane != "1" {
		t.Errorf("pairs out of order: %v", pairs)
	}
}

func TestPairUnmatched(t *testing.T) {
	files := []FastqFile{
		mustMatch(t, "S1_L1_R1.fastq.gz"),
		mustMatch(t, "S1_L1_R2.fastq.gz"),
		mustMatch(t, "S2_L1_R1.fq"), // no R2
		mustMatch(t, "S3_L1_R2.fq"), // no R1
	}
	pairs, rep := Pair(files)
	if len(pairs) != 1 || pairs[0].Sample != "S1" {
		t.Fatalf("expected single S1 pair, got %v", pairs)
	}
	if len(rep.Unmatched) != 2 {
		t.Fatalf("expected 2 unmatched, got %v", rep.Unmatched)
	}
	if rep.Unmatched[0].Sample != "S2" || rep.Unmatched[0].Read != 1 {
		t.Errorf("expected S2 R1 unmatched, got %v", rep.Unmatched[0])
	}
	if rep.Unmatched[1].Sample != "S3" || rep.Unmatched[1].Read != 2 {
		t.Errorf("expected S3 R2 unmatched, got %v", rep.Unmatched[1])
	}
	if rep.Clean() {
		t.Error("report should not be clean with unmatched files")
	}
}

func TestPairDuplicateSlot(t *testing.T) {
	files := []FastqFile{
		mustMatch(t, "S1_L001_R1_001.fastq.gz"),
		mustMatch(t, "S1_L001_R1_002.fastq.gz"), // second claim on S1/L001/R1
		mustMatch(t, "S1_L001_R2_001.fastq.gz"),
		mustMatch(t, "S2_L001_R1.fastq.gz"),
		mustMatch(t, "S2_L001_R2.fastq.gz"),
	}
	pairs, rep := Pair(files)
	if len(pairs) != 1 || pairs[0].Sample != "S2" {
		t.Fatalf("only the unaffected S2 pair should survive, got %v", pairs)
	}
	if len(rep.Duplicates) != 1 {
		t.Fatalf("expected 1 duplicate record, got %v", rep.Duplicates)
	}
	d := rep.Duplicates[0]
	if d.Sample != "S1" || d.Lane != "001" || d.Read != 1 || len(d.Paths) != 2 {
		t.Errorf("unexpected duplicate record: %v", d)
	}
	// the excluded group must not leak into unmatched
	if len(rep.Unmatched) != 0 {
		t.Errorf("ambiguous group should not be reported as unmatched: %v", rep.Unmatched)
	}
}
