package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProjectOutputDir(t *testing.T) {
	base := t.TempDir()
	dir := projectOutputDir(base, "proj1")
	if dir != filepath.Join(base, "proj1", "output") {
		t.Errorf("unexpected output dir: %s", dir)
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Error("logs directory was not created")
	}
}

func TestVcfGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.PASS.vcf.gz", "a.PASS.vcf.gz.tbi", "b.PASS.vcf", "b.PASS.vcf.csi", "c.vcf.gz"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	got := vcfGlob(dir, "*PASS.vcf*")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches with index files skipped, got %v", got)
	}
}

func TestFormatRuntime(t *testing.T) {
	d := 2*time.Hour + 3*time.Minute + 4*time.Second
	if got := formatRuntime(d); got != "2h 3m 4s" {
		t.Errorf("got %q, want 2h 3m 4s", got)
	}
	if got := formatRuntime(900 * time.Millisecond); got != "0h 0m 1s" {
		t.Errorf("got %q, want 0h 0m 1s", got)
	}
}

func TestSubsetName(t *testing.T) {
	if got := subsetName("/data/cohort.vcf.gz"); got != "cohort.include_samples.vcf.gz" {
		t.Errorf("got %q", got)
	}
	if got := subsetName("cohort.vcf"); got != "cohort.include_samples.vcf" {
		t.Errorf("got %q", got)
	}
}
