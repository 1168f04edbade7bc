package bcftools

import (
	"strings"
	"testing"
)

func TestOutputType(t *testing.T) {
	if outputType("a.vcf.gz") != "z" {
		t.Error("gz output should select compressed output type")
	}
	if outputType("a.vcf") != "v" {
		t.Error("plain output should select uncompressed output type")
	}
}

func TestViewArgs(t *testing.T) {
	got := strings.Join(ViewPassArgs("in.vcf.gz", "out.vcf.gz"), " ")
	want := "bcftools view -f PASS in.vcf.gz -Oz -o out.vcf.gz"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = strings.Join(ViewSamplesArgs("in.vcf.gz", "samples.txt", "out.vcf"), " ")
	want = "bcftools view --samples-file samples.txt in.vcf.gz -Ov -o out.vcf"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = strings.Join(ViewIncludeArgs("in.vcf.gz", "out.vcf.gz", "vep_IMPACT='MODERATE' || vep_IMPACT='HIGH'"), " ")
	if !strings.Contains(got, "--include vep_IMPACT='MODERATE' || vep_IMPACT='HIGH'") {
		t.Errorf("include expression missing from %q", got)
	}
}

func TestSplitVepArgs(t *testing.T) {
	got := strings.Join(SplitVepArgs("in.vcf.gz", "out.vcf.gz", "Consequence,IMPACT,SYMBOL"), " ")
	for _, part := range []string{"+split-vep", "--duplicate", "--annot-prefix vep_", "--columns Consequence,IMPACT,SYMBOL", "--output-type z"} {
		if !strings.Contains(got, part) {
			t.Errorf("%q missing from %q", part, got)
		}
	}
}

func TestParseVersion(t *testing.T) {
	out := "bcftools 1.17\nUsing htslib 1.17\nCopyright (C) 2023 Genome Research Ltd.\n"
	if v := parseVersion(out); v != "1.17" {
		t.Errorf("parsed %q, want 1.17", v)
	}
	if v := parseVersion("no version here"); v != "" {
		t.Errorf("expected empty parse, got %q", v)
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		v, min string
		want   bool
	}{
		{"1.17", "1.10", true},
		{"1.10", "1.10", true},
		{"1.9", "1.10", false},
		{"0.1.19", "1.10", false},
		{"2.0", "1.10", true},
	}
	for _, test := range tests {
		if got := AtLeast(test.v, test.min); got != test.want {
			t.Errorf("AtLeast(%s, %s) = %v, want %v", test.v, test.min, got, test.want)
		}
	}
}
