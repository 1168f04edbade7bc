package sarek

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	sarekVersion = "3.5.1"
	genome       = "GATK.GRCh38"
)

// Resources for VEP and singularity. Generous defaults for dbNSFP-heavy
// annotation runs.
const (
	vepTime     = "48h"
	vepCPUs     = 8
	vepMemory   = "64 GB"
	pullTimeout = "60m"
)

func sorted(s []string) []string {
	slices.Sort(s)
	return s
}

// VepCustomArgs assembles the --vep_custom_args value from the configured
// plugins. Plugin order is sorted so the command is stable between runs.
func VepCustomArgs(plugins map[string]PluginArgs) string {
	parts := []string{"--everything", "--total_length", "--offline", "--cache"}
	for _, name := range sorted(keys(plugins)) {
		parts = append(parts, fmt.Sprintf("--plugin %s,%s", name, strings.Join(plugins[name], ",")))
	}
	return strings.Join(parts, " ")
}

func keys(m map[string]PluginArgs) []string {
	ans := make([]string, 0, len(m))
	for k := range m {
		ans = append(ans, k)
	}
	return ans
}

// vepArgs holds the annotation flags shared by the germline and
// annotate-only invocations.
func vepArgs(cfg Config) []string {
	return []string{
		"--vep_cache", cfg.VepCache,
		"--vep_include_fasta", "true",
		"--fasta", cfg.Fasta,
		"--fasta_fai", cfg.FastaFai,
		"--dict", cfg.Dict,
		"--vep_custom_args", VepCustomArgs(cfg.VepPlugins),
		"--vep_dbnsfp", "true",
		"--dbnsfp", cfg.Dbnsfp,
		"--dbnsfp_tbi", cfg.DbnsfpTbi,
		"--dbnsfp_fields", strings.Join(cfg.DbnsfpFields, ","),
	}
}

func baseArgs(input, outdir string, nfConfigs []string) []string {
	args := []string{"nextflow", "run", "nf-core/sarek", "-r", sarekVersion, "-resume", "-profile", "singularity"}
	for _, c := range nfConfigs {
		args = append(args, "-c", c)
	}
	return append(args,
		"--input", input,
		"--outdir", filepath.Join(outdir, "sarek_results"),
		"--genome", genome,
	)
}

// GermlineArgs builds the full FASTQ-to-annotated-VCF invocation: mapping,
// joint germline calling with haplotypecaller, then VEP.
func GermlineArgs(input, outdir string, cfg Config, nfConfigs []string) []string {
	args := baseArgs(input, outdir, nfConfigs)
	args = append(args,
		"--step", "mapping",
		"--wes", "true",
		"--aligner", "bwa-mem",
		"--joint_germline", "true",
		"--tools", "haplotypecaller,vep",
	)
	return append(args, vepArgs(cfg)...)
}

// AnnotateArgs builds an annotation-only invocation over an existing VCF
// input sheet.
func AnnotateArgs(input, outdir string, cfg Config, nfConfigs []string) []string {
	args := baseArgs(input, outdir, nfConfigs)
	args = append(args,
		"--step", "annotate",
		"--tools", "vep",
	)
	return append(args, vepArgs(cfg)...)
}

// WriteNextflowConfig writes the temporary nextflow config raising the
// singularity pull timeout and the ENSEMBLVEP_VEP process resources.
// The caller removes the file after a successful run; on failure it is
// kept for debugging.
func WriteNextflowConfig() (string, error) {
	f, err := os.CreateTemp("", "sarektools_nextflow_*.config")
	if err != nil {
		return "", err
	}
	_, err = fmt.Fprintf(f, `singularity {
  pullTimeout = '%s'
}

process {
  withName: 'ENSEMBLVEP_VEP' {
    time   = '%s'
    cpus   = %d
    memory = '%s'
  }
}
`, pullTimeout, vepTime, vepCPUs, vepMemory)
	if err != nil {
		f.Close()
		return "", err
	}
	return f.Name(), f.Close()
}
