// Package vep post-processes VEP-annotated VCFs coming out of sarek:
// splitting the CSQ blob into per-column INFO tags via bcftools +split-vep
// and extracting selected annotation columns into a TSV.
package vep

import (
	"log"
	"os"
	"path/filepath"

	"github.com/genomepost/sarekTools/bcftools"
	"github.com/genomepost/sarekTools/conda"
)

// Split runs the split-vep pipeline on one VCF:
// 1. +split-vep into vep_-prefixed INFO tags (duplicates records per consequence)
// 2. drop the redundant CSQ tag
// 3. keep canonical transcripts only
// 4. index the final VCF when compressed
// Temp files live under tmp_splitvep in outputDir and are removed on
// success unless keepTemp is set. On failure temps are kept for debugging.
func Split(in, out, columns, env, outputDir string, keepTemp bool) error {
	tmpdir := filepath.Join(outputDir, "tmp_splitvep")
	if err := os.MkdirAll(tmpdir, 0755); err != nil {
		return err
	}
	tmpSplit := filepath.Join(tmpdir, "splitvep_firstsplit.vcf.gz")
	tmpNoCsq := filepath.Join(tmpdir, "splitvep_noCSQ.vcf.gz")

	steps := [][]string{
		bcftools.SplitVepArgs(in, tmpSplit, columns),
		bcftools.RemoveInfoArgs(tmpSplit, tmpNoCsq, "CSQ"),
		bcftools.ViewIncludeArgs(tmpNoCsq, out, "vep_CANONICAL='YES'"),
	}
	if filepath.Ext(out) == ".gz" {
		steps = append(steps, bcftools.IndexArgs(out))
	}
	for _, step := range steps {
		if err := conda.RunCommand(conda.RunArgs(env, step...)); err != nil {
			log.Printf("leaving temp files in %s", tmpdir)
			return err
		}
	}

	if keepTemp {
		log.Printf("keeping temp files in %s", tmpdir)
		return nil
	}
	Cleanup(tmpSplit, tmpNoCsq, tmpdir)
	return nil
}

// Cleanup removes temp files or directories along with any .csi/.tbi
// index siblings. Removal failures are logged, never fatal.
func Cleanup(paths ...string) {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err = os.RemoveAll(p); err != nil {
				log.Printf("WARNING: could not remove %s: %v", p, err)
			}
			continue
		}
		if err = os.Remove(p); err != nil {
			log.Printf("WARNING: could not remove %s: %v", p, err)
			continue
		}
		for _, ext := range []string{".csi", ".tbi"} {
			if _, err = os.Stat(p + ext); err == nil {
				if err = os.Remove(p + ext); err != nil {
					log.Printf("WARNING: could not remove %s: %v", p+ext, err)
				}
			}
		}
	}
}
