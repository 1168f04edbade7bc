package bcftools

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/genomepost/sarekTools/conda"
)

// MinSplitVepVersion is the oldest bcftools with a working +split-vep plugin.
const MinSplitVepVersion = "1.10"

var versionRegexp = regexp.MustCompile(`bcftools (\d+(\.\d+)+)`)

// Version runs bcftools --version in the given conda environment (or on the
// PATH when env is empty) and returns the version string.
func Version(env string) (string, error) {
	args := conda.RunArgs(env, "bcftools", "--version")
	out, err := exec.Command(args[0], args[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("could not run bcftools --version: %w", err)
	}
	v := parseVersion(string(out))
	if v == "" {
		return "", fmt.Errorf("could not parse bcftools version from output")
	}
	return v, nil
}

func parseVersion(s string) string {
	m := versionRegexp.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// AtLeast reports whether version v is >= min, comparing dotted numeric
// components.
func AtLeast(v, min string) bool {
	a := strings.Split(v, ".")
	b := strings.Split(min, ".")
	for i := 0; i < len(a) || i < len(b); i++ {
		var x, y int
		if i < len(a) {
			x, _ = strconv.Atoi(a[i])
		}
		if i < len(b) {
			y, _ = strconv.Atoi(b[i])
		}
		if x != y {
			return x > y
		}
	}
	return true
}
