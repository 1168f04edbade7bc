// Package conda locates conda environments and runs external tools,
// optionally prefixed with `conda run -n <env>` so bcftools and nextflow
// installs living inside an environment can be used directly.
package conda

import (
	"encoding/json"
	"os/exec"
	"path/filepath"

	"golang.org/x/exp/slices"
)

// ListEnvs returns the names (basename only) of available conda environments.
func ListEnvs() ([]string, error) {
	out, err := exec.Command("conda", "env", "list", "--json").Output()
	if err != nil {
		return nil, err
	}
	return parseEnvList(out)
}

func parseEnvList(b []byte) ([]string, error) {
	var v struct {
		Envs []string `json:"envs"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	names := make([]string, len(v.Envs))
	for i := range v.Envs {
		names[i] = filepath.Base(v.Envs[i])
	}
	return names, nil
}

// CheckEnv reports whether a conda environment with the given name exists.
func CheckEnv(name string) (bool, error) {
	envs, err := ListEnvs()
	if err != nil {
		return false, err
	}
	return slices.Contains(envs, name), nil
}

// RunArgs prefixes args with a conda run invocation. An empty env name
// returns args unchanged, for tools installed outside conda.
func RunArgs(env string, args ...string) []string {
	if env == "" {
		return args
	}
	return append([]string{"conda", "run", "-n", env}, args...)
}
