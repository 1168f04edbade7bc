// Package sarek builds nextflow invocations for the nf-core/sarek pipeline
// from a JSON run configuration listing reference files, the VEP cache and
// plugins, and dbNSFP settings.
package sarek

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config mirrors the run configuration JSON. All keys are required.
type Config struct {
	VepCache     string                `json:"vep_cache"`
	Fasta        string                `json:"fasta"`
	FastaFai     string                `json:"fasta_fai"`
	Dict         string                `json:"dict"`
	Dbnsfp       string                `json:"dbnsfp"`
	DbnsfpTbi    string                `json:"dbnsfp_tbi"`
	DbnsfpFields []string              `json:"dbnsfp_fields"`
	VepPlugins   map[string]PluginArgs `json:"vep_plugins"`
}

// PluginArgs accepts either a single path or a list of values in the
// config JSON, since VEP plugins take one or several comma-joined arguments.
type PluginArgs []string

func (p *PluginArgs) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*p = PluginArgs{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*p = many
	return nil
}

// LoadConfig reads and validates a run configuration file.
func LoadConfig(file string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(file)
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", file, err)
	}
	if err = json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %s: %w", file, err)
	}
	var missing []string
	for key, val := range map[string]string{
		"vep_cache":  cfg.VepCache,
		"fasta":      cfg.Fasta,
		"fasta_fai":  cfg.FastaFai,
		"dict":       cfg.Dict,
		"dbnsfp":     cfg.Dbnsfp,
		"dbnsfp_tbi": cfg.DbnsfpTbi,
	} {
		if val == "" {
			missing = append(missing, key)
		}
	}
	if len(cfg.DbnsfpFields) == 0 {
		missing = append(missing, "dbnsfp_fields")
	}
	if len(cfg.VepPlugins) == 0 {
		missing = append(missing, "vep_plugins")
	}
	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing keys in config %s: %s", file, strings.Join(sorted(missing), ", "))
	}
	return cfg, nil
}
