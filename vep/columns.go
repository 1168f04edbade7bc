package vep

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadColumns reads the "columns" entry of a JSON config file: the VEP
// annotation columns to split out of CSQ. Accepts a list or a
// pre-joined string; returns the comma-joined form +split-vep expects.
func LoadColumns(file string) (string, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("could not read config %s: %w", file, err)
	}
	var cfg struct {
		Columns json.RawMessage `json:"columns"`
	}
	if err = json.Unmarshal(b, &cfg); err != nil {
		return "", fmt.Errorf("could not parse config %s: %w", file, err)
	}
	if cfg.Columns == nil {
		return "", fmt.Errorf("no 'columns' entry found in config %s", file)
	}
	var one string
	if err = json.Unmarshal(cfg.Columns, &one); err == nil {
		return one, nil
	}
	var many []string
	if err = json.Unmarshal(cfg.Columns, &many); err != nil {
		return "", fmt.Errorf("config %s: 'columns' must be a string or list of strings", file)
	}
	return strings.Join(many, ","), nil
}

// LoadFields reads the "fields" entry of a JSON config file: the columns
// selected for the final TSV. Fields can only name columns that were split
// out in the split-vep step.
func LoadFields(file string) ([]string, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", file, err)
	}
	var cfg struct {
		Fields []string `json:"fields"`
	}
	if err = json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", file, err)
	}
	if len(cfg.Fields) == 0 {
		return nil, fmt.Errorf("no fields defined in config %s", file)
	}
	return cfg.Fields, nil
}
