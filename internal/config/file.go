package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// CLIDefaults holds the defaults the ppcctl tool reads from an optional
// config file. Zero values mean "use the built-in default".
type CLIDefaults struct {
	// Format is the output format: table, json or yaml.
	Format string `toml:"format" yaml:"format" json:"format"`
	// TargetACOS is the default target for the max-bids command.
	TargetACOS float64 `toml:"target_acos" yaml:"target_acos" json:"target_acos"`
	// ExportDir is where relative export paths are resolved.
	ExportDir string `toml:"export_dir" yaml:"export_dir" json:"export_dir"`
}

// LoadFile reads CLI defaults from a TOML, YAML or JSON file, chosen by
// extension.
func LoadFile(path string) (CLIDefaults, error) {
	var d CLIDefaults

	info, err := os.Stat(path)
	if err != nil {
		return d, fmt.Errorf("error accessing config file: %w", err)
	}
	if info.IsDir() {
		return d, fmt.Errorf("%s is a directory, not a file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("error reading config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &d)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &d)
	case ".json":
		err = json.Unmarshal(data, &d)
	default:
		return d, fmt.Errorf("unsupported config file format: %s", ext)
	}
	if err != nil {
		return d, fmt.Errorf("error parsing config file %s: %w", filepath.Base(path), err)
	}
	return d, nil
}
