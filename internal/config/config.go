package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/vhdldot/internal/export"
)

// ProjectConfig holds project-level settings loaded from vhdldot.yml.
type ProjectConfig struct {
	GHDL          string        `yaml:"ghdl,omitempty"`
	GHDLArgs      []string      `yaml:"ghdlArgs,omitempty"`
	Timeout       time.Duration `yaml:"timeout,omitempty"`
	OutputDir     string        `yaml:"outputDir,omitempty"`
	Format        string        `yaml:"format,omitempty"`
	Parallelism   int           `yaml:"parallelism,omitempty"`
	RepeatedModes bool          `yaml:"repeatedModes,omitempty"`
	Strict        bool          `yaml:"strict,omitempty"`
	Verbose       bool          `yaml:"verbose,omitempty"`
	Style         export.Style  `yaml:"style,omitempty"`
}

// FileNames are the config file names searched by Load, in order.
var FileNames = []string{"vhdldot.yml", "vhdldot.yaml"}

// Load attempts to read vhdldot.yml or vhdldot.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}
	return &ProjectConfig{}, nil
}

// LoadFile reads the config at path. A missing file is an error here.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
