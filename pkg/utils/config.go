package utils

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is looked up when no --config flag is given
const DefaultConfigPath = "fixturegen.yaml"

// Config represents the main configuration structure
type Config struct {
	Random    RandomConfig    `yaml:"random"`
	Canonical CanonicalConfig `yaml:"canonical"`
	Output    OutputConfig    `yaml:"output"`
}

type RandomConfig struct {
	Count      int    `yaml:"count"`
	Min        int64  `yaml:"min"`
	Max        int64  `yaml:"max"`
	Filename   string `yaml:"filename"`
	TotalFiles int    `yaml:"total_files"`
	Seed       uint64 `yaml:"seed"`
}

type CanonicalConfig struct {
	MaxNumber int64    `yaml:"max_number"`
	Only      []string `yaml:"only"`
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Workers  int    `yaml:"workers"`
	Manifest string `yaml:"manifest"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Random: RandomConfig{
			Count:      100,
			Min:        0,
			Max:        0,
			TotalFiles: 1,
		},
		Canonical: CanonicalConfig{
			MaxNumber: 1000000,
		},
		Output: OutputConfig{
			Dir:     ".",
			Workers: 1,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	return config, nil
}
