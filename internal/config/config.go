package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for entrocheck.
type FileConfig struct {
	Include  *string `yaml:"include"`
	Exclude  *string `yaml:"exclude"`
	MaxBytes *int64  `yaml:"max_bytes"`
	Threads  *int    `yaml:"threads"`
	NoColor  *bool   `yaml:"no_color"`
	FailOn   *string `yaml:"fail_on"`

	// Classification policy mirrors CLI flags.
	MinLength        *int     `yaml:"min_length"`
	EntropyThreshold *float64 `yaml:"entropy_threshold"`
	StrongThreshold  *float64 `yaml:"strong_threshold"`
	CharsetMode      *string  `yaml:"charset_mode"`
	IgnoreKeys       []string `yaml:"ignore_keys"`
	IgnoreValues     []string `yaml:"ignore_values"`
	KeyHintBoost     *float64 `yaml:"key_hint_boost"`
	KeyHints         []string `yaml:"key_hints"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .entrocheck.yml/.yaml and entrocheck.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".entrocheck.yml", ".entrocheck.yaml", "entrocheck.yml", "entrocheck.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "entrocheck", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
