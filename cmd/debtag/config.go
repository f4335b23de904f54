package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"
)

// Config is a business object holding the application's configuration.
type Config struct {
	// StatusFile is the dpkg status database read by the status command.
	StatusFile string
	// Keyring is the path of an ASCII-armored public key ring used to verify
	// InRelease files. Empty disables verification.
	Keyring string
	// Output is the output format of the parse command: "yaml" or "json".
	Output string
}

const (
	defaultStatusFile = "/var/lib/dpkg/status"
	defaultOutput     = "yaml"
)

func defaultConfig() *Config {
	return &Config{StatusFile: defaultStatusFile, Output: defaultOutput}
}

// decodeConfig reads the configuration file at path. Files ending in
// ".toml" are decoded as TOML, anything else as YAML. A missing file
// yields the default configuration.
func decodeConfig(path string) (*Config, error) {
	// Internal DTO for deserialization
	type fileConfig struct {
		StatusFile string `yaml:"status_file" toml:"status_file"`
		Keyring    string `yaml:"keyring" toml:"keyring"`
		Output     string `yaml:"output" toml:"output"`
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var dto fileConfig
	if filepath.Ext(path) == ".toml" {
		err = toml.Unmarshal(data, &dto)
	} else {
		err = yaml.Unmarshal(data, &dto)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	// Map DTO to business object
	config := defaultConfig()
	if dto.StatusFile != "" {
		config.StatusFile = dto.StatusFile
	}
	if dto.Output != "" {
		config.Output = dto.Output
	}
	config.Keyring = dto.Keyring

	if config.Output != "yaml" && config.Output != "json" {
		return nil, fmt.Errorf("invalid output format %q, expected yaml or json", config.Output)
	}
	return config, nil
}
