// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Unset values are nil so
// that callers can tell them apart from explicit zero values.
type FileConfig struct {
	Separator *string    `toml:"separator"`
	LogLevel  *string    `toml:"log-level"`
	REPL      REPLConfig `toml:"repl"`
}

// REPLConfig maps interactive mode settings.
type REPLConfig struct {
	Prompt  *string `toml:"prompt"`
	History *bool   `toml:"history"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undec[0].String())
	}
	return cfg, nil
}
