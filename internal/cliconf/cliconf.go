// Package cliconf loads the optional CLI configuration file controlling
// logging and default validation strictness.
package cliconf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds CLI-level settings. All fields are optional.
type Config struct {
	// LogLevel is the minimum log level (DEBUG|INFO|WARN|ERROR).
	LogLevel string `yaml:"logLevel,omitempty"`
	// Pretty enables human-readable console logging.
	Pretty bool `yaml:"pretty,omitempty"`
	// Strict makes schema violations fatal when checking existing settings.
	Strict bool `yaml:"strict,omitempty"`
	// BaseEnvFile names a dotenv file that seeds the agent environment.
	BaseEnvFile string `yaml:"baseEnvFile,omitempty"`
}

// Load reads the CLI config, trying the working directory first and the
// XDG config directory second. A missing file yields the zero Config.
func Load(dir string) (*Config, error) {
	for _, path := range candidates(dir) {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

func candidates(dir string) []string {
	paths := []string{filepath.Join(dir, ".agentrig.yaml")}
	if cfgHome := configHome(); cfgHome != "" {
		paths = append(paths, filepath.Join(cfgHome, "agentrig", "config.yaml"))
	}
	return paths
}

func configHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		return os.Getenv("APPDATA")
	}
	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config")
}
