package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the user's fiscal-sim preferences. Command-line flags always
// win over these values.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	MonteCarlo MonteCarloConfig `toml:"montecarlo"`
}

// GeneralConfig holds preferences shared by every command.
type GeneralConfig struct {
	Seed         int64  `toml:"seed"`
	Output       string `toml:"output"`
	LogLevel     string `toml:"log_level"`
	DefaultsFile string `toml:"defaults_file,omitempty"`
}

// MonteCarloConfig holds the ensemble size and parallelism.
type MonteCarloConfig struct {
	Trials  int `toml:"trials"`
	Workers int `toml:"workers"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Seed:     42,
			Output:   OutputTable,
			LogLevel: "error",
		},
		MonteCarlo: MonteCarloConfig{
			Trials:  1000,
			Workers: runtime.NumCPU(),
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fiscal-sim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fiscal-sim")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadConfig reads the config file at path, returning defaults if it doesn't exist.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parsing config %s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}
