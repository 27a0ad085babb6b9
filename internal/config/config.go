// Package config loads CLI defaults for cmd/slip39 from a YAML file
// with environment overrides layered on top, scaled down to what a
// single-binary CLI needs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config carries the CLI-wide defaults; individual commands may
// override any field with an explicit flag.
type Config struct {
	Generate GenerateDefaults `yaml:"generate"`
	Output   OutputConfig     `yaml:"output"`
	Wordlist WordlistConfig   `yaml:"wordlist"`
	Logging  LoggingConfig    `yaml:"logging"`
}

// GenerateDefaults holds the defaults the generate subcommand falls
// back to when a flag is not given.
type GenerateDefaults struct {
	IterationExponent uint8 `yaml:"iteration_exponent"`
	Extendable        bool  `yaml:"extendable"`
}

// OutputConfig controls how commands render their results.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// WordlistConfig optionally points at a non-English word list; when
// Path is empty, commands use pkg/wordlist.English.
type WordlistConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls the verbosity cmd/slip39 logs at.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration used when no file is
// present and no environment overrides are set.
func Default() Config {
	return Config{
		Generate: GenerateDefaults{IterationExponent: 0, Extendable: false},
		Output:   OutputConfig{Format: "text"},
	}
}

// Load reads configuration from configFile, or from $HOME/.slip39.yaml
// when configFile is empty, then applies SLIP39_-prefixed environment
// variable overrides via viper. A missing file is not an error; Load
// then starts from the built-in defaults.
func Load(configFile string) (Config, error) {
	cfg := Default()

	if configFile == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			configFile = filepath.Join(home, ".slip39.yaml")
		}
	}

	if configFile != "" {
		if data, err := os.ReadFile(configFile); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parsing %s: %w", configFile, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides layers SLIP39_-prefixed environment variables over
// cfg using viper's precedence rules.
func applyEnvOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("SLIP39")
	v.AutomaticEnv()

	if v.IsSet("GENERATE_ITERATION_EXPONENT") {
		cfg.Generate.IterationExponent = uint8(v.GetUint("GENERATE_ITERATION_EXPONENT"))
	}
	if v.IsSet("GENERATE_EXTENDABLE") {
		cfg.Generate.Extendable = v.GetBool("GENERATE_EXTENDABLE")
	}
	if v.IsSet("OUTPUT_FORMAT") {
		cfg.Output.Format = v.GetString("OUTPUT_FORMAT")
	}
	if v.IsSet("WORDLIST_PATH") {
		cfg.Wordlist.Path = v.GetString("WORDLIST_PATH")
	}
	if v.IsSet("LOGGING_DEBUG") {
		cfg.Logging.Debug = v.GetBool("LOGGING_DEBUG")
	}
}
