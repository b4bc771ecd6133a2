package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/schemargs/internal/logging"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".schemargs.yaml"

// Output formats accepted by the CLI.
const (
	FormatAuto  = "auto"
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Config holds CLI settings. The parsing library itself takes no config.
type Config struct {
	LogLevel string   `mapstructure:"log_level" yaml:"log_level"`
	Format   string   `mapstructure:"format" yaml:"format"`
	Color    bool     `mapstructure:"color" yaml:"color"`
	Schema   []string `mapstructure:"schema" yaml:"schema,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "error",
		Format:   FormatAuto,
		Color:    true,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		// Allows `schema: "l#.,A"` as well as a YAML list.
		DecodeHook: mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, fmt.Errorf("building config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatAuto, FormatTable, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
