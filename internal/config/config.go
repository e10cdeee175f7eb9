// Package config loads abicodec command line settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Config holds all configuration for the command line tool.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Codec  CodecConfig  `mapstructure:"codec"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json, console
}

// CodecConfig holds codec behavior settings.
type CodecConfig struct {
	UTF8Validation bool `mapstructure:"utf8_validation"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	Format string `mapstructure:"format"` // json, yaml, table
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"output":    "output.format",
	"log-level": "log.level",
}

// Load reads configuration from an optional file, ABICODEC_ environment
// variables and any changed flags, in increasing order of precedence.
// An empty path searches the working directory and ~/.config/abicodec for
// abicodec.yaml.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("abicodec")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/abicodec")
	}

	v.SetEnvPrefix("ABICODEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults configures default values for all settings.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("codec.utf8_validation", true)
	v.SetDefault("output.format", FormatJSON)
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log.format %q: want json or console", c.Log.Format)
	}
	switch c.Output.Format {
	case FormatJSON, FormatYAML, FormatTable:
	default:
		return fmt.Errorf("invalid output.format %q: want json, yaml or table", c.Output.Format)
	}
	return nil
}
