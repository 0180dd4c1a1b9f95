// Package config loads settings for the frob command.
//
// Precedence, highest first: FROB_* environment variables, the config file,
// defaults. A missing config file is not an error.
package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Keys understood in the config file. The matching environment variables are
// FROB_OUTPUT, FROB_LOG_LEVEL and FROB_EXAMPLES.
const (
	KeyOutput   = "output"
	KeyLogLevel = "log_level"
	KeyExamples = "examples"

	envPrefix      = "FROB"
	configFileName = ".frob"
	configFileType = "yaml"
)

// Defaults.
const (
	DefaultOutput   = "text"
	DefaultLogLevel = "warn"
)

var (
	outputs   = []string{"text", "json", "yaml"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

type Config struct {
	Output   string
	LogLevel string
	// Examples names the examples to run; empty means all.
	Examples []string
}

// InvalidValueError is returned by Validate for an unsupported setting.
type InvalidValueError struct {
	Key   string
	Value string
}

// Error implements the error interface.
func (e InvalidValueError) Error() string {
	return "config: invalid " + e.Key + " " + strconv.Quote(e.Value)
}

// Load reads configuration.
//
// If path is empty, .frob.yaml is looked up in the working directory and
// silently skipped when absent. An explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyExamples, []string{})

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "config: read")
		}
	}

	cfg := Config{
		Output:   strings.ToLower(v.GetString(KeyOutput)),
		LogLevel: strings.ToLower(v.GetString(KeyLogLevel)),
		Examples: splitList(v.GetStringSlice(KeyExamples)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unsupported output formats and log levels.
func (c Config) Validate() error {
	if !slices.Contains(outputs, c.Output) {
		return InvalidValueError{Key: KeyOutput, Value: c.Output}
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return InvalidValueError{Key: KeyLogLevel, Value: c.LogLevel}
	}
	return nil
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
