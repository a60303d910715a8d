package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the TOML document. Pointer fields distinguish keys that
// are absent from keys explicitly set to a zero value, so a partial file only
// overrides what it names.
type fileConfig struct {
	Mode              *string     `toml:"mode"`
	Verbosity         *string     `toml:"verbosity"`
	ShowParameters    *bool       `toml:"show_parameters"`
	ShowExecutionTime *bool       `toml:"show_execution_time"`
	ShowTimestamps    *bool       `toml:"show_timestamps"`
	LogFilePath       *string     `toml:"log_file_path"`
	WebhookURL        *string     `toml:"webhook_url"`
	CostPerKiloTokens *float64    `toml:"cost_per_kilo_tokens"`
	Colors            *fileColors `toml:"colors"`
}

type fileColors struct {
	Enabled  *bool   `toml:"enabled"`
	Session  *string `toml:"session"`
	Function *string `toml:"function"`
	LLM      *string `toml:"llm"`
	API      *string `toml:"api"`
	Error    *string `toml:"error"`
}

// Load reads a TOML configuration file. A missing file is not an error and
// yields the defaults; a present but invalid file is rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromString(string(data))
}

// LoadFromString parses a TOML document into a Config. Keys not present in
// the document keep their defaults; unrecognized keys are ignored.
func LoadFromString(data string) (*Config, error) {
	var tf fileConfig
	if _, err := toml.Decode(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	opts := defaultOptions()

	if tf.Mode != nil {
		m := Mode(*tf.Mode)
		if !m.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMode, *tf.Mode)
		}
		opts.Mode = m
	}
	if tf.Verbosity != nil {
		v := Verbosity(*tf.Verbosity)
		if !v.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVerbosity, *tf.Verbosity)
		}
		opts.Verbosity = v
	}
	if tf.ShowParameters != nil {
		opts.ShowParameters = *tf.ShowParameters
	}
	if tf.ShowExecutionTime != nil {
		opts.ShowExecutionTime = *tf.ShowExecutionTime
	}
	if tf.ShowTimestamps != nil {
		opts.ShowTimestamps = *tf.ShowTimestamps
	}
	if tf.LogFilePath != nil {
		opts.LogFilePath = *tf.LogFilePath
	}
	if tf.WebhookURL != nil {
		opts.WebhookURL = *tf.WebhookURL
	}
	if tf.CostPerKiloTokens != nil {
		if *tf.CostPerKiloTokens < 0 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCostRate, *tf.CostPerKiloTokens)
		}
		opts.CostPerKiloTokens = *tf.CostPerKiloTokens
	}
	if tf.Colors != nil {
		if tf.Colors.Enabled != nil {
			opts.Colors.Enabled = *tf.Colors.Enabled
		}
		if tf.Colors.Session != nil {
			opts.Colors.Session = *tf.Colors.Session
		}
		if tf.Colors.Function != nil {
			opts.Colors.Function = *tf.Colors.Function
		}
		if tf.Colors.LLM != nil {
			opts.Colors.LLM = *tf.Colors.LLM
		}
		if tf.Colors.API != nil {
			opts.Colors.API = *tf.Colors.API
		}
		if tf.Colors.Error != nil {
			opts.Colors.Error = *tf.Colors.Error
		}
	}

	return &Config{opts: opts}, nil
}
