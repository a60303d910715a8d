package config

import (
	"errors"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := New()

	if cfg.Mode() != ModeConsole {
		t.Errorf("default mode: want console, got %s", cfg.Mode())
	}
	if cfg.Verbosity() != VerbosityNormal {
		t.Errorf("default verbosity: want normal, got %s", cfg.Verbosity())
	}
	if !cfg.ShowParameters() || !cfg.ShowExecutionTime() || !cfg.ShowTimestamps() {
		t.Error("display toggles should default to true")
	}
	if cfg.CostPerKiloTokens() != 0.002 {
		t.Errorf("default cost rate: want 0.002, got %v", cfg.CostPerKiloTokens())
	}
	colors := cfg.Colors()
	if !colors.Enabled || colors.Session != "cyan" || colors.Error != "red" {
		t.Errorf("default colors: %+v", colors)
	}
	if !cfg.Enabled() {
		t.Error("tracking should default to enabled")
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := New(func(o *Options) {
		o.Mode = ModeFile
		o.LogFilePath = "events.jsonl"
		o.ShowTimestamps = false
	})

	if cfg.Mode() != ModeFile || cfg.LogFilePath() != "events.jsonl" {
		t.Errorf("options not applied: mode=%s path=%s", cfg.Mode(), cfg.LogFilePath())
	}
	if cfg.ShowTimestamps() {
		t.Error("ShowTimestamps override not applied")
	}
}

func TestConfig_SetModeValidates(t *testing.T) {
	cfg := New()

	if err := cfg.SetMode(ModeDisabled); err != nil {
		t.Fatalf("valid mode rejected: %v", err)
	}
	if cfg.Enabled() {
		t.Error("disabled mode should report Enabled() == false")
	}

	err := cfg.SetMode(Mode("stdout"))
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("want ErrUnknownMode, got %v", err)
	}
	if cfg.Mode() != ModeDisabled {
		t.Error("rejected mode must leave configuration unchanged")
	}
}

func TestConfig_SetVerbosityValidates(t *testing.T) {
	cfg := New()

	if err := cfg.SetVerbosity(VerbosityVerbose); err != nil {
		t.Fatalf("valid verbosity rejected: %v", err)
	}
	if err := cfg.SetVerbosity(Verbosity("debug")); !errors.Is(err, ErrUnknownVerbosity) {
		t.Fatalf("want ErrUnknownVerbosity, got %v", err)
	}
	if cfg.Verbosity() != VerbosityVerbose {
		t.Error("rejected verbosity must leave configuration unchanged")
	}
}

func TestConfig_SetCostRate(t *testing.T) {
	cfg := New()

	if err := cfg.SetCostPerKiloTokens(0.01); err != nil {
		t.Fatalf("valid rate rejected: %v", err)
	}
	if err := cfg.SetCostPerKiloTokens(-1); !errors.Is(err, ErrInvalidCostRate) {
		t.Fatalf("want ErrInvalidCostRate, got %v", err)
	}
	if cfg.CostPerKiloTokens() != 0.01 {
		t.Errorf("rate = %v, want 0.01", cfg.CostPerKiloTokens())
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(`
mode = "webhook"
webhook_url = "https://hooks.example.com/tracking"
show_parameters = false
cost_per_kilo_tokens = 0.004

[colors]
enabled = false
function = "magenta"
`)
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}

	if cfg.Mode() != ModeWebhook || cfg.WebhookURL() != "https://hooks.example.com/tracking" {
		t.Errorf("webhook settings: mode=%s url=%s", cfg.Mode(), cfg.WebhookURL())
	}
	if cfg.ShowParameters() {
		t.Error("show_parameters override not applied")
	}
	if cfg.CostPerKiloTokens() != 0.004 {
		t.Errorf("cost rate = %v", cfg.CostPerKiloTokens())
	}

	colors := cfg.Colors()
	if colors.Enabled {
		t.Error("colors.enabled override not applied")
	}
	if colors.Function != "magenta" {
		t.Errorf("colors.function = %q", colors.Function)
	}
	// Keys absent from the document keep their defaults.
	if colors.Session != "cyan" {
		t.Errorf("colors.session = %q, want default", colors.Session)
	}
	if cfg.Verbosity() != VerbosityNormal {
		t.Errorf("verbosity = %s, want default", cfg.Verbosity())
	}
}

func TestLoadFromString_RejectsUnknownMode(t *testing.T) {
	if _, err := LoadFromString(`mode = "syslog"`); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("want ErrUnknownMode, got %v", err)
	}
	if _, err := LoadFromString(`verbosity = "loud"`); !errors.Is(err, ErrUnknownVerbosity) {
		t.Fatalf("want ErrUnknownVerbosity, got %v", err)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/path/tracking.toml")
	if err != nil {
		t.Fatalf("expected no error for missing config file, got: %v", err)
	}
	if cfg.Mode() != ModeConsole {
		t.Errorf("mode = %s, want default", cfg.Mode())
	}
}
