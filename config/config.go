package config

import (
	"errors"
	"fmt"
	"sync"
)

// Mode selects the destination events are rendered to.
type Mode string

const (
	// ModeConsole renders events as human-readable console lines.
	ModeConsole Mode = "console"
	// ModeFile appends events as JSON lines to a log file.
	ModeFile Mode = "file"
	// ModeWebhook posts events as JSON to an HTTP endpoint.
	ModeWebhook Mode = "webhook"
	// ModeDisabled turns tracking off entirely; wrappers short-circuit.
	ModeDisabled Mode = "disabled"
)

// Valid reports whether m is one of the recognized destination modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeConsole, ModeFile, ModeWebhook, ModeDisabled:
		return true
	}
	return false
}

// Verbosity controls how much detail the console renderer prints per event.
type Verbosity string

const (
	// VerbosityQuiet suppresses all but session lifecycle and error lines.
	VerbosityQuiet Verbosity = "quiet"
	// VerbosityNormal prints one line per event.
	VerbosityNormal Verbosity = "normal"
	// VerbosityVerbose adds identifiers, parameters and input previews.
	VerbosityVerbose Verbosity = "verbose"
)

// Valid reports whether v is one of the recognized verbosity levels.
func (v Verbosity) Valid() bool {
	switch v {
	case VerbosityQuiet, VerbosityNormal, VerbosityVerbose:
		return true
	}
	return false
}

var (
	// ErrUnknownMode is returned when a destination mode is not recognized.
	ErrUnknownMode = errors.New("config: unknown destination mode")
	// ErrUnknownVerbosity is returned when a verbosity level is not recognized.
	ErrUnknownVerbosity = errors.New("config: unknown verbosity level")
	// ErrInvalidCostRate is returned when a negative cost rate is supplied.
	ErrInvalidCostRate = errors.New("config: cost rate must not be negative")
)

// Colors selects the console palette. Color values are ANSI color names
// (black, red, green, yellow, blue, magenta, cyan, white); unknown names
// render unstyled.
type Colors struct {
	Enabled  bool
	Session  string
	Function string
	LLM      string
	API      string
	Error    string
}

// DefaultColors returns the default console palette.
func DefaultColors() Colors {
	return Colors{
		Enabled:  true,
		Session:  "cyan",
		Function: "green",
		LLM:      "blue",
		API:      "yellow",
		Error:    "red",
	}
}

// Options configures a Config.
type Options struct {
	// Mode selects the output destination. Defaults to ModeConsole.
	Mode Mode

	// Verbosity selects the console detail level. Defaults to VerbosityNormal.
	Verbosity Verbosity

	// ShowParameters controls whether captured call parameters are rendered
	// at verbose level. Defaults to true.
	ShowParameters bool

	// ShowExecutionTime controls whether call durations are rendered.
	// Defaults to true.
	ShowExecutionTime bool

	// ShowTimestamps controls whether each console line carries a clock
	// prefix. Defaults to true.
	ShowTimestamps bool

	// LogFilePath is the destination for ModeFile.
	LogFilePath string

	// WebhookURL is the destination for ModeWebhook.
	WebhookURL string

	// CostPerKiloTokens is the flat USD rate applied per thousand estimated
	// tokens by the LLM wrapper. The estimate is indicative, not billing
	// accurate. Defaults to 0.002.
	CostPerKiloTokens float64

	// Colors selects the console palette. Defaults to DefaultColors.
	Colors Colors
}

func defaultOptions() Options {
	return Options{
		Mode:              ModeConsole,
		Verbosity:         VerbosityNormal,
		ShowParameters:    true,
		ShowExecutionTime: true,
		ShowTimestamps:    true,
		CostPerKiloTokens: 0.002,
		Colors:            DefaultColors(),
	}
}

// Config is the process-wide tracking configuration. All accessors are safe
// for concurrent use; mutations go through the setters only.
type Config struct {
	mu   sync.RWMutex
	opts Options
}

// New creates a Config with console output at normal verbosity and all
// display toggles enabled.
func New(optFns ...func(o *Options)) *Config {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Config{opts: opts}
}

// Mode returns the current destination mode.
func (c *Config) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.Mode
}

// Verbosity returns the current console verbosity level.
func (c *Config) Verbosity() Verbosity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.Verbosity
}

// Enabled reports whether tracking is active. The wrappers consult this
// before measuring; the renderers consult it before producing output.
func (c *Config) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.Mode != ModeDisabled
}

// ShowParameters reports whether captured parameters should be rendered.
func (c *Config) ShowParameters() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.ShowParameters
}

// ShowExecutionTime reports whether call durations should be rendered.
func (c *Config) ShowExecutionTime() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.ShowExecutionTime
}

// ShowTimestamps reports whether console lines carry a clock prefix.
func (c *Config) ShowTimestamps() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.ShowTimestamps
}

// LogFilePath returns the file destination path.
func (c *Config) LogFilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.LogFilePath
}

// WebhookURL returns the webhook destination URL.
func (c *Config) WebhookURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.WebhookURL
}

// CostPerKiloTokens returns the USD rate applied per thousand estimated
// tokens.
func (c *Config) CostPerKiloTokens() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.CostPerKiloTokens
}

// Colors returns a copy of the current console palette.
func (c *Config) Colors() Colors {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.Colors
}

// SetMode switches the destination mode. Unknown modes are rejected with
// ErrUnknownMode and leave the configuration unchanged.
func (c *Config) SetMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.Mode = m
	return nil
}

// SetVerbosity switches the console verbosity level. Unknown levels are
// rejected with ErrUnknownVerbosity and leave the configuration unchanged.
func (c *Config) SetVerbosity(v Verbosity) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownVerbosity, string(v))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.Verbosity = v
	return nil
}

// SetShowParameters toggles parameter rendering.
func (c *Config) SetShowParameters(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.ShowParameters = show
}

// SetShowExecutionTime toggles duration rendering.
func (c *Config) SetShowExecutionTime(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.ShowExecutionTime = show
}

// SetShowTimestamps toggles the clock prefix on console lines.
func (c *Config) SetShowTimestamps(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.ShowTimestamps = show
}

// SetLogFilePath sets the file destination path.
func (c *Config) SetLogFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.LogFilePath = path
}

// SetWebhookURL sets the webhook destination URL.
func (c *Config) SetWebhookURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.WebhookURL = url
}

// SetCostPerKiloTokens sets the USD rate applied per thousand estimated
// tokens. Negative rates are rejected with ErrInvalidCostRate.
func (c *Config) SetCostPerKiloTokens(rate float64) error {
	if rate < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidCostRate, rate)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.CostPerKiloTokens = rate
	return nil
}

// SetColors replaces the console palette.
func (c *Config) SetColors(colors Colors) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.Colors = colors
}

// SetColorsEnabled toggles colored console output without touching the
// palette.
func (c *Config) SetColorsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.Colors.Enabled = enabled
}
