package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/hupe1980/agenttrace/config"
	"github.com/hupe1980/agenttrace/core"
)

// costAlertThreshold is the estimated session cost (USD) above which the
// summary renders the total in the error color.
const costAlertThreshold = 0.10

// ansiColors maps the configurable color names to ANSI palette indices.
var ansiColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// ConsoleOptions configures a Console renderer.
type ConsoleOptions struct {
	// Writer receives the rendered lines. Defaults to os.Stdout.
	Writer io.Writer
}

// Console renders events as single colorized lines and summaries as a fixed
// multi-line report. Output is suppressed entirely unless the configured
// destination mode is console.
type Console struct {
	cfg    *config.Config
	mu     sync.Mutex
	out    io.Writer
	styles *lipgloss.Renderer
}

var _ core.Renderer = (*Console)(nil)

// NewConsole creates a console renderer bound to the given configuration.
// Styling degrades to plain text automatically when the writer is not a
// terminal.
func NewConsole(cfg *config.Config, optFns ...func(o *ConsoleOptions)) *Console {
	opts := ConsoleOptions{Writer: os.Stdout}
	for _, fn := range optFns {
		fn(&opts)
	}
	if cfg == nil {
		cfg = config.New()
	}
	return &Console{cfg: cfg, out: opts.Writer, styles: lipgloss.NewRenderer(opts.Writer)}
}

// WithWriter redirects the rendered lines, mainly for tests.
func WithWriter(w io.Writer) func(o *ConsoleOptions) {
	return func(o *ConsoleOptions) { o.Writer = w }
}

// Render prints one line (or, for verbose errors, two) describing the event.
// Quiet verbosity suppresses everything except session lifecycle and error
// events.
func (c *Console) Render(ev core.Event) error {
	if c.cfg.Mode() != config.ModeConsole {
		return nil
	}

	verbosity := c.cfg.Verbosity()
	colors := c.cfg.Colors()

	switch e := ev.(type) {
	case *core.SessionStartEvent:
		msg := c.timestamp(e.Timestamp) + "🚀 Session Started"
		if verbosity == config.VerbosityVerbose {
			msg += " | ID: " + core.ShortID(e.SessionID)
		}
		return c.println(c.colorize(msg, colors.Session))

	case *core.SessionEndEvent:
		msg := c.timestamp(e.Timestamp) + "🏁 Session Ended"
		return c.println(c.colorize(msg, colors.Session))

	case *core.FunctionCallEvent:
		if verbosity == config.VerbosityQuiet {
			return nil
		}
		return c.println(c.functionLine(e, verbosity, colors))

	case *core.LLMCallEvent:
		if verbosity == config.VerbosityQuiet {
			return nil
		}
		return c.println(c.llmLine(e, verbosity, colors))

	case *core.APICallEvent:
		if verbosity == config.VerbosityQuiet {
			return nil
		}
		return c.println(c.apiLine(e, verbosity, colors))

	case *core.ErrorEvent:
		if err := c.println(c.errorLine(e, colors)); err != nil {
			return err
		}
		if verbosity == config.VerbosityVerbose && e.StackTrace != "" {
			return c.println(c.colorize("Stack trace: "+e.StackTrace, colors.Error))
		}
		return nil
	}

	return nil
}

func (c *Console) functionLine(e *core.FunctionCallEvent, verbosity config.Verbosity, colors config.Colors) string {
	status := "✅"
	if !e.Success {
		status = "❌"
	}
	msg := fmt.Sprintf("%s%s %s()%s", c.timestamp(e.Timestamp), status, e.FunctionName, c.execTime(e.ExecutionTimeMS))

	if c.cfg.ShowParameters() && verbosity == config.VerbosityVerbose && len(e.Parameters) > 0 {
		parts := make([]string, 0, len(e.Parameters))
		for _, kv := range e.Parameters {
			parts = append(parts, kv.Name+"="+core.Truncate(kv.Value, 50))
		}
		msg += " | Params: " + strings.Join(parts, ", ")
	}
	if !e.Success && e.ErrorMessage != "" {
		msg += " | Error: " + e.ErrorMessage
	}

	color := colors.Function
	if !e.Success {
		color = colors.Error
	}
	return c.colorize(msg, color)
}

func (c *Console) llmLine(e *core.LLMCallEvent, verbosity config.Verbosity, colors config.Colors) string {
	status := "🤖"
	if !e.Success {
		status = "❌"
	}
	msg := fmt.Sprintf("%s%s LLM Call (%s)%s", c.timestamp(e.Timestamp), status, e.ModelName, c.execTime(e.ResponseTimeMS))

	if e.TokensUsed != 0 {
		msg += fmt.Sprintf(" | Tokens: %d", e.TokensUsed)
	}
	if e.EstimatedCost != 0 {
		msg += fmt.Sprintf(" | Cost: $%.4f", e.EstimatedCost)
	}
	if verbosity == config.VerbosityVerbose && e.UserInput != "" {
		preview := e.UserInput
		if utf8.RuneCountInString(preview) > 100 {
			preview = core.Truncate(preview, 100) + "..."
		}
		msg += fmt.Sprintf(" | Input: '%s'", preview)
	}
	if !e.Success && e.ErrorMessage != "" {
		msg += " | Error: " + e.ErrorMessage
	}

	color := colors.LLM
	if !e.Success {
		color = colors.Error
	}
	return c.colorize(msg, color)
}

func (c *Console) apiLine(e *core.APICallEvent, verbosity config.Verbosity, colors config.Colors) string {
	status := "🌐"
	if !e.Success {
		status = "❌"
	}
	msg := fmt.Sprintf("%s%s API Call (%s)%s", c.timestamp(e.Timestamp), status, e.APIName, c.execTime(e.ResponseTimeMS))

	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" | %s %d", e.Method, e.StatusCode)
	}
	if verbosity == config.VerbosityVerbose {
		if e.Endpoint != "" {
			msg += " | " + e.Endpoint
		}
		if e.RequestSize > 0 || e.ResponseSize > 0 {
			msg += fmt.Sprintf(" | sent %s, recv %s", humanize.Bytes(uint64(e.RequestSize)), humanize.Bytes(uint64(e.ResponseSize)))
		}
	}
	if !e.Success && e.ErrorMessage != "" {
		msg += " | Error: " + e.ErrorMessage
	}

	color := colors.API
	if !e.Success {
		color = colors.Error
	}
	return c.colorize(msg, color)
}

func (c *Console) errorLine(e *core.ErrorEvent, colors config.Colors) string {
	msg := c.timestamp(e.Timestamp) + "💥 ERROR: " + e.ErrorType
	if e.FunctionName != "" {
		msg += " in " + e.FunctionName + "()"
	}
	msg += " | " + e.ErrorMessage
	return c.colorize(msg, colors.Error)
}

// RenderSummary prints the fixed end-of-session report.
func (c *Console) RenderSummary(s core.Summary) error {
	if c.cfg.Mode() != config.ModeConsole {
		return nil
	}
	colors := c.cfg.Colors()
	rule := strings.Repeat("=", 50)

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString(c.colorize("📊 SESSION SUMMARY", colors.Session) + "\n")
	b.WriteString(rule + "\n")

	if s.TotalTimeSeconds != nil && *s.TotalTimeSeconds != 0 {
		b.WriteString(fmt.Sprintf("⏱️  Duration: %.1f seconds\n", *s.TotalTimeSeconds))
	}
	b.WriteString(fmt.Sprintf("🔧 Function calls: %d\n", s.FunctionCallsCount))
	b.WriteString(fmt.Sprintf("🤖 LLM calls: %d\n", s.LLMCallsCount))
	b.WriteString(fmt.Sprintf("🌐 API calls: %d\n", s.APICallsCount))

	if s.ErrorsCount > 0 {
		b.WriteString(c.colorize(fmt.Sprintf("💥 Errors: %d", s.ErrorsCount), colors.Error) + "\n")
	}
	if s.TotalEstimatedCost > 0 {
		costColor := colors.Function
		if s.TotalEstimatedCost > costAlertThreshold {
			costColor = colors.Error
		}
		b.WriteString(c.colorize(fmt.Sprintf("💰 Total estimated cost: $%.4f", s.TotalEstimatedCost), costColor) + "\n")
	}
	b.WriteString(rule + "\n\n")

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.out, b.String())
	return err
}

// timestamp renders the local wall-clock prefix, or nothing when timestamps
// are disabled.
func (c *Console) timestamp(ts time.Time) string {
	if !c.cfg.ShowTimestamps() {
		return ""
	}
	return ts.Local().Format("[15:04:05] ")
}

// execTime renders the duration suffix, or nothing when durations are
// disabled.
func (c *Console) execTime(ms float64) string {
	if !c.cfg.ShowExecutionTime() {
		return ""
	}
	return fmt.Sprintf(" (%.1fms)", ms)
}

// colorize styles text with the named color. Unknown color names and
// disabled colors render unstyled; non-terminal writers degrade to plain
// text through the lipgloss renderer.
func (c *Console) colorize(text, color string) string {
	if !c.cfg.Colors().Enabled {
		return text
	}
	code, ok := ansiColors[strings.ToLower(color)]
	if !ok {
		return text
	}
	return c.styles.NewStyle().Foreground(lipgloss.Color(code)).Render(text)
}

func (c *Console) println(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.out, line)
	return err
}
