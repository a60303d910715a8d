package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/hupe1980/agenttrace/core"
)

// ErrClosed is returned when rendering through a closed file renderer.
var ErrClosed = errors.New("render: file renderer is closed")

// summaryRecord tags a summary so file and webhook consumers can tell it
// apart from events, which carry their own event_type discriminant.
type summaryRecord struct {
	EventType string `json:"event_type"`
	core.Summary
}

const summaryRecordType = "session_summary"

// File appends events and summaries as JSON lines to a log file. Lines are
// written atomically with respect to each other; the file is opened in
// append mode so multiple process runs accumulate.
type File struct {
	mu   sync.Mutex
	path string
	f    *os.File
	enc  *json.Encoder
}

var _ core.Renderer = (*File)(nil)

// NewFile opens (or creates) the log file at path for appending.
func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return &File{path: path, f: f, enc: json.NewEncoder(f)}, nil
}

// Path returns the log file path.
func (r *File) Path() string { return r.path }

// Render appends the event as one JSON line.
func (r *File) Render(ev core.Event) error {
	return r.encode(ev)
}

// RenderSummary appends the summary as one JSON line tagged with the
// session_summary record type.
func (r *File) RenderSummary(s core.Summary) error {
	return r.encode(summaryRecord{EventType: summaryRecordType, Summary: s})
}

func (r *File) encode(v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.f == nil {
		return ErrClosed
	}
	if err := r.enc.Encode(v); err != nil {
		return fmt.Errorf("appending to log file: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Further renders return
// ErrClosed. Close is idempotent.
func (r *File) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	r.enc = nil
	if err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}
