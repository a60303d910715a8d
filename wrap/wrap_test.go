package wrap

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agenttrace/config"
	"github.com/hupe1980/agenttrace/core"
	"github.com/hupe1980/agenttrace/registry"
)

func newTestRegistry(optFns ...func(o *config.Options)) *registry.Registry {
	return registry.New(config.New(optFns...))
}

func functionEvents(reg *registry.Registry) []*core.FunctionCallEvent {
	var out []*core.FunctionCallEvent
	for _, ev := range reg.Events() {
		if fc, ok := ev.(*core.FunctionCallEvent); ok {
			out = append(out, fc)
		}
	}
	return out
}

func TestCall_Success(t *testing.T) {
	reg := newTestRegistry()
	reg.StartSession("")

	result, err := Call(reg, "book_meeting", func() (string, error) {
		return "booked", nil
	}, WithArgs("2024-06-01", 2), WithParam("location", "HQ"))

	require.NoError(t, err)
	assert.Equal(t, "booked", result)

	events := functionEvents(reg)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "book_meeting", ev.FunctionName)
	assert.True(t, ev.Success)
	assert.Equal(t, "booked", ev.ReturnValue)
	assert.Empty(t, ev.ErrorMessage)
	assert.GreaterOrEqual(t, ev.ExecutionTimeMS, 0.0)
	assert.Equal(t, reg.SessionID(), ev.SessionID)

	date, ok := ev.Parameters.Get("arg_1")
	require.True(t, ok)
	assert.Equal(t, "2024-06-01", date)
	count, ok := ev.Parameters.Get("arg_2")
	require.True(t, ok)
	assert.Equal(t, "2", count)
	loc, ok := ev.Parameters.Get("location")
	require.True(t, ok)
	assert.Equal(t, "HQ", loc)
}

func TestCall_ErrorReRaised(t *testing.T) {
	reg := newTestRegistry()
	reg.StartSession("")

	sentinel := errors.New("calendar unavailable")
	result, err := Call(reg, "book_meeting", func() (string, error) {
		return "", sentinel
	})

	require.ErrorIs(t, err, sentinel)
	assert.Empty(t, result)

	events := functionEvents(reg)
	require.Len(t, events, 1, "exactly one event per invocation")
	assert.False(t, events[0].Success)
	assert.Equal(t, "calendar unavailable", events[0].ErrorMessage)
	assert.Empty(t, events[0].ReturnValue)
}

func TestCall_PanicEmitsThenRethrows(t *testing.T) {
	reg := newTestRegistry()
	reg.StartSession("")

	func() {
		defer func() {
			rec := recover()
			require.Equal(t, "kaput", rec, "panic value must propagate unchanged")
		}()
		_, _ = Call(reg, "explode", func() (string, error) {
			panic("kaput")
		})
	}()

	events := functionEvents(reg)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "panic: kaput", events[0].ErrorMessage)
}

func TestCall_DisabledShortCircuits(t *testing.T) {
	reg := newTestRegistry(func(o *config.Options) { o.Mode = config.ModeDisabled })

	calls := 0
	result, err := Call(reg, "book_meeting", func() (int, error) {
		calls++
		return 7, nil
	}, WithArgs("ignored"))

	require.NoError(t, err)
	assert.Equal(t, 7, result)
	assert.Equal(t, 1, calls, "the wrapped call still runs exactly once")
	assert.Empty(t, reg.Events(), "disabled tracking must not emit or start sessions")
}

func TestCall_NilRegistryPassesThrough(t *testing.T) {
	result, err := Call(nil, "f", func() (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, result)
}

func TestCall_ZeroResultNotRecorded(t *testing.T) {
	reg := newTestRegistry()
	reg.StartSession("")

	_, err := Call(reg, "count_conflicts", func() (int, error) { return 0, nil })
	require.NoError(t, err)

	events := functionEvents(reg)
	require.Len(t, events, 1)
	assert.Empty(t, events[0].ReturnValue, "zero results carry no return value")
	assert.True(t, events[0].Success)
}

func TestRun(t *testing.T) {
	reg := newTestRegistry()
	reg.StartSession("")

	sentinel := errors.New("nope")
	err := Run(reg, "delete_event", func() error { return sentinel }, WithParam("event_id", "ev-9"))
	require.ErrorIs(t, err, sentinel)

	events := functionEvents(reg)
	require.Len(t, events, 1)
	assert.Equal(t, "delete_event", events[0].FunctionName)
	assert.False(t, events[0].Success)
}

func TestWithArgs_DescribesAndBounds(t *testing.T) {
	reg := newTestRegistry()
	reg.StartSession("")

	huge := strings.Repeat("x", 500)
	_, err := Call(reg, "f", func() (bool, error) { return true, nil }, WithArgs(huge))
	require.NoError(t, err)

	events := functionEvents(reg)
	require.Len(t, events, 1)
	v, ok := events[0].Parameters.Get("arg_1")
	require.True(t, ok)
	assert.Len(t, v, 50, "described arguments are bounded")
}
