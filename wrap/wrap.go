package wrap

import (
	"fmt"
	"reflect"
	"time"

	"github.com/hupe1980/agenttrace/core"
	"github.com/hupe1980/agenttrace/registry"
)

// CallOptions configures the parameter capture of Call and Run.
type CallOptions struct {
	params core.Params
}

// WithArgs records positional arguments under arg_1..arg_N in call order.
// Each value is described through core.DescribeValue. Receiver-like handles
// (services, clients) should simply not be passed.
func WithArgs(args ...any) func(o *CallOptions) {
	return func(o *CallOptions) {
		for i, arg := range args {
			o.params = o.params.Set(fmt.Sprintf("arg_%d", i+1), core.DescribeValue(arg))
		}
	}
}

// WithParam records one named argument.
func WithParam(name string, value any) func(o *CallOptions) {
	return func(o *CallOptions) {
		o.params = o.params.Set(name, core.DescribeValue(value))
	}
}

// Call invokes fn under instrumentation and returns its outcome unchanged.
//
// When tracking is disabled (or reg is nil) fn runs directly with no
// measurement. Otherwise the call is timed and exactly one FunctionCall
// event is emitted regardless of outcome: on an error the event carries
// success=false and the error text, on a panic the event is emitted before
// the panic is rethrown. The described return value is recorded only for
// non-zero results of successful calls.
func Call[T any](reg *registry.Registry, name string, fn func() (T, error), optFns ...func(o *CallOptions)) (T, error) {
	if reg == nil || !reg.Enabled() {
		return fn()
	}

	opts := CallOptions{}
	for _, optFn := range optFns {
		optFn(&opts)
	}

	ev := core.NewFunctionCallEvent(name)
	ev.Parameters = opts.params

	start := time.Now()
	defer func() {
		ev.ExecutionTimeMS = time.Since(start).Seconds() * 1000
		if rec := recover(); rec != nil {
			ev.Success = false
			ev.ErrorMessage = fmt.Sprintf("panic: %v", rec)
			ev.ReturnValue = ""
			reg.Emit(ev)
			panic(rec)
		}
		reg.Emit(ev)
	}()

	result, err := fn()
	if err != nil {
		ev.Success = false
		ev.ErrorMessage = err.Error()
	} else {
		ev.ReturnValue = describeResult(result)
	}
	return result, err
}

// Run is Call for functions with no return value.
func Run(reg *registry.Registry, name string, fn func() error, optFns ...func(o *CallOptions)) error {
	_, err := Call(reg, name, func() (struct{}, error) { return struct{}{}, fn() }, optFns...)
	return err
}

// describeResult describes a return value for the event, treating zero
// values as "nothing worth recording".
func describeResult(v any) string {
	if v == nil {
		return ""
	}
	if rv := reflect.ValueOf(v); rv.IsZero() {
		return ""
	}
	return core.DescribeValue(v)
}
