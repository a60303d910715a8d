package core

import (
	"fmt"
	"unicode/utf8"
)

// describeMaxLen bounds the generic string conversion of described values so
// large arguments never bloat events or log lines.
const describeMaxLen = 50

// DescribeValue converts an arbitrary value to a bounded, single-purpose
// string for inclusion in events. Types implementing fmt.Stringer control
// their own representation; everything else falls back to the default
// formatting verb. A panicking String implementation is contained and
// reported as "<unprintable>" so observability can never break the observed
// call.
func DescribeValue(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = "<unprintable>"
		}
	}()

	if v == nil {
		return "<nil>"
	}
	if str, ok := v.(fmt.Stringer); ok {
		return Truncate(str.String(), describeMaxLen)
	}
	return Truncate(fmt.Sprintf("%v", v), describeMaxLen)
}

// Truncate hard-cuts s after max runes. Unlike preview helpers it appends no
// ellipsis, mirroring the bounded parameter capture of the render path.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// ShortID shortens an identifier to its first eight characters for display.
func ShortID(id string) string { return Truncate(id, 8) }
