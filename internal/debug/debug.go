// Package debug holds assertions for hot paths that are compiled out of
// release builds. Build with -tags pargraph_debug to turn them on.
package debug

import "fmt"

// Assert panics with msg when cond is false and assertions are enabled.
func Assert(cond bool, msg string) {
	if Enabled && !cond {
		panic("pargraph: assertion failed: " + msg)
	}
}

// Assertf is Assert with a formatted message. Arguments are only formatted
// on failure.
func Assertf(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic("pargraph: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
