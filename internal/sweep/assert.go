package sweep

import "github.com/arl/assertgo"

// invariant panics if cond is false, the same way arl-go-detour's
// node.go guards impossible beachline/node states with assert.True.
// github.com/arl/assertgo compiles True to a no-op unless the binary
// is built with -tags debug, so a release build never pays for these
// checks and Run can never panic outside a debug build.
func invariant(cond bool, format string, args ...any) {
	assert.True(cond, format, args...)
}
