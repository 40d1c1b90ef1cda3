//go:build raytracer_debug

package core

import "fmt"

// Assert panics with a formatted message when cond is false. It only exists
// in builds carrying the raytracer_debug tag; release builds compile it to
// a no-op.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
