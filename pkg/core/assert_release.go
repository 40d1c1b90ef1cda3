//go:build !raytracer_debug

package core

// Assert is a no-op in release builds; build with the raytracer_debug tag
// to enable the checks.
func Assert(cond bool, format string, args ...interface{}) {}
