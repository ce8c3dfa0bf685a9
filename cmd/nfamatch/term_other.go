//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package main

// isTerminal always reports false; output stays machine-readable.
func isTerminal(uintptr) bool {
	return false
}
