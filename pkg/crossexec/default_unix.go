//go:build unix

package crossexec

// Default returns the replacement strategy of the build target: Exec.
func Default() Replacer { return Exec{} }
