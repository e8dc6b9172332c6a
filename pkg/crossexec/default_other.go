//go:build !unix

package crossexec

// Default returns the replacement strategy of the build target: Emulator,
// since there is no exec primitive.
func Default() Replacer { return Emulator{} }
