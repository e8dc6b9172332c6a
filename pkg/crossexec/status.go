//go:build !plan9

package crossexec

import (
	"os"
	"syscall"
)

// terminatingSignal returns the signal that killed the process of state.
func terminatingSignal(state *os.ProcessState) (int, bool) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}
	return int(ws.Signal()), true
}
