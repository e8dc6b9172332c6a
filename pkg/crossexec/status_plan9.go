package crossexec

import "os"

// terminatingSignal reports no signal: plan9 ends processes with notes,
// not numbered signals.
func terminatingSignal(*os.ProcessState) (int, bool) {
	return 0, false
}
