//go:build windows

package crossexec

import (
	"os"

	"golang.org/x/sys/windows"
)

var procSetConsoleCtrlHandler = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetConsoleCtrlHandler")

// ignoreAll claims every console control event for this process. Handlers
// run most recent first, so the Go runtime's handler never sees them.
var ignoreAll = windows.NewCallback(func(ctrlType uint32) uintptr {
	return 1
})

// interruptGuard needs no forwarding: the console sends Ctrl+C and
// Ctrl+Break to every process attached to it, the child included.
type interruptGuard struct{}

func suppressInterrupts(bool) (*interruptGuard, error) {
	if err := setConsoleCtrlHandler(true); err != nil {
		return nil, err
	}
	return &interruptGuard{}, nil
}

func (*interruptGuard) attach(*os.Process) {}

// stop removes the handler again.
func (*interruptGuard) stop() {
	_ = setConsoleCtrlHandler(false)
}

func setConsoleCtrlHandler(add bool) error {
	if err := procSetConsoleCtrlHandler.Find(); err != nil {
		return err
	}
	var flag uintptr
	if add {
		flag = 1
	}
	r, _, err := procSetConsoleCtrlHandler.Call(ignoreAll, flag)
	if r == 0 {
		return err
	}
	return nil
}
