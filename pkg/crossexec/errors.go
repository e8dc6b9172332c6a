package crossexec

import "errors"

// Op names the step of a replacement that failed.
type Op string

const (
	// OpInstallHandler is the interrupt guard installation of the emulator.
	OpInstallHandler Op = "install interrupt handler"
	// OpLaunch covers everything up to the target program taking over:
	// exec itself, stdio and directory set-up, or spawning the child.
	OpLaunch Op = "launch"
	// OpWait is waiting for the emulated child and reading its status.
	OpWait Op = "wait"
)

// Sentinels for errors.Is, one per Op.
var (
	ErrHandlerInstallation = errors.New("interrupt handler installation failed")
	ErrLaunch              = errors.New("launch failed")
	ErrStatusRetrieval     = errors.New("status retrieval failed")
)

// ErrExecNotSupported is wrapped by Exec on platforms without process image
// replacement.
var ErrExecNotSupported = errors.New("exec not supported on this platform")

// Error records a failed replacement. The process was not replaced.
type Error struct {
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "crossexec: " + string(e.Op) + ": " + e.Err.Error()
	}
	return "crossexec: " + string(e.Op) + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of e.Op.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrHandlerInstallation:
		return e.Op == OpInstallHandler
	case ErrLaunch:
		return e.Op == OpLaunch
	case ErrStatusRetrieval:
		return e.Op == OpWait
	}
	return false
}
