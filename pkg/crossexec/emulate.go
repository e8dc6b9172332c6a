package crossexec

import (
	"errors"
	"os"
	"os/exec"
)

// FallbackExitCode is the exit code of the parent when the child ended
// without one.
const FallbackExitCode = 128

var exitFunc = os.Exit

// Emulator runs cmd as a child and exits with its exit code. It is the
// default where exec is unavailable and works everywhere.
type Emulator struct {
	// SignalExitCode reports a child killed by a signal as 128+signal, the
	// way shells do, instead of FallbackExitCode.
	SignalExitCode bool

	// ForwardInterrupts passes interrupts sent to the parent alone on to
	// the child. Leave it off when interrupts come from a terminal or are
	// sent to the process group: the child already gets those and would
	// see each one twice. Ignored on Windows, where the console delivers
	// Ctrl+C to the child itself.
	ForwardInterrupts bool
}

// Replace suppresses interrupts in the current process, runs cmd with the
// parent's stdio unless set otherwise, and exits with the child's status.
//
// If the child cannot be started the interrupt handler is removed again
// before Replace returns. Once the child runs, interrupts stay suppressed
// for the rest of the process's life.
func (e Emulator) Replace(cmd *exec.Cmd) error {
	if err := checkCommand(cmd); err != nil {
		return err
	}

	guard, err := suppressInterrupts(e.ForwardInterrupts)
	if err != nil {
		return &Error{Op: OpInstallHandler, Path: cmd.Path, Err: err}
	}

	inheritStdio(cmd)
	if err := cmd.Start(); err != nil {
		guard.stop()
		return &Error{Op: OpLaunch, Path: cmd.Path, Err: err}
	}
	guard.attach(cmd.Process)

	// A stdio copy error still leaves a valid status behind; the child's
	// exit code wins over it.
	err = cmd.Wait()
	if cmd.ProcessState == nil {
		if err == nil {
			err = errors.New("no process state")
		}
		return &Error{Op: OpWait, Path: cmd.Path, Err: err}
	}

	exitFunc(e.exitCode(cmd.ProcessState))
	return nil // unreachable
}

func (e Emulator) exitCode(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if e.SignalExitCode {
		if sig, ok := terminatingSignal(state); ok {
			return 128 + sig
		}
	}
	return FallbackExitCode
}
