//go:build !unix

package crossexec

import "os/exec"

// Exec replaces the process image. Without an exec primitive on this
// platform it always fails; use Emulator.
type Exec struct{}

func (Exec) Replace(cmd *exec.Cmd) error {
	if err := checkCommand(cmd); err != nil {
		return err
	}
	return &Error{Op: OpLaunch, Path: cmd.Path, Err: ErrExecNotSupported}
}
