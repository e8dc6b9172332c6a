//go:build unix

package crossexec

import (
	"errors"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Seams for tests; a real Exec cannot be observed from inside the process.
var (
	execFunc  = unix.Exec
	dupFunc   = dupCloexec
	dup2Func  = unix.Dup2
	closeFunc = unix.Close
	chdirFunc = unix.Chdir
)

func dupCloexec(fd int) (int, error) {
	return unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0)
}

// Exec replaces the process image with execve(2).
type Exec struct{}

// Replace applies the stdio and working directory of cmd to the current
// process and then execs cmd.Path. Neither change is undone if the exec
// fails. SysProcAttr cannot be honoured without a fork and is rejected.
func (Exec) Replace(cmd *exec.Cmd) error {
	if err := checkCommand(cmd); err != nil {
		return err
	}
	if cmd.SysProcAttr != nil {
		return &Error{Op: OpLaunch, Path: cmd.Path, Err: errors.New("SysProcAttr is not supported by exec")}
	}

	files, err := stdioFiles(cmd)
	if err != nil {
		return &Error{Op: OpLaunch, Path: cmd.Path, Err: err}
	}
	if err := applyStdio(files); err != nil {
		return &Error{Op: OpLaunch, Path: cmd.Path, Err: err}
	}

	if cmd.Dir != "" {
		if err := chdirFunc(cmd.Dir); err != nil {
			return &Error{Op: OpLaunch, Path: cmd.Path, Err: err}
		}
	}

	// #nosec G204 -- running a caller-chosen command is the point.
	err = execFunc(cmd.Path, argv(cmd), cmd.Environ())
	return &Error{Op: OpLaunch, Path: cmd.Path, Err: err}
}

// applyStdio moves files onto descriptors 0, 1 and 2. Every source is
// duplicated before any target is overwritten, so streams can be swapped.
func applyStdio(files [3]*os.File) error {
	tmp := [3]int{-1, -1, -1}
	defer func() {
		for _, fd := range tmp {
			if fd >= 0 {
				_ = closeFunc(fd)
			}
		}
	}()

	for target, f := range files {
		if f == nil || int(f.Fd()) == target {
			continue
		}
		fd, err := dupFunc(int(f.Fd()))
		if err != nil {
			return err
		}
		tmp[target] = fd
	}
	for target, fd := range tmp {
		if fd < 0 {
			continue
		}
		if err := dup2Func(fd, target); err != nil {
			return err
		}
	}
	return nil
}
