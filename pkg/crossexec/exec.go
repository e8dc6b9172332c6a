// Package crossexec replaces the current process with another program, or
// comes as close to that as the host operating system allows.
//
// On unix, Replace calls execve(2): the process keeps its PID but its image,
// argv and environment become the target's. Nothing in the caller runs
// afterwards, not even deferred functions.
//
// Elsewhere Replace emulates the observable contract. It suppresses console
// interrupts in the parent so that they reach the child, runs the child with
// the parent's stdio, waits for it and exits with the child's exit code.
//
// Replace only returns on failure, and then always with a non-nil error. The
// process may have been changed by the failed attempt (working directory,
// standard descriptors, interrupt handling), so callers that need a
// transactional launch must use exec.Cmd.Run instead.
package crossexec

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Replacer puts cmd in control of the current process.
type Replacer interface {
	// Replace does not return on success. When it returns, the error is
	// non-nil and the current process is still the original program.
	Replace(cmd *exec.Cmd) error
}

// Replace replaces the current process with cmd using the strategy of the
// build target. See Default.
func Replace(cmd *exec.Cmd) error {
	return Default().Replace(cmd)
}

// errAlreadyStarted mirrors the message exec.Cmd.Start uses.
var errAlreadyStarted = errors.New("exec: already started")

// checkCommand reports problems that are known before any process state is
// touched.
func checkCommand(cmd *exec.Cmd) error {
	if cmd == nil {
		return &Error{Op: OpLaunch, Err: errors.New("exec: nil command")}
	}
	if cmd.Process != nil {
		return &Error{Op: OpLaunch, Path: cmd.Path, Err: errAlreadyStarted}
	}
	if cmd.Err != nil {
		return &Error{Op: OpLaunch, Path: cmd.Path, Err: cmd.Err}
	}
	if cmd.Path == "" {
		return &Error{Op: OpLaunch, Err: errors.New("exec: no command")}
	}
	return nil
}

// argv returns the argument vector for cmd, argv[0] included.
func argv(cmd *exec.Cmd) []string {
	if len(cmd.Args) == 0 {
		return []string{cmd.Path}
	}
	return cmd.Args
}

// inheritStdio fills unset streams with the parent's own.
func inheritStdio(cmd *exec.Cmd) {
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
}

// stdioFiles returns the streams of cmd in descriptor order. Unset streams
// are nil. Streams that are not files cannot survive an exec.
func stdioFiles(cmd *exec.Cmd) ([3]*os.File, error) {
	var files [3]*os.File
	streams := [3]any{cmd.Stdin, cmd.Stdout, cmd.Stderr}
	names := [3]string{"stdin", "stdout", "stderr"}
	for i, s := range streams {
		if s == nil {
			continue
		}
		f, ok := s.(*os.File)
		if !ok {
			return files, fmt.Errorf("%s is a %T, only *os.File can be inherited", names[i], s)
		}
		if f == nil {
			continue
		}
		files[i] = f
	}
	if len(cmd.ExtraFiles) > 0 {
		return files, errors.New("extra files cannot be inherited")
	}
	return files, nil
}
