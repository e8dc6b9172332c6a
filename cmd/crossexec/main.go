package main

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/vertti/crossexec/pkg/crossexec"
	"github.com/vertti/crossexec/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		output.PrintFailure(os.Stderr, err)
		os.Exit(exitStatus(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossexec [flags] [--] program [args...]",
	Short: "Replace this process with another program",
	Long: "crossexec runs a program in place of itself. On Unix the process image is replaced with exec; " +
		"on Windows the program runs as a child that receives Ctrl+C, and crossexec exits with its exit code.",
	Version:       Version,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReplace,
}

func init() {
	f := rootCmd.Flags()
	// Everything after the program belongs to the program.
	f.SetInterspersed(false)
	f.StringP("dir", "C", "", "working directory of the program")
	f.StringArrayP("env", "e", nil, "set KEY=VALUE in the program's environment (repeatable)")
	f.StringArray("env-file", nil, "load environment variables from a dotenv file (repeatable)")
	f.Bool("clear-env", false, "do not pass the current environment to the program")
	f.String("strategy", strategyAuto, "replacement strategy: auto, exec or emulate")
	f.Bool("signal-exit-code", false, "emulate: exit with 128+signal when the program is killed by a signal")
	f.Bool("forward-interrupts", false, "emulate: pass interrupts sent to crossexec alone on to the program")
	f.BoolP("verbose", "v", false, "log what crossexec does to stderr")
}

// exitStatus follows the shell conventions for programs that could not be
// started.
func exitStatus(err error) int {
	if !errors.Is(err, crossexec.ErrLaunch) {
		return 1
	}
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return 127
	case errors.Is(err, fs.ErrPermission):
		return 126
	}
	return 1
}
