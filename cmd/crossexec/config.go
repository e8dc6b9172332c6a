package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vertti/crossexec/pkg/crossexec"
)

const (
	strategyAuto    = "auto"
	strategyExec    = "exec"
	strategyEmulate = "emulate"
)

// Config holds the settings of one invocation.
type Config struct {
	Strategy          string
	SignalExitCode    bool
	ForwardInterrupts bool
	Verbose           bool
	Dir               string
	ClearEnv          bool
	Env               []string
	EnvFiles          []string
}

// loadConfig reads the flags of cmd. Scalar settings can also come from
// CROSSEXEC_* environment variables; flags win.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("crossexec")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	// Repeatable flags are read from pflag: viper splits them on commas.
	env, err := cmd.Flags().GetStringArray("env")
	if err != nil {
		return Config{}, err
	}
	envFiles, err := cmd.Flags().GetStringArray("env-file")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Strategy:          strings.ToLower(v.GetString("strategy")),
		SignalExitCode:    v.GetBool("signal-exit-code"),
		ForwardInterrupts: v.GetBool("forward-interrupts"),
		Verbose:           v.GetBool("verbose"),
		Dir:               v.GetString("dir"),
		ClearEnv:          v.GetBool("clear-env"),
		Env:               env,
		EnvFiles:          envFiles,
	}, nil
}

// replacerFor returns the Replacer cfg asks for.
func replacerFor(cfg Config) (crossexec.Replacer, error) {
	switch cfg.Strategy {
	case strategyAuto, "":
		if _, ok := crossexec.Default().(crossexec.Emulator); ok {
			return emulator(cfg), nil
		}
		return crossexec.Default(), nil
	case strategyExec:
		return crossexec.Exec{}, nil
	case strategyEmulate:
		return emulator(cfg), nil
	}
	return nil, fmt.Errorf("invalid --strategy %q: want auto, exec or emulate", cfg.Strategy)
}

func emulator(cfg Config) crossexec.Emulator {
	return crossexec.Emulator{SignalExitCode: cfg.SignalExitCode, ForwardInterrupts: cfg.ForwardInterrupts}
}
