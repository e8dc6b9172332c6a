package main

import (
	"io"

	"github.com/jwalton/go-supportscolor"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vertti/crossexec/pkg/cmdspec"
)

// newReplacer is replaced in tests; a real replacement would end the test
// binary.
var newReplacer = replacerFor

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !supportscolor.Stderr().SupportsColor}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// loggingEnvReader logs each env file it reads.
type loggingEnvReader struct {
	next cmdspec.EnvReader
	log  zerolog.Logger
}

func (r loggingEnvReader) ReadEnvFile(path string) (map[string]string, error) {
	vars, err := r.next.ReadEnvFile(path)
	if err != nil {
		r.log.Debug().Err(err).Str("file", path).Msg("env file failed")
		return nil, err
	}
	r.log.Debug().Str("file", path).Int("vars", len(vars)).Msg("loaded env file")
	return vars, nil
}

func runReplace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	replacer, err := newReplacer(cfg)
	if err != nil {
		return err
	}

	spec := cmdspec.Spec{
		Program:  args[0],
		Args:     args[1:],
		Dir:      cfg.Dir,
		ClearEnv: cfg.ClearEnv,
		EnvFiles: cfg.EnvFiles,
		Env:      cfg.Env,
		Reader:   loggingEnvReader{next: cmdspec.DotenvReader{}, log: log},
	}
	target, err := spec.Command()
	if err != nil {
		return err
	}

	log.Debug().
		Str("strategy", cfg.Strategy).
		Str("path", target.Path).
		Strs("args", target.Args[1:]).
		Str("dir", target.Dir).
		Int("env", len(target.Env)).
		Msg("replacing process")

	// Only returns on failure.
	return replacer.Replace(target)
}
