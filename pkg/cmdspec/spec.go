// Package cmdspec builds the command a process is replaced with.
package cmdspec

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
)

// ErrNoProgram is returned when Spec has no program.
var ErrNoProgram = errors.New("no program given")

// EnvReader reads KEY=VALUE pairs from an env file.
type EnvReader interface {
	ReadEnvFile(path string) (map[string]string, error)
}

// DotenvReader reads env files with godotenv.
type DotenvReader struct{}

func (DotenvReader) ReadEnvFile(path string) (map[string]string, error) {
	return godotenv.Read(path)
}

// environ returns the current environment.
var environ = os.Environ

// Spec describes the program to run and the environment it gets.
type Spec struct {
	// Program is looked up in the PATH of the current process.
	Program string
	Args    []string
	// Dir is the working directory. Empty keeps the current one.
	Dir string
	// ClearEnv starts from an empty environment instead of the current one.
	ClearEnv bool
	// EnvFiles are applied in order, each overriding earlier values.
	EnvFiles []string
	// Env holds KEY=VALUE entries applied after EnvFiles.
	Env []string
	// Reader reads EnvFiles. Defaults to DotenvReader.
	Reader EnvReader
}

// Command returns an unstarted command for s. Stdio streams are left unset.
func (s Spec) Command() (*exec.Cmd, error) {
	if s.Program == "" {
		return nil, ErrNoProgram
	}
	env, err := s.Environ()
	if err != nil {
		return nil, err
	}

	// #nosec G204 -- the program is chosen by the caller.
	cmd := exec.Command(s.Program, s.Args...)
	cmd.Dir = s.Dir
	cmd.Env = env
	return cmd, nil
}

// Environ returns the merged environment, one entry per key, keeping the
// position where a key first appeared.
func (s Spec) Environ() ([]string, error) {
	var m envMap
	if !s.ClearEnv {
		for _, kv := range environ() {
			k, v, _ := strings.Cut(kv, "=")
			m.set(k, v)
		}
	}

	reader := s.Reader
	if reader == nil {
		reader = DotenvReader{}
	}
	for _, path := range s.EnvFiles {
		vars, err := reader.ReadEnvFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		for _, k := range sortedKeys(vars) {
			m.set(k, vars[k])
		}
	}

	for _, kv := range s.Env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid environment entry %q: want KEY=VALUE", kv)
		}
		m.set(k, v)
	}
	return m.list(), nil
}
