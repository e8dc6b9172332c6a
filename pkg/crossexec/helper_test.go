package crossexec

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"testing"
	"time"
)

// helperEnv selects a helper action when the test binary is started as a
// child of one of the tests.
const helperEnv = "CROSSEXEC_TEST_HELPER"

// helpers run in a fresh copy of the test binary. Most replace themselves
// and must never get to their final line.
var helpers = map[string]func() error{
	"exec-echo": func() error {
		return Replace(exec.Command("echo", "hello"))
	},
	"exec-argv": func() error {
		return Replace(exec.Command("sh", "-c", `echo "$0:$1"`, "first", "second"))
	},
	"exec-dir": func() error {
		cmd := exec.Command("pwd", "-P")
		cmd.Dir = os.Getenv("HELPER_DIR")
		return Replace(cmd)
	},
	"exec-swap": func() error {
		cmd := exec.Command("sh", "-c", "echo to stderr >&2")
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stdout
		return Replace(cmd)
	},
	"emulate-script": func() error {
		e := Emulator{SignalExitCode: os.Getenv("HELPER_SIGNAL_EXIT_CODE") != ""}
		return e.Replace(exec.Command("sh", "-c", os.Getenv("HELPER_SCRIPT")))
	},
	"emulate-stdout": func() error {
		return Emulator{}.Replace(exec.Command("echo", "from child"))
	},
	"emulate-copy-error": func() error {
		cmd := exec.Command("sh", "-c", "echo hi; exit 0")
		cmd.Stdout = failingWriter{}
		return Emulator{}.Replace(cmd)
	},
	"emulate-interrupt": func() error {
		e := Emulator{ForwardInterrupts: os.Getenv("HELPER_FORWARD") != ""}
		return e.Replace(exec.Command("sh", "-c",
			`trap 'exit 42' INT; echo ready; while :; do sleep 0.05; done`))
	},
	"emulate-count": func() error {
		cmd := exec.Command(os.Args[0], "-test.run=^$")
		cmd.Env = append(os.Environ(), helperEnv+"=count-interrupts")
		return Emulator{}.Replace(cmd)
	},
	"count-interrupts": func() error {
		sigs := make(chan os.Signal, 4)
		signal.Notify(sigs, os.Interrupt)
		fmt.Println("ready")

		count := 0
		select {
		case <-sigs:
			count++
		case <-time.After(10 * time.Second):
			return errors.New("no interrupt")
		}
		settle := time.After(500 * time.Millisecond)
		for {
			select {
			case <-sigs:
				count++
			case <-settle:
				fmt.Printf("count %d\n", count)
				os.Exit(0)
			}
		}
	},
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestMain(m *testing.M) {
	if name := os.Getenv(helperEnv); name != "" {
		helper, ok := helpers[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown helper %q\n", name)
			os.Exit(2)
		}
		err := helper()
		fmt.Fprintf(os.Stderr, "returned: %v\n", err)
		os.Exit(3)
	}
	os.Exit(m.Run())
}

// helperCommand returns a command running the named helper in a copy of the
// test binary.
func helperCommand(t *testing.T, name string, env ...string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), helperEnv+"="+name)
	cmd.Env = append(cmd.Env, env...)
	return cmd
}
