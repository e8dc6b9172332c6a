//go:build !windows

package crossexec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterruptGuard_Stop(t *testing.T) {
	g, err := suppressInterrupts(true)
	assert.NoError(t, err)

	g.stop()

	select {
	case <-g.exited:
	case <-time.After(5 * time.Second):
		t.Fatal("guard goroutine still running after stop")
	}
}
