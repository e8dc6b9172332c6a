//go:build !windows

package crossexec

import (
	"os"
	"os/signal"
)

// interruptGuard keeps os.Interrupt away from the parent. With forwarding
// on, it hands each interrupt to the child; one that arrives before the
// child exists is held until attach.
type interruptGuard struct {
	sigs   chan os.Signal
	child  chan *os.Process
	done   chan struct{}
	exited chan struct{}
}

// suppressInterrupts uses a Go handler rather than SIG_IGN. An ignored
// disposition would be inherited by the child; a caught one is reset to the
// default on exec.
func suppressInterrupts(forward bool) (*interruptGuard, error) {
	g := &interruptGuard{
		sigs:   make(chan os.Signal, 1),
		child:  make(chan *os.Process, 1),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	signal.Notify(g.sigs, os.Interrupt)
	go g.run(forward)
	return g, nil
}

func (g *interruptGuard) run(forward bool) {
	defer close(g.exited)
	var child *os.Process
	var pending os.Signal
	for {
		select {
		case <-g.done:
			return
		case p := <-g.child:
			child = p
			if pending != nil {
				_ = child.Signal(pending)
				pending = nil
			}
		case sig := <-g.sigs:
			switch {
			case !forward:
				// swallowed
			case child == nil:
				pending = sig
			default:
				_ = child.Signal(sig)
			}
		}
	}
}

func (g *interruptGuard) attach(p *os.Process) {
	g.child <- p
}

// stop restores the default interrupt disposition.
func (g *interruptGuard) stop() {
	signal.Stop(g.sigs)
	close(g.done)
}
