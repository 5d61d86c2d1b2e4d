// Package display is the boundary to whatever presents the frame: it
// supplies quit events and the post-render idle loop. The rendering
// core never touches it.
package display

import (
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Event is a signal from the surrounding environment.
type Event int

// Quit asks the program to leave the idle loop.
const Quit Event = iota

// Source supplies events by polling. Poll never blocks; the second
// return is false when no event is pending.
type Source interface {
	Poll() (Event, bool)
}

// SignalSource translates os.Interrupt and SIGTERM into Quit events.
type SignalSource struct {
	ch chan os.Signal
}

// NewSignalSource starts listening for interrupt signals.
func NewSignalSource() *SignalSource {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	return &SignalSource{ch: ch}
}

func (s *SignalSource) Poll() (Event, bool) {
	select {
	case <-s.ch:
		return Quit, true
	default:
		return 0, false
	}
}

// Wait polls src at roughly 60 Hz until a Quit event arrives. The
// frame is already complete when this runs; no work is in flight to
// cancel.
func Wait(src Source) {
	for {
		if ev, ok := src.Poll(); ok && ev == Quit {
			return
		}
		time.Sleep(time.Second / 60)
	}
}
