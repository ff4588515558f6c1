package main

// frameHandle identifies one scheduled frame callback. The zero handle means
// nothing is scheduled.
type frameHandle uint64

const noFrame frameHandle = 0

// frameScheduler is the "run again before the next repaint" capability. It
// is injected so tests can drive frames deterministically.
type frameScheduler interface {
	scheduleNext(cb func(ts float64)) frameHandle
	cancel(h frameHandle)
}

// tickScheduler queues at most one callback and fires it when the game loop
// pumps it, once per tick.
type tickScheduler struct {
	seq    uint64
	handle frameHandle
	cb     func(ts float64)
}

func (s *tickScheduler) scheduleNext(cb func(ts float64)) frameHandle {
	s.seq++
	s.handle = frameHandle(s.seq)
	s.cb = cb
	return s.handle
}

func (s *tickScheduler) cancel(h frameHandle) {
	if h != noFrame && h == s.handle {
		s.handle = noFrame
		s.cb = nil
	}
}

// pump fires the queued callback, if any, with the current timestamp.
func (s *tickScheduler) pump(ts float64) {
	if s.cb == nil {
		return
	}
	cb := s.cb
	s.cb = nil
	s.handle = noFrame
	cb(ts)
}

// animState tracks the frame loop lifecycle.
type animState int

const (
	animInactive animState = iota
	animRunning
	animPaused
	animStopped
)

// animator owns the continuous frame loop: it keeps exactly one callback
// scheduled while running, cancels it while hidden, and never reschedules
// after stop. All methods run on the game loop.
type animator struct {
	sched   frameScheduler
	frame   func(ts float64)
	state   animState
	pending frameHandle
}

func newAnimator(sched frameScheduler, frame func(ts float64)) *animator {
	return &animator{sched: sched, frame: frame}
}

// start begins the loop. Only valid from the inactive state; later calls are
// no-ops.
func (a *animator) start() {
	if a.state != animInactive {
		return
	}
	a.state = animRunning
	a.schedule()
}

// hide cancels the pending frame and retains state. Idempotent.
func (a *animator) hide() {
	if a.state != animRunning {
		return
	}
	a.cancelPending()
	a.state = animPaused
}

// show resumes the loop if it was paused. Idempotent: a frame is scheduled
// only when none is pending.
func (a *animator) show() {
	if a.state != animPaused {
		return
	}
	a.state = animRunning
	a.schedule()
}

// stop cancels unconditionally; the loop never resumes afterwards.
func (a *animator) stop() {
	a.cancelPending()
	if a.state != animInactive {
		a.state = animStopped
	}
}

func (a *animator) running() bool { return a.state == animRunning }

func (a *animator) schedule() {
	if a.pending != noFrame {
		return
	}
	a.pending = a.sched.scheduleNext(a.tick)
}

func (a *animator) cancelPending() {
	if a.pending == noFrame {
		return
	}
	a.sched.cancel(a.pending)
	a.pending = noFrame
}

func (a *animator) tick(ts float64) {
	a.pending = noFrame
	a.frame(ts)
	if a.state == animRunning {
		a.schedule()
	}
}
