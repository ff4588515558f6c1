package main

import "testing"

// manualScheduler records scheduled callbacks so tests can fire frames
// deterministically and observe how many are pending.
type manualScheduler struct {
	seq     uint64
	pending map[frameHandle]func(ts float64)
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: map[frameHandle]func(ts float64){}}
}

func (s *manualScheduler) scheduleNext(cb func(ts float64)) frameHandle {
	s.seq++
	h := frameHandle(s.seq)
	s.pending[h] = cb
	return h
}

func (s *manualScheduler) cancel(h frameHandle) {
	delete(s.pending, h)
}

// fire invokes every currently pending callback once.
func (s *manualScheduler) fire(ts float64) {
	cbs := s.pending
	s.pending = map[frameHandle]func(ts float64){}
	for _, cb := range cbs {
		cb(ts)
	}
}

func (s *manualScheduler) count() int { return len(s.pending) }

func TestAnimatorRunsContinuously(t *testing.T) {
	sched := newManualScheduler()
	frames := 0
	a := newAnimator(sched, func(ts float64) { frames++ })

	a.start()
	if sched.count() != 1 {
		t.Fatalf("after start: %d pending, want 1", sched.count())
	}
	for i := 0; i < 5; i++ {
		sched.fire(float64(i) * 16.7)
	}
	if frames != 5 {
		t.Errorf("frames = %d, want 5", frames)
	}
	if sched.count() != 1 {
		t.Errorf("after frames: %d pending, want 1 (loop reschedules)", sched.count())
	}
}

func TestAnimatorStartOnlyFromInactive(t *testing.T) {
	sched := newManualScheduler()
	a := newAnimator(sched, func(ts float64) {})
	a.start()
	a.start()
	if sched.count() != 1 {
		t.Errorf("double start: %d pending, want 1", sched.count())
	}
	a.stop()
	a.start()
	if sched.count() != 0 {
		t.Errorf("start after stop scheduled a frame")
	}
}

func TestAnimatorVisibilityToggling(t *testing.T) {
	sched := newManualScheduler()
	a := newAnimator(sched, func(ts float64) {})
	a.start()

	// hidden -> visible -> hidden, repeatedly; never more than one pending.
	for i := 0; i < 4; i++ {
		a.hide()
		if sched.count() != 0 {
			t.Fatalf("cycle %d: %d pending after hide, want 0", i, sched.count())
		}
		a.hide() // idempotent
		if sched.count() != 0 {
			t.Fatalf("cycle %d: repeated hide scheduled a frame", i)
		}
		a.show()
		if sched.count() != 1 {
			t.Fatalf("cycle %d: %d pending after show, want 1", i, sched.count())
		}
		a.show() // idempotent
		if sched.count() != 1 {
			t.Fatalf("cycle %d: repeated show double-scheduled (%d pending)", i, sched.count())
		}
		sched.fire(float64(i))
		if sched.count() > 1 {
			t.Fatalf("cycle %d: %d pending after frame", i, sched.count())
		}
	}
}

func TestAnimatorHideBeforeStartIsNoop(t *testing.T) {
	sched := newManualScheduler()
	a := newAnimator(sched, func(ts float64) {})
	a.hide()
	a.show()
	if sched.count() != 0 {
		t.Errorf("hide/show before start scheduled a frame")
	}
	if a.running() {
		t.Errorf("animator running before start")
	}
}

func TestAnimatorStop(t *testing.T) {
	sched := newManualScheduler()
	frames := 0
	a := newAnimator(sched, func(ts float64) { frames++ })
	a.start()
	a.stop()
	if sched.count() != 0 {
		t.Fatalf("after stop: %d pending, want 0", sched.count())
	}
	a.stop() // idempotent
	a.show() // paused-only; must not resurrect a stopped loop
	if sched.count() != 0 {
		t.Errorf("stopped animator rescheduled a frame")
	}
	sched.fire(0)
	if frames != 0 {
		t.Errorf("frame ran after stop")
	}
}

func TestAnimatorStopDuringPause(t *testing.T) {
	sched := newManualScheduler()
	a := newAnimator(sched, func(ts float64) {})
	a.start()
	a.hide()
	a.stop()
	a.show()
	if sched.count() != 0 {
		t.Errorf("show after stop-from-pause scheduled a frame")
	}
}

func TestTickSchedulerCancelStaleHandle(t *testing.T) {
	s := &tickScheduler{}
	h1 := s.scheduleNext(func(ts float64) {})
	fired := false
	s.scheduleNext(func(ts float64) { fired = true })
	s.cancel(h1) // stale: must not cancel the newer callback
	s.pump(0)
	if !fired {
		t.Errorf("cancelling a stale handle dropped the current callback")
	}
}
