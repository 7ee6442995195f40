package flight

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timer is a one-shot callback on the frame clock. The underlying tween
// counts down from the duration to zero.
type Timer struct {
	tween     *gween.Tween
	remaining float32
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel stops the timer. A cancelled timer never fires.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the timer is still waiting to fire.
func (t *Timer) Active() bool {
	return t != nil && !t.cancelled && !t.fired
}

// Remaining returns the seconds left before the timer fires, or 0 once it is
// no longer active.
func (t *Timer) Remaining() float64 {
	if !t.Active() {
		return 0
	}
	return float64(t.remaining)
}

// Scheduler runs timers against a single-threaded frame clock. It is not
// safe for concurrent use; the owner advances it once per physics tick.
type Scheduler struct {
	timers []*Timer
}

// After schedules fn to run once d seconds of frame time have elapsed.
func (s *Scheduler) After(d float64, fn func()) *Timer {
	t := &Timer{
		tween:     gween.New(float32(d), 0, float32(d), ease.Linear),
		remaining: float32(d),
		fn:        fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt and fires expired timers in the
// order they were scheduled. Timers scheduled by a callback start counting
// on the next call.
func (s *Scheduler) Advance(dt float64) {
	if len(s.timers) == 0 {
		return
	}

	due := make([]*Timer, len(s.timers))
	copy(due, s.timers)

	for _, t := range due {
		if !t.Active() {
			continue
		}
		current, finished := t.tween.Update(float32(dt))
		t.remaining = current
		if !finished {
			continue
		}
		t.fired = true
		t.remaining = 0
		if t.fn != nil {
			t.fn()
		}
	}

	live := s.timers[:0]
	for _, t := range s.timers {
		if t.Active() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// CancelAll cancels every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.Cancel()
	}
	clear(s.timers)
	s.timers = s.timers[:0]
}

// Pending returns the number of active timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Active() {
			n++
		}
	}
	return n
}
