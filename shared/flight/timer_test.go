package flight

import "testing"

func TestSchedulerFiresInOrder(t *testing.T) {
	var s Scheduler
	var fired []string

	s.After(0.3, func() { fired = append(fired, "late") })
	s.After(0.1, func() { fired = append(fired, "a") })
	s.After(0.1, func() { fired = append(fired, "b") })

	s.Advance(0.05)
	if len(fired) != 0 {
		t.Fatalf("fired early: %v", fired)
	}

	s.Advance(0.1)
	if len(fired) != 2 || fired[0] != "a" || fired[1] != "b" {
		t.Fatalf("fired = %v, want [a b]", fired)
	}
	if s.Pending() != 1 {
		t.Errorf("pending = %d, want 1", s.Pending())
	}

	s.Advance(1)
	if len(fired) != 3 || fired[2] != "late" {
		t.Fatalf("fired = %v", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestCancelledTimerNeverFires(t *testing.T) {
	var s Scheduler
	fired := false
	tm := s.After(0.1, func() { fired = true })

	tm.Cancel()
	s.Advance(1)
	if fired {
		t.Fatal("cancelled timer fired")
	}
	if tm.Active() || tm.Remaining() != 0 {
		t.Errorf("cancelled timer active=%v remaining=%v", tm.Active(), tm.Remaining())
	}
}

func TestCallbackCanCancelLaterTimers(t *testing.T) {
	var s Scheduler
	secondFired := false

	s.After(0.1, func() { s.CancelAll() })
	s.After(0.1, func() { secondFired = true })

	s.Advance(0.2)
	if secondFired {
		t.Fatal("timer cancelled by an earlier callback still fired")
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d", s.Pending())
	}
}

func TestTimersScheduledByCallbackWaitForNextAdvance(t *testing.T) {
	var s Scheduler
	chained := false

	s.After(0.1, func() {
		s.After(0.1, func() { chained = true })
	})

	s.Advance(0.5)
	if chained {
		t.Fatal("chained timer fired in the same advance")
	}
	s.Advance(0.15)
	if !chained {
		t.Fatal("chained timer did not fire")
	}
}

func TestRemainingCountsDown(t *testing.T) {
	var s Scheduler
	tm := s.After(1.0, nil)

	s.Advance(0.25)
	if got := tm.Remaining(); got < 0.74 || got > 0.76 {
		t.Errorf("remaining = %v, want about 0.75", got)
	}

	var nilTimer *Timer
	if nilTimer.Remaining() != 0 || nilTimer.Active() {
		t.Error("nil timer should be inactive")
	}
	nilTimer.Cancel()
}
