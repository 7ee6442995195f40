package main

import (
	"context"
	"testing"

	"github.com/automoto/fruitrang/assets"
	"github.com/automoto/fruitrang/components"
)

func newTestSim(t *testing.T, script Script) *Sim {
	t.Helper()
	level, err := assets.LoadArenaData("arena")
	if err != nil {
		t.Fatalf("LoadArenaData: %v", err)
	}
	sim, err := NewSim(level, 7, script)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	return sim
}

func TestSimThrowsOnSchedule(t *testing.T) {
	sim := newTestSim(t, Script{ThrowEvery: 30})
	sum := sim.Run(context.Background(), 600, 0)

	if sum.Ticks != 600 {
		t.Errorf("ticks = %d, want 600", sum.Ticks)
	}
	if sum.Throws < 1 {
		t.Errorf("throws = %d, want at least one", sum.Throws)
	}
	if sum.End != components.RoundRunning {
		t.Errorf("round ended early: %s", sum.End)
	}
	if sum.Seconds() < 9.99 || sum.Seconds() > 10.01 {
		t.Errorf("seconds = %v, want 10", sum.Seconds())
	}
}

func TestSimStopsWhenCancelled(t *testing.T) {
	sim := newTestSim(t, Script{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if sum := sim.Run(ctx, 100, 0); sum.Ticks != 0 {
		t.Errorf("ticks = %d after cancellation", sum.Ticks)
	}
}

func TestSimEndsWhenBowlsAreFilled(t *testing.T) {
	sim := newTestSim(t, Script{BowlEvery: 1})
	// The bowl cooldown gates swings, so clear it before every frame.
	p := components.Player.Get(sim.player)
	for range 1000 {
		p.BowlCooldown = 0
		sim.tick()
		if sim.Summary().End != components.RoundRunning {
			break
		}
	}
	sum := sim.Summary()
	if sum.End != components.RoundBowlsFilled {
		t.Fatalf("end = %s, want bowls filled", sum.End)
	}
	if sum.Bowls != 5 {
		t.Errorf("bowls = %d", sum.Bowls)
	}
}

func TestEvery(t *testing.T) {
	if every(10, 0) {
		t.Error("zero interval fired")
	}
	if !every(10, 5) || every(11, 5) {
		t.Error("wrong schedule")
	}
}
