package main

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/gamemath"
	"github.com/automoto/fruitrang/shared/leveldata"
	"github.com/automoto/fruitrang/systems"
	"github.com/automoto/fruitrang/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// goldenAngle spreads consecutive scripted throws around the player.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Script is the scripted player behaviour, in ticks between actions.
type Script struct {
	ThrowEvery int
	SliceEvery int
	BowlEvery  int
}

// Summary is what a simulation run reports.
type Summary struct {
	Ticks   int
	Throws  int
	Catches int
	Splits  int
	Bowls   int
	Score   int
	Fruit   int
	End     components.RoundEnd
}

type Sim struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	script Script
	ticks  int
	throws int
}

// NewSim builds a headless arena round from level.
func NewSim(level *leveldata.ArenaData, seed uint64, script Script) (*Sim, error) {
	e := ecs.NewECS(donburi.NewWorld())
	systems.AddGameplaySystems(e)
	if _, err := factory.CreateArena(e, level, nil, seed); err != nil {
		return nil, err
	}
	player, ok := components.Player.First(e.World)
	if !ok {
		return nil, leveldata.ErrNoArena
	}
	return &Sim{ecs: e, player: player, script: script}, nil
}

// Run advances the round for up to ticks frames, stopping early when the
// round ends or ctx is cancelled. A positive tickRate paces the loop in real
// time.
func (s *Sim) Run(ctx context.Context, ticks, tickRate int) Summary {
	var pace <-chan time.Time
	if tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(tickRate))
		defer ticker.Stop()
		pace = ticker.C
	}

	for s.ticks < ticks && !systems.IsRoundOver(s.ecs) {
		select {
		case <-ctx.Done():
			log.Println("Simulation interrupted")
			return s.Summary()
		default:
		}
		if pace != nil {
			<-pace
		}
		s.tick()
	}
	return s.Summary()
}

func (s *Sim) tick() {
	s.ticks++
	if every(s.ticks, s.script.ThrowEvery) {
		cx, cz := components.Object.Get(s.player).Center()
		dx, dz := gamemath.DirectionFromAngle(float64(s.throws) * goldenAngle)
		if systems.ThrowBoomerang(s.ecs, s.player, cx+dx*100, cz+dz*100) {
			s.throws++
		}
	}
	if every(s.ticks, s.script.SliceEvery) {
		systems.Slice(s.player)
	}
	if every(s.ticks, s.script.BowlEvery) {
		systems.SwingBowl(s.player)
	}
	s.ecs.Update()
}

func every(tick, n int) bool {
	return n > 0 && tick%n == 0
}

// Summary reports the round so far.
func (s *Sim) Summary() Summary {
	sum := Summary{Ticks: s.ticks, Score: systems.RoundResult(s.ecs).Score}
	if entry, ok := components.Arena.First(s.ecs.World); ok {
		arena := components.Arena.Get(entry)
		sum.Throws, sum.Catches, sum.Splits = arena.Throws, arena.Catches, arena.Splits
		sum.Bowls = len(arena.Bowls)
		sum.End = arena.End
	}
	components.Fruit.Each(s.ecs.World, func(*donburi.Entry) { sum.Fruit++ })
	return sum
}

// Seconds converts the simulated ticks to game time.
func (sum Summary) Seconds() float64 {
	return float64(sum.Ticks) * cfg.Physics.DeltaTime
}
