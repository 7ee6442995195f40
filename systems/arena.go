package systems

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/leveldata"
	"github.com/automoto/fruitrang/shared/scoring"
	"github.com/automoto/fruitrang/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// AddGameplaySystems registers the arena systems in update order. Input and
// renderers are added separately so a headless run can skip them.
func AddGameplaySystems(ecs *ecs.ECS) {
	SubscribeEvents(ecs)

	// Systems that always run
	ecs.AddSystem(UpdatePause)

	// Game systems wrapped with pause and round over checks
	ecs.AddSystem(WithGameplayChecks(UpdatePlayer))
	ecs.AddSystem(WithGameplayChecks(UpdateBoomerang))
	ecs.AddSystem(WithGameplayChecks(UpdatePhysics))
	ecs.AddSystem(WithGameplayChecks(UpdateKnives))
	ecs.AddSystem(WithGameplayChecks(UpdateBowls))
	ecs.AddSystem(WithGameplayChecks(UpdateTeleporters))
	ecs.AddSystem(WithGameplayChecks(UpdateObjects))
	ecs.AddSystem(WithGameplayChecks(UpdateArena))

	// Deliver the frame's events last
	ecs.AddSystem(ProcessEvents)
}

// AddRenderers registers the arena renderers.
func AddRenderers(ecs *ecs.ECS) {
	ecs.AddRenderer(cfg.Default, DrawArena)
	ecs.AddRenderer(cfg.Default, DrawFruit)
	ecs.AddRenderer(cfg.Default, DrawPlayers)
	ecs.AddRenderer(cfg.Default, DrawBoomerangs)
	ecs.AddRenderer(cfg.Default, DrawHitboxes)
	ecs.AddRenderer(cfg.HUD, DrawHUD)
	ecs.AddRenderer(cfg.HUD, DrawPause)
}

// SpawnArena builds a round from level. A zero configured seed picks a random
// one. background may be nil.
func SpawnArena(ecs *ecs.ECS, level *leveldata.ArenaData, background *ebiten.Image) error {
	seed := cfg.Arena.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	if _, err := factory.CreateArena(ecs, level, background, seed); err != nil {
		return fmt.Errorf("spawn arena: %w", err)
	}
	log.Printf("arena ready: %d walls, %d fruit, seed %d", len(level.Walls), len(level.FruitSpawns), seed)
	return nil
}

// UpdateArena advances the round clock and ends the round when time runs out.
func UpdateArena(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil || arena.Over() {
		return
	}
	arena.Elapsed += cfg.Physics.DeltaTime
	if cfg.Arena.RoundDuration > 0 && arena.Elapsed >= cfg.Arena.RoundDuration {
		FinishRound(ecs, components.RoundTimeUp)
	}
}

// FinishRound ends the round once and publishes the rated result.
func FinishRound(ecs *ecs.ECS, end components.RoundEnd) {
	arena := getArena(ecs)
	if arena == nil || arena.Over() {
		return
	}
	arena.End = end
	result := RoundResult(ecs)
	components.RoundOver.Publish(ecs.World, components.RoundOverEvent{End: end, Score: result.Score})
	log.Printf("round over (%s): %d bowls, score %d", end, len(arena.Bowls), result.Score)
}

// RoundResult rates the bowls filled so far.
func RoundResult(ecs *ecs.ECS) scoring.Result {
	arena := getArena(ecs)
	if arena == nil {
		return scoring.Result{}
	}
	return scoring.Rate(arena.Bowls, scoring.Rules{
		MassBonus:  cfg.Bowl.MassBonus,
		MassPoints: cfg.Bowl.MassPoints,
	})
}

// IsRoundOver reports whether the arena round has finished.
func IsRoundOver(ecs *ecs.ECS) bool {
	arena := getArena(ecs)
	return arena != nil && arena.Over()
}

// WithRoundCheck skips system once the round is over.
func WithRoundCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if IsRoundOver(ecs) {
			return
		}
		system(ecs)
	}
}

// WithGameplayChecks wraps a system with pause and round over checks.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithRoundCheck(system))
}

// getArena returns the singleton arena state, or nil before one is built.
func getArena(ecs *ecs.ECS) *components.ArenaData {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Arena.Get(entry)
}
