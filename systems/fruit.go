package systems

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/gamemath"
	"github.com/automoto/fruitrang/shared/scoring"
	"github.com/automoto/fruitrang/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SplitFruit breaks a splittable fruit into its children, each launched in a
// random direction. It reports whether the fruit split.
func SplitFruit(ecs *ecs.ECS, f *donburi.Entry) bool {
	if !f.Valid() || !f.HasComponent(components.Fruit) {
		return false
	}
	kind, ok := cfg.Fruit.Kinds[components.Fruit.Get(f).Kind]
	if !ok || !kind.Splittable() {
		return false
	}

	cx, cz := components.Object.Get(f).Center()
	arena := getArena(ecs)
	factory.Destroy(ecs, f)

	for _, child := range kind.SplitInto {
		angle, t := splitRoll(arena)
		vx, vz := gamemath.CalculateSplitVelocity(angle, t, kind.MinSplitForce, kind.MaxSplitForce)
		if _, err := factory.CreateFruit(ecs, child, cx, cz, vx, vz); err != nil {
			log.Printf("split %s: %v", kind.Name, err)
		}
	}

	if arena != nil {
		arena.Splits++
	}
	return true
}

// splitRoll draws a launch angle and a force fraction from the round's
// random source.
func splitRoll(arena *components.ArenaData) (angle, t float64) {
	if arena != nil && arena.Rand != nil {
		return arena.Rand.Float64() * 2 * math.Pi, arena.Rand.Float64()
	}
	return rand.Float64() * 2 * math.Pi, rand.Float64()
}

// CollectFruit moves a collectable fruit into bowl. It reports whether the
// fruit was collected.
func CollectFruit(ecs *ecs.ECS, bowl *components.BowlData, f *donburi.Entry) bool {
	if !f.Valid() || !f.HasComponent(components.Fruit) {
		return false
	}
	kind, ok := cfg.Fruit.Kinds[components.Fruit.Get(f).Kind]
	if !ok || !kind.Collectable() {
		return false
	}
	bowl.Current = append(bowl.Current, scoring.Fruit{Name: kind.Name, Points: kind.Points})
	factory.Destroy(ecs, f)
	return true
}
