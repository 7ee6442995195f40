package systems

import (
	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/gamemath"
	"github.com/automoto/fruitrang/systems/factory"
	"github.com/automoto/fruitrang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBowls scoops collectable fruit during a swing. When the swing ends the
// bowl's contents are stored as one filled bowl, and the round ends once
// every bowl is used.
func UpdateBowls(ecs *ecs.ECS) {
	components.Bowl.Each(ecs.World, func(e *donburi.Entry) {
		factory.PlaceBowl(e)

		bowl := components.Bowl.Get(e)
		if !bowl.Swinging {
			return
		}

		obj := components.Object.Get(e)
		for _, f := range touchingEntries(obj.Object, tags.ResolvFruit) {
			CollectFruit(ecs, bowl, f)
		}

		bowl.Remaining = gamemath.CountDown(bowl.Remaining, cfg.Physics.DeltaTime)
		if bowl.Remaining > 0 {
			return
		}

		collected := bowl.PutAway()
		arena := getArena(ecs)
		if arena == nil || arena.Over() {
			return
		}
		arena.Bowls = append(arena.Bowls, collected)
		logEvent("bowl %d filled with %d fruit", len(arena.Bowls), len(collected))
		if len(arena.Bowls) >= cfg.Bowl.Count {
			FinishRound(ecs, components.RoundBowlsFilled)
		}
	})
}

// StartSwing opens the bowl for the configured swing time.
func StartSwing(bowl *components.BowlData) {
	bowl.Swinging = true
	bowl.Remaining = cfg.Bowl.SwingTime
	bowl.Current = nil
}
