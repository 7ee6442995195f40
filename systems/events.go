package systems

import (
	"log"

	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/flight"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SubscribeEvents wires the gameplay reactions to the boomerang events.
// Events are queued while systems run and handled by ProcessEvents at the
// end of the frame, so every handler re-checks that its entries still exist.
func SubscribeEvents(ecs *ecs.ECS) {
	components.BoomerangOpened.Subscribe(ecs.World, func(w donburi.World, e components.BoomerangEvent) {
		if !e.Boomerang.Valid() {
			return
		}
		b := components.Boomerang.Get(e.Boomerang)
		if !b.Flight.IsOpened() {
			return
		}
		b.OpenTween = gween.New(0, 1, float32(cfg.Boomerang.OpenTweenDuration), ease.OutBack)
		logEvent("boomerang opened at speed %.2f", b.Flight.Speed())
	})

	components.BoomerangBounce.Subscribe(ecs.World, func(w donburi.World, e components.BounceEvent) {
		if !e.Boomerang.Valid() {
			return
		}
		logEvent("boomerang bounced on %s (%d)", e.Axis, components.Boomerang.Get(e.Boomerang).Bounces)
	})

	components.PlayerContact.Subscribe(ecs.World, func(w donburi.World, e components.BoomerangEvent) {
		if !e.Boomerang.Valid() || e.Other == nil || !e.Other.Valid() {
			return
		}
		b := components.Boomerang.Get(e.Boomerang)
		if e.Other != b.Owner || b.Flight.State() == flight.Resting {
			return
		}
		PutBoomerangAway(b.Owner)
		if arena := getArena(ecs); arena != nil {
			arena.Catches++
		}
		logEvent("boomerang caught")
	})

	components.FruitContact.Subscribe(ecs.World, func(w donburi.World, e components.BoomerangEvent) {
		if e.Other == nil || !e.Other.Valid() {
			return
		}
		if SplitFruit(ecs, e.Other) {
			logEvent("boomerang split a fruit")
		}
	})
}

// ProcessEvents delivers every event queued during the frame.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

func logEvent(format string, args ...any) {
	if cfg.Debug.LogEvents {
		log.Printf(format, args...)
	}
}
