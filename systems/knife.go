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

// UpdateKnives keeps each knife in front of its owner and splits whatever an
// active slice touches.
func UpdateKnives(ecs *ecs.ECS) {
	components.Knife.Each(ecs.World, func(e *donburi.Entry) {
		factory.PlaceKnife(e)

		knife := components.Knife.Get(e)
		if !knife.Active {
			return
		}

		obj := components.Object.Get(e)
		for _, f := range touchingEntries(obj.Object, tags.ResolvFruit) {
			SplitFruit(ecs, f)
		}

		knife.Remaining = gamemath.CountDown(knife.Remaining, cfg.Physics.DeltaTime)
		if knife.Remaining == 0 {
			knife.Active = false
		}
	})
}

// StartSlice enables the knife for the configured active time.
func StartSlice(knife *components.KnifeData) {
	knife.Active = true
	knife.Remaining = cfg.Player.SliceActiveTime
}
