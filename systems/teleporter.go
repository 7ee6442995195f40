package systems

import (
	"github.com/automoto/fruitrang/components"
	"github.com/automoto/fruitrang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTeleporters moves any player or fruit that wandered into an
// out-of-bounds zone to a random teleport point.
func UpdateTeleporters(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil || arena.Level == nil || len(arena.Level.TeleportPoints) == 0 {
		return
	}

	var strays []*donburi.Entry
	tags.Teleport.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		strays = append(strays, touchingEntries(obj.Object, tags.ResolvPlayer)...)
		strays = append(strays, touchingEntries(obj.Object, tags.ResolvFruit)...)
	})

	for _, e := range strays {
		points := arena.Level.TeleportPoints
		p := points[arena.Rand.IntN(len(points))]
		obj := components.Object.Get(e)
		obj.SetCenter(p.X, p.Z)
		obj.Update()
		logEvent("teleported entity to (%.0f, %.0f)", p.X, p.Z)
	}
}
