package factory

import (
	"github.com/automoto/fruitrang/archetypes"
	"github.com/automoto/fruitrang/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's collision space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// Destroy removes an entry and its collision object.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e).Object; obj != nil {
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(obj)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
