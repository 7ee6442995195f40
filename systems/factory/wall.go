package factory

import (
	"github.com/automoto/fruitrang/archetypes"
	"github.com/automoto/fruitrang/components"
	"github.com/automoto/fruitrang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, z, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, z, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

// CreateOutOfBounds spawns a zone that teleports whatever enters it.
func CreateOutOfBounds(ecs *ecs.ECS, x, z, w, h float64) *donburi.Entry {
	zone := archetypes.Teleport.Spawn(ecs)

	obj := resolv.NewObject(x, z, w, h, tags.ResolvOutOfBounds)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return zone
}
