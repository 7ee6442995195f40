package factory

import (
	"github.com/automoto/fruitrang/archetypes"
	"github.com/automoto/fruitrang/components"
	"github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBowl spawns the bowl a player swings around themselves.
func CreateBowl(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	b := archetypes.Bowl.Spawn(ecs)

	size := config.Bowl.Radius * 2
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvBowl)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Bowl.SetValue(b, components.BowlData{Owner: owner})
	PlaceBowl(b)

	return b
}

// PlaceBowl centres the bowl's reach on its owner.
func PlaceBowl(b *donburi.Entry) {
	bowl := components.Bowl.Get(b)
	if bowl.Owner == nil || !bowl.Owner.Valid() {
		return
	}
	cx, cz := components.Object.Get(bowl.Owner).Center()
	obj := components.Object.Get(b)
	obj.SetCenter(cx, cz)
	obj.Update()
}
