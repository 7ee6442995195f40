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

// CreateKnife spawns the slice hitbox owned by a player. It stays disabled
// until the player slices.
func CreateKnife(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	k := archetypes.Knife.Spawn(ecs)

	size := config.Player.KnifeWidth
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvKnife)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = k
	components.Object.SetValue(k, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Knife.SetValue(k, components.KnifeData{Owner: owner})
	PlaceKnife(k)

	return k
}

// PlaceKnife moves the knife hitbox in front of its owner.
func PlaceKnife(k *donburi.Entry) {
	knife := components.Knife.Get(k)
	if knife.Owner == nil || !knife.Owner.Valid() {
		return
	}
	ownerObj := components.Object.Get(knife.Owner)
	p := components.Player.Get(knife.Owner)
	cx, cz := ownerObj.Center()

	obj := components.Object.Get(k)
	obj.SetCenter(cx+p.FacingX*config.Player.KnifeReach, cz+p.FacingZ*config.Player.KnifeReach)
	obj.Update()
}
