package factory

import (
	"fmt"

	"github.com/automoto/fruitrang/archetypes"
	"github.com/automoto/fruitrang/components"
	"github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/flight"
	"github.com/automoto/fruitrang/shared/gamemath"
	"github.com/automoto/fruitrang/tags"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoomerang spawns a resting boomerang for owner. The flight
// controller's outbound events are republished on the world event bus.
func CreateBoomerang(ecs *ecs.ECS, owner *donburi.Entry) (*donburi.Entry, error) {
	ctrl, err := flight.NewController(config.Boomerang.Config)
	if err != nil {
		return nil, fmt.Errorf("create boomerang: %w", err)
	}

	b := archetypes.Boomerang.Spawn(ecs)

	size := config.Boomerang.Size
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvBoomerang)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Boomerang.SetValue(b, components.BoomerangData{
		Flight: ctrl,
		Owner:  owner,
	})

	world := ecs.World
	ctrl.AddOpenedListener(func() {
		components.BoomerangOpened.Publish(world, components.BoomerangEvent{Boomerang: b})
	})
	ctrl.AddPlayerContactListener(func() {
		components.PlayerContact.Publish(world, components.BoomerangEvent{
			Boomerang: b,
			Other:     components.Boomerang.Get(b).Contact,
		})
	})
	ctrl.AddFruitContactListener(func() {
		components.FruitContact.Publish(world, components.BoomerangEvent{
			Boomerang: b,
			Other:     components.Boomerang.Get(b).Contact,
		})
	})

	if owner != nil && owner.HasComponent(components.Player) {
		ctrl.ReturnToRest(RestAnchor(owner))
		components.Player.Get(owner).Boomerang = b
	}
	SyncBoomerangObject(b)

	return b, nil
}

// RestAnchor is where a player's boomerang waits between throws: behind the
// player at the arena's rest offset.
func RestAnchor(player *donburi.Entry) vector.Vector {
	obj := components.Object.Get(player)
	p := components.Player.Get(player)
	cx, cz := obj.Center()
	x, z := gamemath.CalculateSpawnPoint(cx, cz, -p.FacingX, -p.FacingZ, p.RestOffset)
	return gamemath.PlaneToWorld(x, z, 0)
}

// SyncBoomerangObject moves the collision box to the controller's position.
func SyncBoomerangObject(b *donburi.Entry) {
	data := components.Boomerang.Get(b)
	obj := components.Object.Get(b)
	x, z := gamemath.WorldToPlane(data.Flight.Position())
	obj.SetCenter(x, z)
	obj.Update()
}
