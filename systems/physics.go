package systems

import (
	"github.com/automoto/fruitrang/components"
	"github.com/automoto/fruitrang/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves launched fruit. Fruit bounces off walls by reflecting
// the blocked axis, with no debounce and no friction.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Players move themselves in UpdatePlayer
		if e.HasComponent(components.Player) {
			return
		}

		physics := components.Physics.Get(e)
		if physics.SpeedX == 0 && physics.SpeedZ == 0 {
			return
		}

		obj := components.Object.Get(e)
		blockedX, blockedZ := moveAndCollide(obj.Object, physics.SpeedX, physics.SpeedZ)
		physics.SpeedX = gamemath.Reflect(physics.SpeedX, blockedX)
		physics.SpeedZ = gamemath.Reflect(physics.SpeedZ, blockedZ)
	})
}

// UpdateObjects refreshes every collision object's cells in the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		components.Object.Get(e).Update()
	}
}
