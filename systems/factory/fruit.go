package factory

import (
	"fmt"

	"github.com/automoto/fruitrang/archetypes"
	"github.com/automoto/fruitrang/components"
	"github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/gamemath"
	"github.com/automoto/fruitrang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFruit spawns a fruit of the given kind centred on (x, z), moving at
// (speedX, speedZ) pixels per tick.
func CreateFruit(ecs *ecs.ECS, kind string, x, z, speedX, speedZ float64) (*donburi.Entry, error) {
	k, ok := config.Fruit.Kinds[kind]
	if !ok {
		return nil, fmt.Errorf("create fruit: unknown kind %q", kind)
	}

	f := archetypes.Fruit.Spawn(ecs)

	left, top := gamemath.CenteredAt(x, z, k.Size, k.Size)
	obj := resolv.NewObject(left, top, k.Size, k.Size, tags.ResolvFruit)
	obj.SetShape(resolv.NewRectangle(0, 0, k.Size, k.Size))
	obj.Data = f
	components.Object.SetValue(f, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Fruit.SetValue(f, components.FruitData{Kind: kind})
	components.Physics.SetValue(f, components.PhysicsData{SpeedX: speedX, SpeedZ: speedZ})

	return f, nil
}
