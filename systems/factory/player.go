package factory

import (
	"github.com/automoto/fruitrang/archetypes"
	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/gamemath"
	"github.com/automoto/fruitrang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player centred on (x, z) together with the knife,
// bowl and boomerang it carries.
func CreatePlayer(ecs *ecs.ECS, x, z, restOffset float64) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	left, top := gamemath.CenteredAt(x, z, w, h)
	obj := resolv.NewObject(left, top, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		FacingX:            1,
		RestOffset:         restOffset,
		Stamina:            cfg.Player.MaxStamina,
		BoomerangAvailable: true,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	p := components.Player.Get(player)
	p.Knife = CreateKnife(ecs, player)
	p.Bowl = CreateBowl(ecs, player)

	if _, err := CreateBoomerang(ecs, player); err != nil {
		Destroy(ecs, p.Knife)
		Destroy(ecs, p.Bowl)
		Destroy(ecs, player)
		return nil, err
	}

	return player, nil
}
