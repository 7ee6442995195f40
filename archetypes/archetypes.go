package archetypes

import (
	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Boomerang = newArchetype(
		tags.Boomerang,
		components.Boomerang,
		components.Object,
	)
	Knife = newArchetype(
		tags.Knife,
		components.Knife,
		components.Object,
	)
	Bowl = newArchetype(
		tags.Bowl,
		components.Bowl,
		components.Object,
	)
	Fruit = newArchetype(
		tags.Fruit,
		components.Fruit,
		components.Object,
		components.Physics,
	)
	Teleport = newArchetype(
		tags.Teleport,
		components.Object,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
