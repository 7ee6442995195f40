package factory

import (
	"errors"
	"math/rand/v2"

	"github.com/automoto/fruitrang/archetypes"
	"github.com/automoto/fruitrang/components"
	"github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds a round from parsed map data: the collision space, the
// walls and out-of-bounds zones, the player with their gear, and the fruit.
// background may be nil when running headless.
func CreateArena(ecs *ecs.ECS, level *leveldata.ArenaData, background *ebiten.Image, seed uint64) (*donburi.Entry, error) {
	if level == nil {
		return nil, errors.New("create arena: no level data")
	}

	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Level:      level,
		Background: background,
		Rand:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})

	cell := config.Physics.CellSize
	CreateSpace(ecs, level.Width, level.Height, cell, cell)

	for _, w := range level.Walls {
		CreateWall(ecs, w.X, w.Z, w.W, w.H)
	}
	for _, r := range level.OutOfBounds {
		CreateOutOfBounds(ecs, r.X, r.Z, r.W, r.H)
	}

	if _, err := CreatePlayer(ecs, level.PlayerSpawn.X, level.PlayerSpawn.Z, level.RestOffset); err != nil {
		return nil, err
	}

	for _, fs := range level.FruitSpawns {
		if _, err := CreateFruit(ecs, fs.Kind, fs.X, fs.Z, 0, 0); err != nil {
			return nil, err
		}
	}

	return arena, nil
}
