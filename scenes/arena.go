package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/fruitrang/assets"
	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/prefabs"
	"github.com/automoto/fruitrang/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// ArenaScene runs one round in the named arena.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	arenaName    string
	once         sync.Once
	roundOver    bool
}

// NewArenaScene creates a round in the named arena
func NewArenaScene(sc SceneChanger, arenaName string) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, arenaName: arenaName}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if as.roundOver {
		as.finish()
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	if prefabs.ApplyPending() {
		log.Printf("reloaded prefabs applied")
	}
	arena := assets.MustLoadArena(as.arenaName)

	as.ecs = ecs.NewECS(donburi.NewWorld())

	as.ecs.AddSystem(systems.UpdateInput)
	systems.AddGameplaySystems(as.ecs)
	systems.AddRenderers(as.ecs)

	components.RoundOver.Subscribe(as.ecs.World, func(w donburi.World, e components.RoundOverEvent) {
		as.roundOver = true
	})

	if err := systems.SpawnArena(as.ecs, arena.ArenaData, arena.Background); err != nil {
		panic("failed to build arena: " + err.Error())
	}
}

// finish stores the results and moves on to the post-game screen.
func (as *ArenaScene) finish() {
	res := systems.CollectResults(as.ecs)
	best := systems.LoadBestScore()
	if err := systems.SaveResults(&res); err != nil {
		log.Printf("Warning: results not saved: %v", err)
	}
	if res.Result.Score > best {
		best = res.Result.Score
	}
	log.Printf("round finished (%s) with score %d, best %d", res.End, res.Result.Score, best)
	as.sceneChanger.ChangeScene(NewPostGameScene(as.sceneChanger, as.arenaName, res, best))
}

// DefaultArena is the arena a new game starts in.
func DefaultArena() string {
	return cfg.Arena.Name
}
