package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/fonts"
	"github.com/automoto/fruitrang/prefabs"
	"github.com/automoto/fruitrang/scenes"
	"github.com/automoto/fruitrang/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *prefabs.Watcher
	quit    bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(watcher *prefabs.Watcher) *Game {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds:  image.Rectangle{},
		watcher: watcher,
	}
	g.scene = scenes.NewMenuScene(g, scenes.DefaultArena())
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reloadPrefabs()
	g.scene.Update()
	return nil
}

// reloadPrefabs stages edited prefab files. The running round keeps its
// values; the next round picks up the change.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Err(); err != nil {
		log.Printf("Warning: prefab watcher: %v", err)
	}
	for _, path := range g.watcher.Poll() {
		if err := prefabs.Reload(path); err != nil {
			log.Printf("Warning: prefab %s rejected: %v", path, err)
			continue
		}
		log.Printf("prefab %s reloaded, applies next round", path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	arena := flag.String("arena", config.Arena.Name, "arena map to play")
	seed := flag.Uint64("seed", 0, "random seed for fruit splits and teleports, 0 picks one")
	flag.StringVar(&config.Debug.PrefabDir, "prefabs", config.Debug.PrefabDir, "directory checked for prefab overrides")
	flag.BoolVar(&config.Debug.HotReload, "hot-reload", false, "reload prefabs when they change on disk")
	flag.BoolVar(&config.Debug.LogEvents, "log-events", false, "log boomerang events")
	flag.BoolVar(&config.Debug.DrawHitboxes, "hitboxes", false, "outline collision boxes")
	flag.Parse()

	config.Arena.Name = *arena
	config.Arena.Seed = *seed
	prefabs.Dir = config.Debug.PrefabDir

	if err := prefabs.LoadAll(); err != nil {
		log.Fatalf("Failed to load prefabs: %v", err)
	}

	var watcher *prefabs.Watcher
	if config.Debug.HotReload {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("Warning: Could not watch prefabs: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Fruitrang")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
