package systems

import (
	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause state.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil || arena.Over() {
		return
	}
	if getOrCreateInput(ecs).JustPressed(cfg.ActionPause) {
		arena.Paused = !arena.Paused
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	arena := getArena(ecs)
	if arena == nil || !arena.Paused || !fonts.Loaded(fonts.Bold) {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	drawCentered(screen, "PAUSED", fonts.Bold.Get(), height/2, cfg.White)
	drawCentered(screen, "Esc / P to resume", fonts.Small.Get(), height/2+20, cfg.UI.HUDTextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if isPaused(e) {
			return
		}
		system(e)
	}
}

func isPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Arena.First(ecs.World)
	return ok && components.Arena.Get(entry).Paused
}
