package systems

import (
	cfg "github.com/automoto/fruitrang/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawArena renders the pre-rendered tile background.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	arena := getArena(ecs)
	if arena == nil || arena.Background == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	screen.DrawImage(arena.Background, drawOp)
}
