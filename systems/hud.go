package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
	hudMargin    = 10
	hudLine      = 14

	crosshairSize = 6
)

// DrawHUD renders the crosshair, stamina, cooldowns and round progress.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	drawCrosshair(ecs, screen)
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	face := fonts.HUD.Get()

	// Stamina bar
	vector.FillRect(screen, hudMargin, hudMargin, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	ratio := float32(p.Stamina / cfg.Player.MaxStamina)
	barColor := color.RGBA{40, 220, 40, 255}
	if p.SprintLockout > 0 {
		barColor = color.RGBA{220, 120, 40, 255}
	}
	vector.FillRect(screen, hudMargin, hudMargin, hudBarWidth*ratio, hudBarHeight, barColor, false)

	y := hudMargin + hudBarHeight + hudLine
	lines := []string{
		"Boomerang " + cooldownLabel(p.BoomerangCooldown, p.BoomerangAvailable),
		"Knife     " + cooldownLabel(p.SwordCooldown, true),
		"Bowl      " + cooldownLabel(p.BowlCooldown, true),
	}
	for _, line := range lines {
		drawHUDText(screen, line, face, hudMargin, y)
		y += hudLine
	}

	arena := getArena(ecs)
	if arena == nil {
		return
	}
	status := fmt.Sprintf("Bowls %d/%d  Score %d", len(arena.Bowls), cfg.Bowl.Count, RoundResult(ecs).Score)
	if cfg.Arena.RoundDuration > 0 {
		left := max(cfg.Arena.RoundDuration-arena.Elapsed, 0)
		status = fmt.Sprintf("%s  %d:%02d", status, int(left)/60, int(left)%60)
	}
	width := screen.Bounds().Dx()
	bounds := text.BoundString(face, status)
	drawHUDText(screen, status, face, width-bounds.Dx()-hudMargin, hudMargin+bounds.Dy())
}

// drawCrosshair marks the aim point when aiming with the mouse.
func drawCrosshair(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	if !input.HasAim {
		return
	}
	x, z := float32(input.AimX), float32(input.AimZ)
	vector.StrokeCircle(screen, x, z, crosshairSize, 1, cfg.White, true)
	vector.StrokeLine(screen, x-crosshairSize-3, z, x-crosshairSize+3, z, 1, cfg.White, true)
	vector.StrokeLine(screen, x+crosshairSize-3, z, x+crosshairSize+3, z, 1, cfg.White, true)
	vector.StrokeLine(screen, x, z-crosshairSize-3, x, z-crosshairSize+3, 1, cfg.White, true)
	vector.StrokeLine(screen, x, z+crosshairSize-3, x, z+crosshairSize+3, 1, cfg.White, true)
}

func cooldownLabel(remaining float64, available bool) string {
	switch {
	case !available:
		return "out"
	case remaining > 0:
		return fmt.Sprintf("%.1fs", remaining)
	}
	return "ready"
}

// drawHUDText draws s on a translucent backing box so it stays readable over tiles.
func drawHUDText(screen *ebiten.Image, s string, face font.Face, x, y int) {
	bounds := text.BoundString(face, s)
	vector.FillRect(screen,
		float32(x+bounds.Min.X-2), float32(y+bounds.Min.Y-2),
		float32(bounds.Dx()+4), float32(bounds.Dy()+4),
		cfg.UI.HUDTextBgColor, false)
	text.Draw(screen, s, face, x, y, cfg.UI.HUDTextColor)
}

// drawCentered draws s horizontally centred with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
