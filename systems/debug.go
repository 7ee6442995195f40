package systems

import (
	"image/color"

	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/flight"
	"github.com/automoto/fruitrang/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every collision object when enabled in the debug config.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvBoomerang):
			c = color.RGBA{255, 165, 0, 255}
		case obj.HasTags(tags.ResolvFruit):
			c = cfg.Green
		case obj.HasTags(tags.ResolvKnife):
			c = cfg.Red
		case obj.HasTags(tags.ResolvBowl):
			c = cfg.Purple
		case obj.HasTags(tags.ResolvOutOfBounds):
			c = cfg.Magenta
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	// Sides that cannot flip yet are marked red.
	components.Boomerang.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Boomerang.Get(e)
		o := components.Object.Get(e)
		x0, z0 := float32(o.X), float32(o.Y)
		x1, z1 := float32(o.X+o.W), float32(o.Y+o.H)
		if b.Flight.FlipCooldownRemaining(flight.AxisX) > 0 {
			vector.StrokeLine(screen, x0, z0, x0, z1, 2, cfg.Red, false)
			vector.StrokeLine(screen, x1, z0, x1, z1, 2, cfg.Red, false)
		}
		if b.Flight.FlipCooldownRemaining(flight.AxisZ) > 0 {
			vector.StrokeLine(screen, x0, z0, x1, z0, 2, cfg.Red, false)
			vector.StrokeLine(screen, x0, z1, x1, z1, 2, cfg.Red, false)
		}
	})
}
