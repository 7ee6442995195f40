package systems

import (
	"math"

	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/flight"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Folded and fully open half-angle between the boomerang's arms.
const (
	boomerangFoldedAngle = 0.35
	boomerangOpenAngle   = 1.1
)

// DrawFruit renders every fruit as a disc in its kind's colour.
func DrawFruit(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Fruit.Each(ecs.World, func(e *donburi.Entry) {
		kind, ok := cfg.Fruit.Kinds[components.Fruit.Get(e).Kind]
		if !ok {
			return
		}
		o := components.Object.Get(e)
		cx, cz := o.Center()
		vector.FillCircle(screen, float32(cx), float32(cz), float32(o.W/2), kind.Color, true)
	})
}

// DrawPlayers renders each player with a facing tick, the knife while a slice
// is active and the bowl's reach while it swings.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		o := components.Object.Get(e)

		if p.Bowl != nil && p.Bowl.Valid() && components.Bowl.Get(p.Bowl).Swinging {
			bo := components.Object.Get(p.Bowl)
			cx, cz := bo.Center()
			vector.StrokeCircle(screen, float32(cx), float32(cz), float32(bo.W/2), 2, cfg.LightBlue, true)
		}

		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.DarkBlue, false)

		cx, cz := o.Center()
		reach := o.W
		vector.StrokeLine(screen, float32(cx), float32(cz),
			float32(cx+p.FacingX*reach), float32(cz+p.FacingZ*reach), 2, cfg.White, true)

		if p.Knife != nil && p.Knife.Valid() && components.Knife.Get(p.Knife).Active {
			ko := components.Object.Get(p.Knife)
			vector.FillRect(screen, float32(ko.X), float32(ko.Y), float32(ko.W), float32(ko.H), cfg.LightRed, false)
		}
	})
}

// DrawBoomerangs renders each boomerang as two spinning arms that spread as
// the open tween plays.
func DrawBoomerangs(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Boomerang.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Boomerang.Get(e)
		o := components.Object.Get(e)
		cx, cz := o.Center()

		armColor := cfg.Orange
		if b.Flight.State() == flight.Arming {
			armColor = cfg.Yellow
		}

		half := boomerangFoldedAngle + (boomerangOpenAngle-boomerangFoldedAngle)*b.OpenAmount
		length := o.W
		for _, a := range []float64{b.Spin - half, b.Spin + half} {
			vector.StrokeLine(screen, float32(cx), float32(cz),
				float32(cx+math.Cos(a)*length), float32(cz+math.Sin(a)*length), 3, armColor, true)
		}
	})
}
