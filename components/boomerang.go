package components

import (
	"github.com/automoto/fruitrang/shared/flight"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type BoomerangData struct {
	Flight *flight.Controller
	Owner  *donburi.Entry

	// Contact is the entry the current OnHitPlayer/OnHitFruit call is about.
	// Listeners read it while the call is in progress.
	Contact *donburi.Entry

	OpenTween  *gween.Tween
	OpenAmount float64 // 0 folded, 1 fully open
	Spin       float64 // Sprite rotation in radians

	Bounces int // Flips since the last throw
}

var Boomerang = donburi.NewComponentType[BoomerangData]()
