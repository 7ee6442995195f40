package components

import (
	"github.com/yohamta/donburi"
)

// KnifeData is the slice hitbox carried by a player.
type KnifeData struct {
	Owner     *donburi.Entry
	Active    bool
	Remaining float64 // Seconds the hitbox stays enabled
}

var Knife = donburi.NewComponentType[KnifeData]()
