package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Facing is the last non-zero aim on the ground plane.
	FacingX, FacingZ float64

	// RestOffset is how far behind the player the boomerang rests.
	RestOffset float64

	Stamina       float64
	Sprinting     bool
	SprintLockout float64 // Seconds left before sprinting is allowed again

	// Cooldowns in seconds, 0 means ready.
	BoomerangCooldown float64
	SwordCooldown     float64
	BowlCooldown      float64

	BoomerangAvailable bool
	Boomerang          *donburi.Entry
	Knife              *donburi.Entry
	Bowl               *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()
