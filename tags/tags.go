package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Wall      = donburi.NewTag().SetName("Wall")
	Boomerang = donburi.NewTag().SetName("Boomerang")
	Knife     = donburi.NewTag().SetName("Knife")
	Bowl      = donburi.NewTag().SetName("Bowl")
	Fruit     = donburi.NewTag().SetName("Fruit")
	Teleport  = donburi.NewTag().SetName("Teleport")
)

// Resolv tags for collision queries
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvBoomerang   = "Boomerang"
	ResolvFruit       = "Fruit"
	ResolvKnife       = "Knife"
	ResolvBowl        = "Bowl"
	ResolvOutOfBounds = "outofbounds"
)
