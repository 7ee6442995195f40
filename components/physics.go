package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is a kinematic mover on the ground plane. Speeds are pixels per tick.
type PhysicsData struct {
	SpeedX float64
	SpeedZ float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
