package components

import (
	"github.com/automoto/fruitrang/shared/flight"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BoomerangEvent is published by a boomerang's flight controller listeners.
type BoomerangEvent struct {
	Boomerang *donburi.Entry
	Other     *donburi.Entry // The contacted player or fruit, nil for Opened
}

// BounceEvent is published when a wall contact flipped the boomerang.
type BounceEvent struct {
	Boomerang *donburi.Entry
	Axis      flight.Axis
}

// RoundOverEvent is published once when the round finishes.
type RoundOverEvent struct {
	End   RoundEnd
	Score int
}

var (
	BoomerangOpened = events.NewEventType[BoomerangEvent]()
	PlayerContact   = events.NewEventType[BoomerangEvent]()
	FruitContact    = events.NewEventType[BoomerangEvent]()
	BoomerangBounce = events.NewEventType[BounceEvent]()
	RoundOver       = events.NewEventType[RoundOverEvent]()
)
