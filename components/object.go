package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the object on the ground plane.
func (o *ObjectData) Center() (x, z float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the object so that its middle sits at (x, z).
func (o *ObjectData) SetCenter(x, z float64) {
	o.X = x - o.W/2
	o.Y = z - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
