// Package leveldata parses arena maps from TMX files. It has no dependencies
// on ebitengine, donburi or resolv, so headless tools can load arenas too.
package leveldata

import "errors"

// ErrNoArena is returned when a map has no player spawn and cannot host a round.
var ErrNoArena = errors.New("leveldata: map has no PlayerSpawn object")

// ArenaData holds everything the arena systems need from a TMX map. All
// coordinates are in pixels on the ground plane: X is the map X axis and Z is
// the map Y axis.
type ArenaData struct {
	Walls          []Rect
	PlayerSpawn    Point
	RestOffset     float64
	FruitSpawns    []FruitSpawn
	TeleportPoints []Point
	OutOfBounds    []Rect
	Width          int
	Height         int
}

// Rect is an axis-aligned area on the ground plane.
type Rect struct {
	X, Z, W, H float64
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, z float64) bool {
	return x >= r.X && x < r.X+r.W && z >= r.Z && z < r.Z+r.H
}

// Point is a location on the ground plane.
type Point struct {
	X, Z float64
}

// FruitSpawn places one fruit of the named kind.
type FruitSpawn struct {
	X, Z float64
	Kind string
}
