package components

import (
	cfg "github.com/automoto/fruitrang/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Aim target on the ground plane, usually the mouse cursor.
	AimX, AimZ float64
	HasAim     bool
}

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// Press sets the current state of a.
func (in *InputData) Press(a cfg.ActionID, down bool) {
	in.Current[a] = down
}

// NextFrame copies the current state into the previous frame.
func (in *InputData) NextFrame() {
	in.Previous = in.Current
}

var Input = donburi.NewComponentType[InputData]()
