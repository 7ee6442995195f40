package components

import (
	"math/rand/v2"

	"github.com/automoto/fruitrang/shared/leveldata"
	"github.com/automoto/fruitrang/shared/scoring"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// RoundEnd says why a round finished.
type RoundEnd int

const (
	RoundRunning RoundEnd = iota
	RoundBowlsFilled
	RoundTimeUp
)

func (r RoundEnd) String() string {
	switch r {
	case RoundBowlsFilled:
		return "bowls filled"
	case RoundTimeUp:
		return "time up"
	}
	return "running"
}

// ArenaData is the singleton round state.
type ArenaData struct {
	Level      *leveldata.ArenaData
	Background *ebiten.Image // nil when running headless
	Rand       *rand.Rand

	Paused  bool
	Elapsed float64
	End     RoundEnd
	Bowls   [][]scoring.Fruit

	// Counters for the HUD and the simulator log.
	Throws, Catches, Splits int
}

// Over reports whether the round has finished.
func (a *ArenaData) Over() bool { return a.End != RoundRunning }

var Arena = donburi.NewComponentType[ArenaData]()
