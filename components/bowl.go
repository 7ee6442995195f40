package components

import (
	"github.com/automoto/fruitrang/shared/scoring"
	"github.com/yohamta/donburi"
)

// BowlData is the bowl swung by a player. Fruit scooped during a swing is held
// in Current until the swing ends.
type BowlData struct {
	Owner     *donburi.Entry
	Swinging  bool
	Remaining float64
	Current   []scoring.Fruit
}

// PutAway closes the bowl and returns what it collected.
func (b *BowlData) PutAway() []scoring.Fruit {
	b.Swinging = false
	b.Remaining = 0
	collected := b.Current
	b.Current = nil
	return collected
}

var Bowl = donburi.NewComponentType[BowlData]()
