package components

import (
	"github.com/yohamta/donburi"
)

type FruitData struct {
	Kind string
}

var Fruit = donburi.NewComponentType[FruitData]()
