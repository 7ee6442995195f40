package config

import (
	"errors"
	"testing"

	"github.com/automoto/fruitrang/shared/flight"
)

// withDefaults restores the globals touched by a test.
func withDefaults(t *testing.T) {
	t.Helper()
	boomerang, player, bowl, arena := Boomerang, Player, Bowl, Arena
	kinds := make(map[string]FruitKind, len(Fruit.Kinds))
	for k, v := range Fruit.Kinds {
		kinds[k] = v
	}
	t.Cleanup(func() {
		Boomerang, Player, Bowl, Arena = boomerang, player, bowl, arena
		Fruit.Kinds = kinds
	})
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func()
		flight bool
	}{
		{"zero initial speed", func() { Boomerang.InitialSpeed = 0 }, true},
		{"negative debounce", func() { Boomerang.FlipDebounce = -1 }, true},
		{"no bowls", func() { Bowl.Count = 0 }, false},
		{"negative round", func() { Arena.RoundDuration = -5 }, false},
		{"unknown child", func() {
			k := Fruit.Kinds["apple"]
			k.SplitInto = []string{"pear half"}
			Fruit.Kinds["apple"] = k
		}, false},
		{"both split and collect", func() {
			k := Fruit.Kinds["apple"]
			k.Points = 3
			Fruit.Kinds["apple"] = k
		}, false},
		{"inverted force", func() {
			k := Fruit.Kinds["watermelon"]
			k.MinSplitForce = 3
			Fruit.Kinds["watermelon"] = k
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withDefaults(t)
			tt.mutate()

			err := Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, flight.ErrInvalidConfig); got != tt.flight {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (%v)", got, tt.flight, err)
			}
		})
	}
}

func TestEveryActionIsBound(t *testing.T) {
	for a := ActionMoveLeft; a < ActionCount; a++ {
		b, ok := Input.Bindings[a]
		if !ok {
			t.Errorf("action %d has no binding", a)
			continue
		}
		if len(b.Keys) == 0 && len(b.MouseButtons) == 0 {
			t.Errorf("action %d has no keyboard or mouse binding", a)
		}
	}
}
