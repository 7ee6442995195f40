package systems

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/prefabs"
	"github.com/automoto/fruitrang/systems/factory"
)

const renamedFruits = `fruits:
  coconut:
    split_into: [coconut half, coconut half]
    min_split_force: 0.5
    max_split_force: 1.0
    size: 14
  coconut half:
    points: 6
    size: 7
`

func TestPrefabReloadWaitsForNextRound(t *testing.T) {
	boomerang, kinds, dir := cfg.Boomerang, cfg.Fruit.Kinds, prefabs.Dir
	t.Cleanup(func() {
		prefabs.ApplyPending()
		cfg.Boomerang, cfg.Fruit.Kinds, prefabs.Dir = boomerang, kinds, dir
	})

	e, _ := newTestArena(t, walledLevel())
	melon, err := factory.CreateFruit(e, "watermelon", 250, 96, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	prefabs.Dir = t.TempDir()
	path := filepath.Join(prefabs.Dir, prefabs.FruitsFile)
	if err := os.WriteFile(path, []byte(renamedFruits), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := prefabs.Reload(path); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if !SplitFruit(e, melon) {
		t.Fatal("watermelon no longer splits after a mid-round reload")
	}
	if n := countFruit(e, "melon slice"); n != 4 {
		t.Errorf("melon slices = %d, want 4", n)
	}

	if !prefabs.ApplyPending() {
		t.Fatal("reload was not staged")
	}
	if _, ok := cfg.Fruit.Kinds["coconut"]; !ok {
		t.Error("staged fruits not applied")
	}
	if _, ok := cfg.Fruit.Kinds["watermelon"]; ok {
		t.Error("old fruit kinds kept after apply")
	}
}
