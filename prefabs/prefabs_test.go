package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/flight"
)

func useTempDir(t *testing.T) {
	t.Helper()
	Dir = t.TempDir()
	boomerang, kinds := config.Boomerang, config.Fruit.Kinds
	t.Cleanup(func() {
		Dir = "prefabs"
		pending = nil
		config.Boomerang, config.Fruit.Kinds = boomerang, kinds
	})
}

func TestEmbeddedPrefabsMatchDefaults(t *testing.T) {
	useTempDir(t)

	spec, err := LoadSpec[BoomerangSpec](BoomerangFile)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	got, err := spec.Apply(config.Boomerang)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != config.Boomerang {
		t.Errorf("embedded boomerang = %+v, want %+v", got, config.Boomerang)
	}

	fruits, err := LoadSpec[FruitsSpec](FruitsFile)
	if err != nil {
		t.Fatalf("LoadSpec fruits: %v", err)
	}
	kinds, err := fruits.Kinds()
	if err != nil {
		t.Fatalf("Kinds: %v", err)
	}
	for name, want := range config.Fruit.Kinds {
		k, ok := kinds[name]
		if !ok {
			t.Errorf("fruit %q missing from prefab", name)
			continue
		}
		if k.Points != want.Points || len(k.SplitInto) != len(want.SplitInto) || k.Color != want.Color {
			t.Errorf("fruit %q = %+v, want %+v", name, k, want)
		}
	}
}

func TestDecodeBoomerangKeepsMissingKeys(t *testing.T) {
	base := config.Boomerang
	got, err := DecodeBoomerang([]byte("speed_mode: travel\ntravel_speed: 6\n"), base)
	if err != nil {
		t.Fatalf("DecodeBoomerang: %v", err)
	}
	if got.SpeedMode != flight.SpeedModeTravel || got.TravelSpeed != 6 {
		t.Errorf("mode/speed = %v/%v", got.SpeedMode, got.TravelSpeed)
	}
	if got.InitialSpeed != base.InitialSpeed || got.Size != base.Size {
		t.Errorf("untouched keys changed: %+v", got)
	}
}

func TestDecodeBoomerangRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative speed", "initial_speed: -1\n"},
		{"unknown mode", "speed_mode: sideways\n"},
		{"zero debounce", "flip_debounce: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := config.Boomerang
			got, err := DecodeBoomerang([]byte(tt.yaml), base)
			if !errors.Is(err, flight.ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if got != base {
				t.Error("base was not returned on error")
			}
		})
	}
}

func TestDiskOverrideWins(t *testing.T) {
	useTempDir(t)

	if err := os.WriteFile(filepath.Join(Dir, BoomerangFile), []byte("initial_speed: 5.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if config.Boomerang.InitialSpeed != 5.5 {
		t.Errorf("initial speed = %v, want 5.5", config.Boomerang.InitialSpeed)
	}
}

func TestReloadWaitsForApplyPending(t *testing.T) {
	useTempDir(t)

	path := filepath.Join(Dir, BoomerangFile)
	if err := os.WriteFile(path, []byte("initial_speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	before := config.Boomerang.InitialSpeed
	if err := Reload(path); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if config.Boomerang.InitialSpeed != before {
		t.Fatalf("reload changed the live config to %v", config.Boomerang.InitialSpeed)
	}
	if !HasPending() {
		t.Fatal("reload staged nothing")
	}

	if !ApplyPending() {
		t.Fatal("ApplyPending applied nothing")
	}
	if config.Boomerang.InitialSpeed != 7 {
		t.Errorf("initial speed = %v after apply, want 7", config.Boomerang.InitialSpeed)
	}
	if HasPending() || ApplyPending() {
		t.Error("staged values applied twice")
	}
}

func TestReloadRejectsInvalidPrefab(t *testing.T) {
	useTempDir(t)

	path := filepath.Join(Dir, BoomerangFile)
	if err := os.WriteFile(path, []byte("arming_delay: .inf\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Reload(path); err == nil {
		t.Fatal("infinite arming delay accepted")
	}
	if HasPending() {
		t.Error("invalid prefab was staged")
	}
}

func TestLoadAllKeepsConfigOnInvalidFruit(t *testing.T) {
	useTempDir(t)

	prev := config.Fruit.Kinds
	bad := "fruits:\n  apple:\n    split_into: [pear]\n"
	if err := os.WriteFile(filepath.Join(Dir, FruitsFile), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadAll(); err == nil {
		t.Fatal("expected validation error")
	}
	if len(config.Fruit.Kinds) != len(prev) {
		t.Error("fruit kinds were replaced by an invalid prefab")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]uint8
		wantErr bool
	}{
		{"#ff8000", [4]uint8{255, 128, 0, 255}, false},
		{"10203040", [4]uint8{16, 32, 48, 64}, false},
		{"", [4]uint8{255, 255, 255, 255}, false},
		{"#abc", [4]uint8{}, true},
		{"#zzzzzz", [4]uint8{}, true},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v", tt.in, err)
			continue
		}
		if err == nil && [4]uint8{c.R, c.G, c.B, c.A} != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, c, tt.want)
		}
	}
}

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, BoomerangFile)
	if err := os.WriteFile(target, []byte("size: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != BoomerangFile {
			t.Errorf("event for %q, want %s", name, BoomerangFile)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}
}

func TestWatcherErrDoesNotBlock(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := w.Err(); err != nil {
		t.Fatalf("Err = %v on a fresh watcher", err)
	}
	want := errors.New("queue overflow")
	w.Errors <- want
	if err := w.Err(); !errors.Is(err, want) {
		t.Errorf("Err = %v, want %v", err, want)
	}
	if err := w.Err(); err != nil {
		t.Errorf("Err = %v after draining", err)
	}
}
