package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/flight"
	"gopkg.in/yaml.v3"
)

const (
	BoomerangFile = "boomerang.yaml"
	FruitsFile    = "fruits.yaml"
)

// LoadSpec decodes the named prefab into a fresh T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type BoomerangSpec struct {
	InitialSpeed            float64 `yaml:"initial_speed"`
	SpeedMode               string  `yaml:"speed_mode"`
	AfterFirstHitSpeedScale float64 `yaml:"after_first_hit_speed_scale"`
	TravelSpeed             float64 `yaml:"travel_speed"`
	ArmingDelay             float64 `yaml:"arming_delay"`
	FlipDebounce            float64 `yaml:"flip_debounce"`

	Size              float64 `yaml:"size"`
	SpawnOffset       float64 `yaml:"spawn_offset"`
	OpenTweenDuration float64 `yaml:"open_tween_duration"`
	SpinSpeed         float64 `yaml:"spin_speed"`
}

// BoomerangSpecFrom captures cfg so that keys missing from a YAML file keep
// their current values.
func BoomerangSpecFrom(cfg config.BoomerangConfig) BoomerangSpec {
	return BoomerangSpec{
		InitialSpeed:            cfg.InitialSpeed,
		SpeedMode:               cfg.SpeedMode.String(),
		AfterFirstHitSpeedScale: cfg.AfterFirstHitSpeedScale,
		TravelSpeed:             cfg.TravelSpeed,
		ArmingDelay:             cfg.ArmingDelay,
		FlipDebounce:            cfg.FlipDebounce,
		Size:                    cfg.Size,
		SpawnOffset:             cfg.SpawnOffset,
		OpenTweenDuration:       cfg.OpenTweenDuration,
		SpinSpeed:               cfg.SpinSpeed,
	}
}

// Apply returns base with the spec's values, validating the flight constants.
func (s BoomerangSpec) Apply(base config.BoomerangConfig) (config.BoomerangConfig, error) {
	mode, err := flight.ParseSpeedMode(s.SpeedMode)
	if err != nil {
		return base, err
	}
	out := base
	out.InitialSpeed = s.InitialSpeed
	out.SpeedMode = mode
	out.AfterFirstHitSpeedScale = s.AfterFirstHitSpeedScale
	out.TravelSpeed = s.TravelSpeed
	out.ArmingDelay = s.ArmingDelay
	out.FlipDebounce = s.FlipDebounce
	out.Size = s.Size
	out.SpawnOffset = s.SpawnOffset
	out.OpenTweenDuration = s.OpenTweenDuration
	out.SpinSpeed = s.SpinSpeed

	if err := out.Config.Validate(); err != nil {
		return base, err
	}
	return out, nil
}

// DecodeBoomerang overlays the YAML document on base.
func DecodeBoomerang(data []byte, base config.BoomerangConfig) (config.BoomerangConfig, error) {
	spec := BoomerangSpecFrom(base)
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal boomerang: %w", err)
	}
	return spec.Apply(base)
}

type FruitSpec struct {
	Points        int      `yaml:"points"`
	SplitInto     []string `yaml:"split_into"`
	MinSplitForce float64  `yaml:"min_split_force"`
	MaxSplitForce float64  `yaml:"max_split_force"`
	Size          float64  `yaml:"size"`
	Color         string   `yaml:"color"`
}

type FruitsSpec struct {
	Fruits map[string]FruitSpec `yaml:"fruits"`
}

// Kinds converts the spec into config fruit kinds.
func (s FruitsSpec) Kinds() (map[string]config.FruitKind, error) {
	if len(s.Fruits) == 0 {
		return nil, errors.New("prefabs: no fruits defined")
	}
	kinds := make(map[string]config.FruitKind, len(s.Fruits))
	for name, f := range s.Fruits {
		c, err := ParseColor(f.Color)
		if err != nil {
			return nil, fmt.Errorf("prefabs: fruit %q: %w", name, err)
		}
		kinds[name] = config.FruitKind{
			Name:          name,
			Points:        f.Points,
			SplitInto:     f.SplitInto,
			MinSplitForce: f.MinSplitForce,
			MaxSplitForce: f.MaxSplitForce,
			Size:          f.Size,
			Color:         c,
		}
	}
	return kinds, nil
}

// ParseColor reads "#rrggbb" or "#rrggbbaa". Empty means white.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return config.White, nil
	}
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// staged holds prefab values that validated but wait for the next round.
type staged struct {
	boomerang config.BoomerangConfig
	kinds     map[string]config.FruitKind
}

var pending *staged

// LoadAll applies the boomerang and fruit prefabs to the global config. The
// globals are only replaced when the result validates.
func LoadAll() error {
	next, err := decodeAll()
	if err != nil {
		return err
	}
	config.Boomerang, config.Fruit.Kinds = next.boomerang, next.kinds
	pending = nil
	return nil
}

// Reload re-reads the prefab behind a watcher event and stages the result.
// The running round keeps its values until ApplyPending is called. Unknown
// files are ignored.
func Reload(path string) error {
	switch filepath.Base(path) {
	case BoomerangFile, FruitsFile:
		next, err := decodeAll()
		if err != nil {
			return err
		}
		pending = next
	}
	return nil
}

// HasPending reports whether a reloaded prefab is waiting to be applied.
func HasPending() bool {
	return pending != nil
}

// ApplyPending copies staged prefab values into the global config. It
// reports whether anything was applied.
func ApplyPending() bool {
	if pending == nil {
		return false
	}
	config.Boomerang, config.Fruit.Kinds = pending.boomerang, pending.kinds
	pending = nil
	return true
}

// decodeAll reads both prefabs on top of the current config and validates
// the combination. The globals are left untouched.
func decodeAll() (*staged, error) {
	data, err := Load(BoomerangFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", BoomerangFile, err)
	}
	boomerang, err := DecodeBoomerang(data, config.Boomerang)
	if err != nil {
		return nil, err
	}

	fruits, err := LoadSpec[FruitsSpec](FruitsFile)
	if err != nil {
		return nil, err
	}
	kinds, err := fruits.Kinds()
	if err != nil {
		return nil, err
	}

	prevBoomerang, prevKinds := config.Boomerang, config.Fruit.Kinds
	config.Boomerang, config.Fruit.Kinds = boomerang, kinds
	err = config.Validate()
	config.Boomerang, config.Fruit.Kinds = prevBoomerang, prevKinds
	if err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	return &staged{boomerang: boomerang, kinds: kinds}, nil
}
