package flight

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidConfig is wrapped by every configuration error returned from this package.
var ErrInvalidConfig = errors.New("flight: invalid config")

// SpeedMode selects what happens to the speed on the first wall bounce.
type SpeedMode int

const (
	// SpeedModeScale multiplies the speed by AfterFirstHitSpeedScale.
	SpeedModeScale SpeedMode = iota
	// SpeedModeTravel snaps the speed to TravelSpeed.
	SpeedModeTravel
)

func (m SpeedMode) String() string {
	switch m {
	case SpeedModeScale:
		return "scale"
	case SpeedModeTravel:
		return "travel"
	}
	return fmt.Sprintf("SpeedMode(%d)", int(m))
}

// ParseSpeedMode accepts "scale" or "travel" (case-insensitive). Empty means scale.
func ParseSpeedMode(s string) (SpeedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scale":
		return SpeedModeScale, nil
	case "travel":
		return SpeedModeTravel, nil
	}
	return 0, fmt.Errorf("%w: unknown speed mode %q", ErrInvalidConfig, s)
}

// Config holds the per-projectile-type constants. Speeds are in world units
// per physics tick, durations in seconds.
type Config struct {
	InitialSpeed            float64
	SpeedMode               SpeedMode
	AfterFirstHitSpeedScale float64
	TravelSpeed             float64
	ArmingDelay             float64
	FlipDebounce            float64
}

// DefaultConfig returns the values the arena boomerang ships with.
func DefaultConfig() Config {
	return Config{
		InitialSpeed:            4.0,
		SpeedMode:               SpeedModeScale,
		AfterFirstHitSpeedScale: 1.0,
		TravelSpeed:             4.0,
		ArmingDelay:             0.1,
		FlipDebounce:            1.0,
	}
}

// Validate reports every constant the controller would use that is not a
// positive finite number.
func (c Config) Validate() error {
	var problems []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 1) {
			problems = append(problems, fmt.Errorf("%s must be finite and > 0, got %v", name, v))
		}
	}

	positive("initial speed", c.InitialSpeed)
	positive("arming delay", c.ArmingDelay)
	positive("flip debounce", c.FlipDebounce)

	switch c.SpeedMode {
	case SpeedModeScale:
		positive("after first hit speed scale", c.AfterFirstHitSpeedScale)
	case SpeedModeTravel:
		positive("travel speed", c.TravelSpeed)
	default:
		problems = append(problems, fmt.Errorf("unknown speed mode %d", int(c.SpeedMode)))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
