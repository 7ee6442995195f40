// Package flight implements the boomerang flight state machine: a kinematic
// mover that flips one velocity axis per wall bounce, rescales its speed on
// the first bounce, and only counts hits once a short arming delay has passed.
//
// The package has no engine dependencies. A host drives it with Tick once per
// physics frame and forwards wall and trigger contacts to OnBounce,
// OnHitPlayer and OnHitFruit.
package flight

import (
	"fmt"
	"math"

	"github.com/kvartborg/vector"
)

// Axis is a horizontal axis a bounce can reverse.
type Axis int

const (
	AxisX Axis = iota
	AxisZ
	axisCount
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// component is the index of the axis in a 3D vector.
func (a Axis) component() int {
	if a == AxisZ {
		return 2
	}
	return 0
}

func (a Axis) valid() bool {
	return a >= AxisX && a < axisCount
}

// State is the coarse flight state derived from the controller flags.
type State int

const (
	Resting State = iota
	Arming
	Flying
)

func (s State) String() string {
	switch s {
	case Resting:
		return "resting"
	case Arming:
		return "arming"
	case Flying:
		return "flying"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Controller owns one projectile's position, velocity and flight flags.
type Controller struct {
	cfg   Config
	clock Scheduler

	position vector.Vector
	velocity vector.Vector

	active    bool
	isInitial bool
	isThrown  bool
	opened    bool
	canFlip   [axisCount]bool

	arming       *Timer
	flipCooldown [axisCount]*Timer

	// generation changes on every Throw and ReturnToRest so callbacks from
	// an earlier flight are inert even if they escape cancellation.
	generation uint64

	openedListeners []func()
	playerListeners []func()
	fruitListeners  []func()
}

// NewController validates cfg and returns a resting controller at the origin.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{cfg: cfg}
	c.ReturnToRest(nil)
	return c, nil
}

// Config returns the constants the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// AddOpenedListener registers fn to run when the first bounce of a throw opens the boomerang.
func (c *Controller) AddOpenedListener(fn func()) {
	c.openedListeners = append(c.openedListeners, fn)
}

// AddPlayerContactListener registers fn to run on every honored player hit.
func (c *Controller) AddPlayerContactListener(fn func()) {
	c.playerListeners = append(c.playerListeners, fn)
}

// AddFruitContactListener registers fn to run on every honored fruit hit.
func (c *Controller) AddFruitContactListener(fn func()) {
	c.fruitListeners = append(c.fruitListeners, fn)
}

// Throw launches a resting projectile from spawn along direction at the
// initial speed. Hits are honored only after the arming delay. It returns
// false, without changing anything, when the projectile is not resting or
// the direction has no finite length.
func (c *Controller) Throw(spawn, direction vector.Vector) bool {
	if c.active {
		return false
	}
	dir := vec3(direction)
	if m := dir.Magnitude(); !(m > 0) || math.IsInf(m, 1) {
		return false
	}

	c.clock.CancelAll()
	c.generation++
	gen := c.generation

	c.position = vec3(spawn)
	c.velocity = dir.Unit().Scale(c.cfg.InitialSpeed)
	c.active = true
	c.isInitial = true
	c.isThrown = false
	c.opened = false
	c.canFlip = [axisCount]bool{true, true}
	c.flipCooldown = [axisCount]*Timer{}

	c.arming = c.clock.After(c.cfg.ArmingDelay, func() {
		if gen != c.generation || !c.active {
			return
		}
		c.isThrown = true
	})
	return true
}

// OnBounce handles a wall contact on one side of the hit volume. The first
// bounce of a throw rescales the speed and opens the boomerang. The axis
// component is negated unless a flip on that axis happened within the
// debounce window. It reports whether the direction flipped.
func (c *Controller) OnBounce(axis Axis) bool {
	if !c.active || !axis.valid() {
		return false
	}

	if c.isInitial {
		c.isInitial = false
		c.velocity = c.firstHitVelocity()
		c.opened = true
		notify(c.openedListeners)
		// a listener may have sent the boomerang home
		if !c.active {
			return false
		}
	}

	if !c.canFlip[axis] {
		return false
	}

	i := axis.component()
	c.velocity[i] = -c.velocity[i]
	c.canFlip[axis] = false

	gen := c.generation
	c.flipCooldown[axis] = c.clock.After(c.cfg.FlipDebounce, func() {
		if gen != c.generation {
			return
		}
		c.canFlip[axis] = true
	})
	return true
}

func (c *Controller) firstHitVelocity() vector.Vector {
	switch c.cfg.SpeedMode {
	case SpeedModeTravel:
		if !(c.velocity.Magnitude() > 0) {
			return c.velocity
		}
		return c.velocity.Unit().Scale(c.cfg.TravelSpeed)
	default:
		return c.velocity.Scale(c.cfg.AfterFirstHitSpeedScale)
	}
}

// Tick advances the frame clock by dt seconds and then moves the projectile
// by one velocity step. It does nothing while resting.
func (c *Controller) Tick(dt float64) {
	if !c.active {
		return
	}
	if dt > 0 {
		c.clock.Advance(dt)
	}
	c.position = c.position.Add(c.velocity)
}

// OnHitPlayer notifies the player-contact listeners if the projectile is armed.
func (c *Controller) OnHitPlayer() bool {
	if !c.isThrown {
		return false
	}
	notify(c.playerListeners)
	return true
}

// OnHitFruit notifies the fruit-contact listeners if the projectile is armed.
func (c *Controller) OnHitFruit() bool {
	if !c.isThrown {
		return false
	}
	notify(c.fruitListeners)
	return true
}

// ReturnToRest stops the projectile at anchor, clears every flag and cancels
// all pending timers. It is valid in any state. A nil anchor means the origin.
func (c *Controller) ReturnToRest(anchor vector.Vector) {
	c.clock.CancelAll()
	c.generation++

	c.arming = nil
	c.flipCooldown = [axisCount]*Timer{}
	c.position = vec3(anchor)
	c.velocity = vector.Vector{0, 0, 0}
	c.active = false
	c.isInitial = false
	c.isThrown = false
	c.opened = false
	c.canFlip = [axisCount]bool{true, true}
}

// State returns Resting, Arming or Flying.
func (c *Controller) State() State {
	switch {
	case !c.active:
		return Resting
	case !c.isThrown:
		return Arming
	default:
		return Flying
	}
}

// Position returns a copy of the current position.
func (c *Controller) Position() vector.Vector {
	return c.position.Clone()
}

// Velocity returns a copy of the current velocity.
func (c *Controller) Velocity() vector.Vector {
	return c.velocity.Clone()
}

// Speed is the velocity magnitude in units per tick.
func (c *Controller) Speed() float64 {
	return c.velocity.Magnitude()
}

// IsInitial reports whether the current throw has not bounced yet.
func (c *Controller) IsInitial() bool { return c.isInitial }

// IsThrown reports whether the arming delay has elapsed.
func (c *Controller) IsThrown() bool { return c.isThrown }

// IsOpened reports whether the boomerang opened on its first bounce.
func (c *Controller) IsOpened() bool { return c.opened }

// CanFlip reports whether a bounce on axis would currently reverse it.
func (c *Controller) CanFlip(axis Axis) bool {
	if !axis.valid() {
		return false
	}
	return c.canFlip[axis]
}

// ArmingRemaining returns the seconds until hits are honored, 0 if armed or resting.
func (c *Controller) ArmingRemaining() float64 {
	return c.arming.Remaining()
}

// FlipCooldownRemaining returns the seconds until axis can flip again.
func (c *Controller) FlipCooldownRemaining(axis Axis) float64 {
	if !axis.valid() {
		return 0
	}
	return c.flipCooldown[axis].Remaining()
}

func notify(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}

// vec3 copies v into a fresh 3-component vector, padding or truncating.
func vec3(v vector.Vector) vector.Vector {
	out := vector.Vector{0, 0, 0}
	copy(out, v)
	return out
}
