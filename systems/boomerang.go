package systems

import (
	"log"

	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/shared/flight"
	"github.com/automoto/fruitrang/shared/gamemath"
	"github.com/automoto/fruitrang/systems/factory"
	"github.com/automoto/fruitrang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoomerang drives every boomerang's flight controller for one tick.
// Wall contacts are probed before the controller moves so a bounce flips the
// velocity that the tick is about to apply.
func UpdateBoomerang(ecs *ecs.ECS) {
	dt := cfg.Physics.DeltaTime

	components.Boomerang.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Boomerang.Get(e)
		obj := components.Object.Get(e)
		ctrl := b.Flight

		updateOpenTween(b, dt)

		if ctrl.State() == flight.Resting {
			// Follow the owner around while waiting to be thrown.
			if b.Owner != nil && b.Owner.Valid() {
				ctrl.ReturnToRest(factory.RestAnchor(b.Owner))
			}
			factory.SyncBoomerangObject(e)
			return
		}

		b.Spin += cfg.Boomerang.SpinSpeed

		// 1. Wall contacts on each side of the hit volume
		vx, vz := gamemath.WorldToPlane(ctrl.Velocity())
		hitX := vx != 0 && hitsSolid(obj.Object, vx, 0)
		hitZ := vz != 0 && hitsSolid(obj.Object, 0, vz)
		if !hitX && !hitZ && vx != 0 && vz != 0 && hitsSolid(obj.Object, vx, vz) {
			// Corner: neither side alone touches, the diagonal does.
			hitX, hitZ = true, true
		}
		if hitX {
			bounceBoomerang(ecs, e, flight.AxisX)
		}
		if hitZ {
			bounceBoomerang(ecs, e, flight.AxisZ)
		}

		// 2. Advance the frame clock and move
		ctrl.Tick(dt)
		factory.SyncBoomerangObject(e)

		// 3. Trigger contacts
		for _, p := range touchingEntries(obj.Object, tags.ResolvPlayer) {
			b.Contact = p
			ctrl.OnHitPlayer()
		}
		for _, f := range touchingEntries(obj.Object, tags.ResolvFruit) {
			b.Contact = f
			ctrl.OnHitFruit()
		}
		b.Contact = nil

		// 4. A boomerang that slipped through a wall is sent home.
		if escaped(ecs, obj) {
			log.Printf("boomerang escaped the arena at (%.1f, %.1f), returning to owner", obj.X, obj.Y)
			if b.Owner != nil && b.Owner.Valid() {
				PutBoomerangAway(b.Owner)
			} else {
				ctrl.ReturnToRest(nil)
				factory.SyncBoomerangObject(e)
			}
		}
	})
}

func bounceBoomerang(ecs *ecs.ECS, e *donburi.Entry, axis flight.Axis) {
	b := components.Boomerang.Get(e)
	if !b.Flight.OnBounce(axis) {
		logEvent("bounce on %s ignored, state %s", axis, b.Flight.State())
		return
	}
	b.Bounces++
	components.BoomerangBounce.Publish(ecs.World, components.BounceEvent{Boomerang: e, Axis: axis})
}

func updateOpenTween(b *components.BoomerangData, dt float64) {
	if b.OpenTween == nil {
		return
	}
	v, finished := b.OpenTween.Update(float32(dt))
	b.OpenAmount = float64(v)
	if finished {
		b.OpenTween = nil
	}
}

// escaped reports whether obj has left the arena bounds entirely.
func escaped(ecs *ecs.ECS, obj *components.ObjectData) bool {
	arena := getArena(ecs)
	if arena == nil || arena.Level == nil {
		return false
	}
	w, h := float64(arena.Level.Width), float64(arena.Level.Height)
	return obj.X+obj.W < 0 || obj.Y+obj.H < 0 || obj.X > w || obj.Y > h
}

// PutBoomerangAway hands a player's boomerang back: it comes to rest behind
// the player and can be thrown again once the throw cooldown allows.
func PutBoomerangAway(player *donburi.Entry) {
	p := components.Player.Get(player)
	p.BoomerangAvailable = true
	if p.Boomerang == nil || !p.Boomerang.Valid() {
		return
	}

	b := components.Boomerang.Get(p.Boomerang)
	b.Flight.ReturnToRest(factory.RestAnchor(player))
	b.Bounces = 0
	b.Spin = 0
	b.OpenTween = nil
	b.OpenAmount = 0
	factory.SyncBoomerangObject(p.Boomerang)
}
