package systems

import (
	cfg "github.com/automoto/fruitrang/config"

	"github.com/automoto/fruitrang/components"
	"github.com/automoto/fruitrang/shared/gamemath"
	"github.com/automoto/fruitrang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, input, playerEntry)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	dt := cfg.Physics.DeltaTime
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry)

	player.BoomerangCooldown = gamemath.CountDown(player.BoomerangCooldown, dt)
	player.SwordCooldown = gamemath.CountDown(player.SwordCooldown, dt)
	player.BowlCooldown = gamemath.CountDown(player.BowlCooldown, dt)

	handleMovementInput(input, player, physics, dt)
	moveAndCollide(playerObject.Object, physics.SpeedX, physics.SpeedZ)

	// With a cursor the player looks at it, whichever way they walk.
	if input.HasAim {
		cx, cz := playerObject.Center()
		if x, z, ok := gamemath.Normalize2(input.AimX-cx, input.AimZ-cz); ok {
			player.FacingX, player.FacingZ = x, z
		}
	}

	if input.JustPressed(cfg.ActionThrow) {
		aimX, aimZ := playerObject.Center()
		if input.HasAim {
			aimX, aimZ = input.AimX, input.AimZ
		}
		ThrowBoomerang(ecs, playerEntry, aimX, aimZ)
	}
	if input.JustPressed(cfg.ActionSlice) {
		Slice(playerEntry)
	}
	if input.JustPressed(cfg.ActionBowl) {
		SwingBowl(playerEntry)
	}

	// Running into a fruit breaks it open.
	for _, f := range touchingEntries(playerObject.Object, tags.ResolvFruit) {
		SplitFruit(ecs, f)
	}
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, dt float64) {
	var dirX, dirZ float64
	if input.Pressed(cfg.ActionMoveLeft) {
		dirX--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dirX++
	}
	if input.Pressed(cfg.ActionMoveUp) {
		dirZ--
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dirZ++
	}

	dirX, dirZ, moving := gamemath.Normalize2(dirX, dirZ)
	if moving {
		player.FacingX, player.FacingZ = dirX, dirZ
	}

	player.SprintLockout = gamemath.CountDown(player.SprintLockout, dt)
	player.Sprinting = moving && input.Pressed(cfg.ActionSprint) && player.SprintLockout == 0 && player.Stamina > 0

	stamina, exhausted := gamemath.UpdateStamina(player.Stamina, cfg.Player.MaxStamina,
		cfg.Player.StaminaConsumption, cfg.Player.StaminaRegenerationRate, dt, player.Sprinting)
	player.Stamina = stamina
	if exhausted {
		player.Sprinting = false
		player.SprintLockout = cfg.Player.SprintCooldown
	}

	speed := cfg.Player.Speed
	if player.Sprinting {
		speed *= cfg.Player.SprintMultiplier
	}
	physics.SpeedX = dirX * speed
	physics.SpeedZ = dirZ * speed
}

// ThrowBoomerang throws the player's boomerang toward (targetX, targetZ). It
// reports whether a throw happened: the boomerang must be back in hand and
// the throw cooldown over.
func ThrowBoomerang(ecs *ecs.ECS, playerEntry *donburi.Entry, targetX, targetZ float64) bool {
	player := components.Player.Get(playerEntry)
	if !player.BoomerangAvailable || player.BoomerangCooldown > 0 {
		return false
	}
	if player.Boomerang == nil || !player.Boomerang.Valid() {
		return false
	}

	cx, cz := components.Object.Get(playerEntry).Center()
	aimX, aimZ := gamemath.CalculateAimDirection(cx, cz, targetX, targetZ, player.FacingX, player.FacingZ)
	spawnX, spawnZ := gamemath.CalculateSpawnPoint(cx, cz, aimX, aimZ, cfg.Boomerang.SpawnOffset)

	b := components.Boomerang.Get(player.Boomerang)
	if !b.Flight.Throw(
		gamemath.PlaneToWorld(spawnX, spawnZ, cfg.Boomerang.Height),
		gamemath.PlaneToWorld(aimX, aimZ, 0),
	) {
		logEvent("throw ignored, boomerang is %s", b.Flight.State())
		return false
	}

	b.Bounces = 0
	player.FacingX, player.FacingZ = aimX, aimZ
	player.BoomerangAvailable = false
	player.BoomerangCooldown = cfg.Player.BoomerangCooldown
	if arena := getArena(ecs); arena != nil {
		arena.Throws++
	}
	logEvent("boomerang thrown toward (%.2f, %.2f)", aimX, aimZ)
	return true
}

// Slice enables the player's knife if the sword cooldown allows.
func Slice(playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.SwordCooldown > 0 || player.Knife == nil || !player.Knife.Valid() {
		return false
	}
	StartSlice(components.Knife.Get(player.Knife))
	player.SwordCooldown = cfg.Player.SwordCooldown
	return true
}

// SwingBowl starts a bowl swing if the bowl cooldown allows.
func SwingBowl(playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.BowlCooldown > 0 || player.Bowl == nil || !player.Bowl.Valid() {
		return false
	}
	bowl := components.Bowl.Get(player.Bowl)
	if bowl.Swinging {
		return false
	}
	StartSwing(bowl)
	player.BowlCooldown = cfg.Player.BowlCooldown
	return true
}
