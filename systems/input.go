package systems

import (
	"github.com/automoto/fruitrang/components"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.NextFrame()
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Press(actionID, true)
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Press(actionID, true)
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Press(actionID, true)
				}
			}
		}
	}

	left, right, up, down := getAnalogStickState(gamepadIDs)
	if left {
		input.Press(cfg.ActionMoveLeft, true)
	}
	if right {
		input.Press(cfg.ActionMoveRight, true)
	}
	if up {
		input.Press(cfg.ActionMoveUp, true)
	}
	if down {
		input.Press(cfg.ActionMoveDown, true)
	}

	// The arena is drawn 1:1, so the cursor is already on the ground plane.
	cx, cy := ebiten.CursorPosition()
	input.AimX, input.AimZ = float64(cx), float64(cy)
	input.HasAim = len(gamepadIDs) == 0
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
