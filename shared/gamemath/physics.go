package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// UpdateStamina drains stamina while sprinting and regenerates it otherwise,
// capped at max. exhausted reports that this step emptied it.
func UpdateStamina(stamina, max, consumption, regeneration, dt float64, sprinting bool) (next float64, exhausted bool) {
	if sprinting {
		next = stamina - consumption*dt
		if next <= 0 {
			return 0, true
		}
		return next, false
	}
	next = stamina + regeneration*dt
	if next > max {
		next = max
	}
	return next, false
}

// CountDown reduces a cooldown by dt without going below zero.
func CountDown(remaining, dt float64) float64 {
	remaining -= dt
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reflect reverses velocity on an axis when a probe reports contact.
func Reflect(vel float64, contact bool) float64 {
	if contact {
		return -vel
	}
	return vel
}
