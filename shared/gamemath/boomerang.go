package gamemath

// CalculateAimDirection returns the throw direction from the player toward
// the cursor. When the cursor sits on the player, the facing is used.
func CalculateAimDirection(playerX, playerZ, targetX, targetZ, facingX, facingZ float64) (aimX, aimZ float64) {
	if x, z, ok := Normalize2(targetX-playerX, targetZ-playerZ); ok {
		return x, z
	}
	if x, z, ok := Normalize2(facingX, facingZ); ok {
		return x, z
	}
	return 1, 0
}

// CalculateSpawnPoint offsets a point along a unit aim vector.
func CalculateSpawnPoint(originX, originZ, aimX, aimZ, offset float64) (x, z float64) {
	return originX + aimX*offset, originZ + aimZ*offset
}

// CenteredAt returns the top-left corner of a w×h box centred on (cx, cz).
func CenteredAt(cx, cz, w, h float64) (x, z float64) {
	return cx - w/2, cz - h/2
}

// CalculateSplitVelocity returns the launch velocity of a split fruit piece.
// t in [0,1] picks the speed between minForce and maxForce.
func CalculateSplitVelocity(angle, t, minForce, maxForce float64) (velX, velZ float64) {
	speed := minForce + ClampUnit(t)*(maxForce-minForce)
	x, z := DirectionFromAngle(angle)
	return x * speed, z * speed
}

// ClampUnit clamps t to [0, 1].
func ClampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
