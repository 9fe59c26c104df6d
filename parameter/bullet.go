package parameter

import "time"

// Player projectiles
const (
	PlayerBulletSpeedFloat  = 800.0
	PlayerBulletDamage      = 25
	PlayerBulletRangeFloat  = 1200.0
	PlayerBulletPenetration = 1
	RapidBulletDamage       = 15
	RapidBulletRangeFloat   = 900.0
	RapidBulletPenetration  = 1
)

// Hostile projectiles
const (
	HostileBulletSpeedFloat = 500.0
	HostileBulletDamage     = 10
	HostileBulletRangeFloat = 600.0
)

// Lifecycle
const (
	// BulletDissolveDuration: spent bullets linger briefly, inert
	BulletDissolveDuration = 150 * time.Millisecond
)

// Continuous-fire ramp: while held, the interval eases from initial to
// minimum over the ramp time; release or reload resets it
const (
	FireIntervalInitial = 250 * time.Millisecond
	FireIntervalMin     = 80 * time.Millisecond
	FireRampTime        = 1500 * time.Millisecond
)
