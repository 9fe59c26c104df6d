package parameter

import "time"

const (
	MissileSpeedFloat       = 800.0
	MissileDamage           = 120
	MissileBlastRadiusFloat = 150.0

	// MissileArrivalRadiusFloat: distance to target point that detonates
	MissileArrivalRadiusFloat = 10.0

	// MissileTriggerRadiusFloat: any valid target this close detonates mid-flight
	MissileTriggerRadiusFloat = 30.0

	// MissileBodyRadiusFloat: body hitbox base, target radius/2 is added
	MissileBodyRadiusFloat = 25.0

	// MissileBodyDamageDiv: body hits deal Damage / div
	MissileBodyDamageDiv = 4

	// MissileMaxFlightTime forces detonation
	MissileMaxFlightTime = 5 * time.Second

	MissileExplosionDuration = 600 * time.Millisecond

	// MissileBlastRampPercent of the explosion duration over which the
	// area-of-effect radius grows linearly from zero to maximum
	MissileBlastRampPercent = 70
)
