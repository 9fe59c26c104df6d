package parameter

import "github.com/exporterrormusic/kingdom-arena/vmath"

// Pre-computed Q32.32 physics constants, initialized once to avoid
// repeated float conversion in system hot paths

// Enemy steering
var (
	EnemyDetectionRadius = vmath.FromFloat(EnemyDetectionRadiusFloat)
	EnemyCloseRange      = vmath.FromFloat(EnemyCloseRangeFloat)
	EnemyCloseSpeedMult  = vmath.FromFloat(EnemyCloseSpeedMultFloat)
	EnemyFarSpeedMult    = vmath.FromFloat(EnemyFarSpeedMultFloat)
	EnemyJitter          = vmath.FromFloat(EnemyJitterFloat)
	EnemyCullDistance    = vmath.FromFloat(EnemyCullDistanceFloat)
	EnemyLookahead       = vmath.FromFloat(EnemyLookaheadFloat)
	EnemyFireRange       = vmath.FromFloat(EnemyFireRangeFloat)
)

// Separation
var (
	EnemySeparationBuffer = vmath.FromFloat(EnemySeparationBufferFloat)
	EnemySeparationPush   = vmath.FromFloat(EnemySeparationPushFloat)
	EnemySeparationDamp   = vmath.FromFloat(EnemySeparationDampFloat)
)

// Projectiles
var (
	PlayerBulletSpeed  = vmath.FromFloat(PlayerBulletSpeedFloat)
	PlayerBulletRange  = vmath.FromFloat(PlayerBulletRangeFloat)
	RapidBulletRange   = vmath.FromFloat(RapidBulletRangeFloat)
	HostileBulletSpeed = vmath.FromFloat(HostileBulletSpeedFloat)
	HostileBulletRange = vmath.FromFloat(HostileBulletRangeFloat)
)

// Missiles
var (
	MissileSpeed         = vmath.FromFloat(MissileSpeedFloat)
	MissileBlastRadius   = vmath.FromFloat(MissileBlastRadiusFloat)
	MissileArrivalRadius = vmath.FromFloat(MissileArrivalRadiusFloat)
	MissileTriggerRadius = vmath.FromFloat(MissileTriggerRadiusFloat)
	MissileBodyRadius    = vmath.FromFloat(MissileBodyRadiusFloat)
)

// Melee
var (
	MeleeArcHalfWidth = vmath.DegreesToAngle(MeleeArcHalfWidthDeg)
	MeleeDefRange     = vmath.FromFloat(MeleeDefaultRange)
	MeleeWipeFactor   = vmath.FromFloat(MeleeWipeFactorFloat)
)

// Player
var (
	PlayerRadius      = vmath.FromFloat(PlayerRadiusFloat)
	PlayerSpeed       = vmath.FromFloat(PlayerSpeedFloat)
	PlayerPushback    = vmath.FromFloat(PlayerPushbackFloat)
	ShieldArcHalfWide = vmath.DegreesToAngle(ShieldArcHalfWidthDeg)
	ShieldRange       = vmath.FromFloat(ShieldRangeFloat)
)

// Spawn placement
var (
	SpawnBorderBuffer = vmath.FromFloat(SpawnBorderBufferFloat)
)

// Simulation
var (
	MaxDeltaSeconds = vmath.FromFloat(MaxDeltaSecondsFloat)
)
