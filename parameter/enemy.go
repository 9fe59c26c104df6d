package parameter

import "time"

// Enemy base stat table, indexed by component.EnemyType ordinal
// {Basic, Fast, Tank}
type EnemyBase struct {
	Health int
	Speed  float64 // Units per second
	Radius float64
	Damage int
}

var EnemyBaseStats = [3]EnemyBase{
	{Health: 50, Speed: 80, Radius: 15, Damage: 20},  // Basic
	{Health: 25, Speed: 120, Radius: 10, Damage: 15}, // Fast
	{Health: 150, Speed: 50, Radius: 25, Damage: 35}, // Tank
}

// Spawn weighting per type, out of 100
var EnemyTypeWeights = [3]int{60, 25, 15}

// Steering
const (
	// EnemyDetectionRadiusFloat is the range at which full-speed pursuit begins
	EnemyDetectionRadiusFloat = 800.0

	// EnemyCloseRangeFloat triggers the aggressive swarm multiplier
	EnemyCloseRangeFloat = 150.0

	// EnemyCloseSpeedMultFloat applies within close range
	EnemyCloseSpeedMultFloat = 1.5

	// EnemyFarSpeedMultFloat applies beyond detection radius (always seek, slower)
	EnemyFarSpeedMultFloat = 0.8

	// EnemyJitterFloat is the per-axis random offset added before normalization
	EnemyJitterFloat = 0.3

	// EnemyCullDistanceFloat removes agents this far from the player, no kill credit
	EnemyCullDistanceFloat = 3000.0
)

// Facing
const (
	// EnemyFacingSectors is the discretized animation direction count
	EnemyFacingSectors = 8

	// EnemyFacingCooldown throttles facing-category changes to stop flicker
	EnemyFacingCooldown = 500 * time.Millisecond
)

// Obstacle avoidance
const (
	// EnemyLookaheadFloat is the probe distance along current velocity
	EnemyLookaheadFloat = 40.0

	// EnemyAvoidanceStride spreads lookahead probes across ticks:
	// an agent probes when (frame + ordinal) % stride == 0
	EnemyAvoidanceStride = 4
)

// EnemyExtractionRadii are candidate offsets tried when an agent is
// embedded in terrain, cardinal directions at each radius in order
var EnemyExtractionRadii = [3]float64{8, 16, 32}

// Separation ("bubble physics")
const (
	// EnemySeparationBufferFloat pads each agent radius for the overlap test
	EnemySeparationBufferFloat = 15.0

	// EnemySeparationPushFloat is the fraction of overlap corrected per tick
	EnemySeparationPushFloat = 0.3

	// EnemySeparationDampFloat scales velocity after a push to kill oscillation
	EnemySeparationDampFloat = 0.9
)

// Hostile fire
const (
	// EnemyShooterPercent of spawned agents carry a ranged attack
	EnemyShooterPercent = 90

	// EnemyFireRangeFloat is the maximum shooting distance
	EnemyFireRangeFloat = 400.0

	EnemyFireCooldownMin = 200 * time.Millisecond
	EnemyFireCooldownMax = 600 * time.Millisecond
)

// Contact attack
const (
	EnemyContactCooldown = 500 * time.Millisecond
)
