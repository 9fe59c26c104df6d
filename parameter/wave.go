package parameter

import "time"

// Spawn scheduling
const (
	// SpawnBaseInterval is the wave-1 cadence before multipliers
	SpawnBaseInterval = 1500 * time.Millisecond

	// SpawnIntervalFloorPercent of base interval, never spawn faster
	SpawnIntervalFloorPercent = 1

	// SpawnGracePeriod suppresses all spawns at level start
	SpawnGracePeriod = 3 * time.Second

	// SpawnBorderBufferFloat offsets spawn points inside the world edge
	SpawnBorderBufferFloat = 50.0

	// SpawnPlacementAttempts before accepting an in-view border point
	SpawnPlacementAttempts = 8
)

// Enemy population cap, scaled by wave
const (
	EnemyCapBase = 15
	EnemyCapMax  = 25
)

// Wave advancement
const (
	// WaveKillFactor: advance when kills-this-wave >= wave * factor
	WaveKillFactor = 10

	// WaveIntervalTightenFloat multiplies the base interval per wave
	WaveIntervalTightenFloat = 0.95

	// WaveIntervalMin bounds the tightening
	WaveIntervalMin = 800 * time.Millisecond
)

// Difficulty scaling
const (
	// WaveDangerStepFloat raises danger per wave; capped below
	WaveDangerStepFloat = 0.5
	WaveDangerCapFloat  = 5.0

	// DangerStatFactorFloat scales health/damage: 1 + f*(danger-1)
	DangerStatFactorFloat = 0.25

	// WaveSpeedFactorFloat scales speed by wave only: 1 + f*(wave-1)
	WaveSpeedFactorFloat = 0.1

	// OriginDistanceFactorFloat scales all stats with distance from origin:
	// 1 + f * (dist / OriginDistanceUnit)
	OriginDistanceFactorFloat = 0.1
	OriginDistanceUnit        = 2048
)

// Spawn interval ramps (halving half-lives for vmath.Halving)
const (
	// SpawnTimeRampHalfLifeSeconds: interval halves per this much level time
	SpawnTimeRampHalfLifeSeconds = 60

	// SpawnBorderRampHalfLifePercent: interval multiplier halves per this
	// percentage of the player's center-to-border progress
	SpawnBorderRampHalfLifePercent = 50
)
