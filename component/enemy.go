package component

import "time"

// EnemyType is the agent kind; stats come from a per-type table
// so update logic stays branch-light and data-driven
type EnemyType uint8

const (
	EnemyBasic EnemyType = iota
	EnemyFast
	EnemyTank
	EnemyTypeCount
)

// AIState is the agent behavior mode
// The design is always-seek; the enum exists for snapshot consumers
type AIState uint8

const (
	AISeeking AIState = iota
)

// EnemyComponent holds per-agent combat and steering state
// Health lives in HealthComponent, motion in KineticComponent
type EnemyComponent struct {
	Type  EnemyType
	State AIState

	// Scaled at spawn from the base table and wave/distance multipliers
	Radius int64 // Q32.32
	Speed  int64 // Q32.32 units/sec
	Damage int

	// Facing: continuous heading updates every tick; the discretized
	// sector only changes after the cooldown to stop animation flicker
	Facing         int64 // Rotation units
	FacingSector   int
	FacingCooldown time.Duration // Remaining until sector may change

	// Attack timers
	ContactCooldown time.Duration
	Shooter         bool
	FireCooldown    time.Duration

	// Ordinal assigned at spawn, used to rotate lookahead probes across ticks
	Ordinal uint64
}
