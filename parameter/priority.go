package parameter

// System Execution Priorities (lower runs first)
// The order is load-bearing: collision resolution assumes all positions
// for the tick have already been advanced
const (
	PrioritySpawn      = 10  // WaveDirector scheduling
	PriorityEnemy      = 20  // Agent steering and avoidance
	PriorityBullet     = 30  // Projectile advance
	PriorityMissile    = 40  // Flight/explosion state machine
	PriorityMelee      = 50  // Arc sweep tracking
	PriorityCollision  = 60  // Cross-system hit resolution
	PrioritySeparation = 70  // Pairwise agent separation, delegated by the resolver
	PriorityCleanup    = 900 // Deferred destruction, always last
)
