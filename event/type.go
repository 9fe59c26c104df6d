package event

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventGameReset restores every system to its initial state
	// Trigger: Level restart, world clear
	// Consumer: All systems | Payload: nil
	EventGameReset EventType = iota

	// EventMetaSystemCommandRequest toggles a named system
	// Trigger: Debug console, pause handling
	// Consumer: All systems | Payload: *MetaSystemCommandPayload
	EventMetaSystemCommandRequest

	// === Combat Event ===

	// EventDamage reports damage applied to a target
	// Trigger: CollisionSystem on any successful hit
	// Consumer: Scoring/audio collaborators via event tap | Payload: *DamagePayload
	EventDamage

	// EventKill reports a target reduced to zero health
	// Trigger: CollisionSystem
	// Consumer: SpawnSystem (wave kill counter), collaborators | Payload: *KillPayload
	EventKill

	// EventPlayerHit reports damage taken by the player
	// Trigger: CollisionSystem (hostile bullets, contact)
	// Consumer: Collaborators via event tap | Payload: *PlayerHitPayload
	EventPlayerHit

	// === Spawn Event ===

	// EventEnemySpawned announces a newly created agent
	// Trigger: SpawnSystem
	// Consumer: Collaborators via event tap | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// EventWaveAdvance announces a difficulty epoch change
	// Trigger: SpawnSystem when the kill threshold is reached
	// Consumer: Collaborators via event tap | Payload: *WaveAdvancePayload
	EventWaveAdvance

	// === Attack Request Event ===

	// EventBulletFireRequest spawns a projectile
	// Trigger: Input handling (player), EnemySystem (hostile fire)
	// Consumer: BulletSystem | Payload: *BulletFireRequestPayload
	EventBulletFireRequest

	// EventTriggerState updates the player's continuous-fire trigger
	// Trigger: Input handling
	// Consumer: BulletSystem | Payload: *TriggerStatePayload
	EventTriggerState

	// EventReloadRequest forces a reload, resetting the fire ramp
	// Trigger: Input handling
	// Consumer: BulletSystem | Payload: nil
	EventReloadRequest

	// EventMissileLaunchRequest spawns a missile toward a target point
	// Trigger: Input handling
	// Consumer: MissileSystem | Payload: *MissileLaunchRequestPayload
	EventMissileLaunchRequest

	// EventMeleeSweepRequest starts an arc sweep anchored to an attacker
	// Trigger: Input handling
	// Consumer: MeleeSystem | Payload: *MeleeSweepRequestPayload
	EventMeleeSweepRequest

	// === Cosmetic Event ===

	// EventExplosionStarted is a fire-and-forget visual/audio cue
	// Trigger: MissileSystem on Flying -> Exploding
	// Consumer: Collaborators via event tap | Payload: *ExplosionStartedPayload
	EventExplosionStarted
)
