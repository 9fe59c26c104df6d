package event

import (
	"time"

	"github.com/exporterrormusic/kingdom-arena/core"
)

// SourceKind identifies what dealt damage
type SourceKind uint8

const (
	SourceBullet SourceKind = iota
	SourceMissileBody
	SourceMissileBlast
	SourceMelee
	SourceContact
)

// MetaSystemCommandPayload toggles a system by name
type MetaSystemCommandPayload struct {
	SystemName string
	Enabled    bool
}

// DamagePayload reports applied damage
type DamagePayload struct {
	Target core.Entity
	Amount int
	Source SourceKind
}

// KillPayload reports a destroyed target and where it died
type KillPayload struct {
	Target core.Entity
	X, Y   int64 // Q32.32
}

// PlayerHitPayload reports player damage
type PlayerHitPayload struct {
	Amount int
	Source SourceKind
}

// EnemySpawnedPayload announces a new agent
type EnemySpawnedPayload struct {
	Entity    core.Entity
	X, Y      int64 // Q32.32
	EnemyType uint8
}

// WaveAdvancePayload announces the new wave number
type WaveAdvancePayload struct {
	Wave int
}

// BulletFireRequestPayload spawns one projectile
type BulletFireRequestPayload struct {
	Owner       core.Entity
	OriginX     int64 // Q32.32
	OriginY     int64
	Angle       int64 // Rotation units
	Speed       int64 // Q32.32 units/sec
	Damage      int
	Penetration int
	RangeBudget int64 // Q32.32 units
	Faction     core.Faction
	Shape       uint8 // Opaque cosmetic tag
}

// TriggerStatePayload drives the continuous-fire ramp
type TriggerStatePayload struct {
	Pressed bool
	Angle   int64 // Aim heading, rotation units
}

// MissileLaunchRequestPayload spawns a missile toward a fixed point
type MissileLaunchRequestPayload struct {
	Owner            core.Entity
	OriginX, OriginY int64 // Q32.32
	TargetX, TargetY int64
	Speed            int64 // Q32.32 units/sec, 0 = default
	Damage           int   // 0 = default
	BlastRadius      int64 // 0 = default
}

// MeleeSweepRequestPayload starts a tracking arc sweep
type MeleeSweepRequestPayload struct {
	Attacker      core.Entity
	RelativeAngle int64 // Offset from attacker facing, rotation units
	Reach         int64 // Q32.32 units
	HalfWidth     int64 // Rotation units
	Damage        int
	Duration      time.Duration
}

// ExplosionStartedPayload is a cosmetic cue for collaborators
type ExplosionStartedPayload struct {
	X, Y   int64 // Q32.32
	Radius int64
}
