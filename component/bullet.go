package component

import (
	"time"

	"github.com/exporterrormusic/kingdom-arena/core"
)

// BulletState tracks the live/dissolve lifecycle
type BulletState uint8

const (
	BulletLive BulletState = iota
	// BulletDissolving: range budget spent, inert, lingers for the
	// dissolve duration before removal
	BulletDissolving
)

// BulletComponent marks a linear penetrating projectile
type BulletComponent struct {
	Owner   core.Entity
	Faction core.Faction
	State   BulletState

	Damage      int
	Penetration int   // Remaining hits before removal, always >= 1 at spawn
	Range       int64 // Remaining range budget, Q32.32 units

	// Segment start for the swept hit test, updated each tick
	PrevX, PrevY int64

	Dissolve time.Duration // Remaining dissolve time once spent

	Shape uint8 // Cosmetic tag, opaque to the simulation
}

// Live reports whether the bullet can still register hits
func (b *BulletComponent) Live() bool {
	return b.State == BulletLive
}

// ConsumeHit decrements penetration; returns true when the bullet is spent
func (b *BulletComponent) ConsumeHit() bool {
	b.Penetration--
	return b.Penetration <= 0
}
