package component

import (
	"time"

	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// MissilePhase represents lifecycle state
// Transitions are strictly forward: Flying -> Exploding -> Finished
type MissilePhase uint8

const (
	MissilePhaseFlying MissilePhase = iota
	MissilePhaseExploding
	MissilePhaseFinished
)

// Blast radius reaches maximum at 70% of the explosion duration
const blastRampNum, blastRampDen = 7, 10

// MissileComponent holds missile entity state (pure data plus
// invariant-guarding accessors)
type MissileComponent struct {
	Phase MissilePhase
	Owner core.Entity

	// Fixed detonation point assigned at launch
	TargetX, TargetY int64 // Q32.32

	Damage      int
	BlastRadius int64 // Q32.32, maximum AoE radius

	Age      time.Duration // Time since launch
	PhaseAge time.Duration // Time in current phase
	Duration time.Duration // Explosion duration once Exploding

	// Damaged is shared between body hits and blast hits: a target that
	// took a body hit never also takes blast damage from this missile
	Damaged map[core.Entity]struct{}
}

// AdvancePhase moves to the requested phase; backward or skipping
// transitions are rejected
func (m *MissileComponent) AdvancePhase(p MissilePhase) bool {
	if p != m.Phase+1 {
		return false
	}
	m.Phase = p
	m.PhaseAge = 0
	return true
}

// MarkDamaged records a hit; returns false if the target was already hit
func (m *MissileComponent) MarkDamaged(e core.Entity) bool {
	if m.Damaged == nil {
		m.Damaged = make(map[core.Entity]struct{}, 8)
	}
	if _, hit := m.Damaged[e]; hit {
		return false
	}
	m.Damaged[e] = struct{}{}
	return true
}

// CurrentBlastRadius ramps linearly from 0 to BlastRadius over the first
// 70% of the explosion duration, then holds at maximum
func (m *MissileComponent) CurrentBlastRadius() int64 {
	if m.Phase != MissilePhaseExploding {
		return 0
	}
	rampEnd := m.Duration * blastRampNum / blastRampDen
	if rampEnd <= 0 || m.PhaseAge >= rampEnd {
		return m.BlastRadius
	}
	return vmath.MulDiv(m.BlastRadius, int64(m.PhaseAge), int64(rampEnd))
}

// BodyRadius is the in-flight hitbox against a target of the given radius
// base + target/2, matching the asymmetric contact box of the body hit
func (m *MissileComponent) BodyRadius(base, targetRadius int64) int64 {
	return base + targetRadius/2
}
