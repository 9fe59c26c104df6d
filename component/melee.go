package component

import (
	"time"

	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// MeleeSweepComponent is a time-windowed arc hit-region anchored to (not
// owning) an attacking entity. Origin and direction follow the attacker
// each tick; if the attacker disappears mid-activation the sweep freezes
// at its last-known anchor instead of dangling
type MeleeSweepComponent struct {
	Attacker core.Entity

	RelativeAngle int64 // Offset from attacker facing, rotation units
	Reach         int64 // Q32.32, full range after the wipe completes
	HalfWidth     int64 // Rotation units
	Damage        int

	Age      time.Duration
	Duration time.Duration

	// Last-known anchor, refreshed while the attacker is alive
	OriginX, OriginY int64 // Q32.32
	Facing           int64 // Absolute heading, rotation units

	Damaged map[core.Entity]struct{}
}

// Expired reports whether the activation window has closed
func (m *MeleeSweepComponent) Expired() bool {
	return m.Age >= m.Duration
}

// CurrentReach ramps from 0 to full reach over the first two thirds of
// the duration; the wipe is authoritative for hit testing
func (m *MeleeSweepComponent) CurrentReach(wipeFactor int64) int64 {
	if m.Duration <= 0 {
		return m.Reach
	}
	progress := vmath.FromFloat(m.Age.Seconds() / m.Duration.Seconds())
	progress = vmath.Mul(progress, wipeFactor)
	if progress > vmath.Scale {
		progress = vmath.Scale
	}
	return vmath.Mul(m.Reach, progress)
}

// Contains tests a candidate position against the current arc window
func (m *MeleeSweepComponent) Contains(tx, ty, wipeFactor int64) bool {
	if m.Expired() {
		return false
	}
	return vmath.PointInArc(tx, ty, m.OriginX, m.OriginY,
		m.Facing, m.CurrentReach(wipeFactor), m.HalfWidth)
}

// MarkDamaged records a hit; returns false if already hit this activation
func (m *MeleeSweepComponent) MarkDamaged(e core.Entity) bool {
	if m.Damaged == nil {
		m.Damaged = make(map[core.Entity]struct{}, 4)
	}
	if _, hit := m.Damaged[e]; hit {
		return false
	}
	m.Damaged[e] = struct{}{}
	return true
}
