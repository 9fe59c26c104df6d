package system

import (
	"testing"
	"time"

	"github.com/exporterrormusic/kingdom-arena/component"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

func launchRequest(ox, oy, tx, ty int64) *event.MissileLaunchRequestPayload {
	return &event.MissileLaunchRequestPayload{
		OriginX: ox, OriginY: oy,
		TargetX: tx, TargetY: ty,
	}
}

// A missile launched 500 units from its target at the default 800 units/s
// arrives and detonates at roughly 0.625s, then finishes after the fixed
// explosion duration
func TestMissileFliesDetonatesFinishes(t *testing.T) {
	w := newTestWorld()
	addPlayer(w, 0, 0)
	w.AddSystem(NewMissileSystem(w))
	w.AddSystem(NewCullSystem(w))

	w.PushEvent(event.EventMissileLaunchRequest,
		launchRequest(0, 0, vmath.FromInt(500), 0))

	dt := 50 * time.Millisecond
	elapsed := time.Duration(0)
	var detonatedAt time.Duration

	for i := 0; i < 40 && detonatedAt == 0; i++ {
		tick(w, dt)
		elapsed += dt
		for _, e := range w.Components.Missile.All() {
			m, _ := w.Components.Missile.Get(e)
			if m.Phase == component.MissilePhaseExploding {
				detonatedAt = elapsed
			}
		}
	}

	if detonatedAt == 0 {
		t.Fatal("missile never detonated")
	}
	// Flight time 500/800 = 0.625s, allow tick quantization
	if detonatedAt < 600*time.Millisecond || detonatedAt > 750*time.Millisecond {
		t.Errorf("detonated at %v, want ~625ms", detonatedAt)
	}

	// Explosion holds for 600ms, then the missile is removed
	for i := 0; i < 11; i++ { // 550ms
		tick(w, dt)
		if w.Components.Missile.Count() == 0 {
			t.Fatal("missile removed before explosion duration elapsed")
		}
	}
	for i := 0; i < 3; i++ {
		tick(w, dt)
	}
	if n := w.Components.Missile.Count(); n != 0 {
		t.Errorf("finished missile not removed, %d remain", n)
	}
}

// Flight timeout forces detonation even when the target is never reached
func TestMissileFlightTimeout(t *testing.T) {
	w := newTestWorld()
	addPlayer(w, 0, 0)
	w.AddSystem(NewMissileSystem(w))
	w.AddSystem(NewCullSystem(w))

	// Slow missile aimed across the whole world: cannot arrive within 5s
	req := launchRequest(0, 0, vmath.FromInt(4000), 0)
	req.Speed = vmath.FromInt(10)
	w.PushEvent(event.EventMissileLaunchRequest, req)

	for i := 0; i < 52; i++ { // 5.2s
		tick(w, 100*time.Millisecond)
	}

	exploded := false
	for _, e := range w.Components.Missile.All() {
		m, _ := w.Components.Missile.Get(e)
		if m.Phase == component.MissilePhaseExploding {
			exploded = true
		}
	}
	if !exploded {
		t.Error("missile did not detonate at max flight time")
	}
}

// Phase transitions only move forward; regressions and skips are rejected
func TestMissilePhaseForwardOnly(t *testing.T) {
	m := component.MissileComponent{Phase: component.MissilePhaseFlying}

	if m.AdvancePhase(component.MissilePhaseFinished) {
		t.Error("skipping Exploding must be rejected")
	}
	if !m.AdvancePhase(component.MissilePhaseExploding) {
		t.Error("Flying -> Exploding must be accepted")
	}
	if m.AdvancePhase(component.MissilePhaseExploding) {
		t.Error("re-entering the same phase must be rejected")
	}
	if !m.AdvancePhase(component.MissilePhaseFinished) {
		t.Error("Exploding -> Finished must be accepted")
	}
	if m.AdvancePhase(component.MissilePhaseExploding) {
		t.Error("regression from Finished must be rejected")
	}
}

// The blast radius ramps to maximum at 70% of the explosion duration and
// holds there for the remainder
func TestMissileBlastRadiusRamp(t *testing.T) {
	m := component.MissileComponent{
		Phase:       component.MissilePhaseExploding,
		BlastRadius: vmath.FromInt(150),
		Duration:    600 * time.Millisecond,
	}

	m.PhaseAge = 0
	if r := m.CurrentBlastRadius(); r != 0 {
		t.Errorf("radius at t=0 is %v, want 0", vmath.ToFloat(r))
	}

	m.PhaseAge = 210 * time.Millisecond // Half the 420ms ramp
	half := vmath.ToFloat(m.CurrentBlastRadius())
	if half < 70 || half > 80 {
		t.Errorf("radius at half ramp = %v, want ~75", half)
	}

	m.PhaseAge = 420 * time.Millisecond
	if r := m.CurrentBlastRadius(); r != vmath.FromInt(150) {
		t.Errorf("radius at ramp end = %v, want 150", vmath.ToFloat(r))
	}

	m.PhaseAge = 600 * time.Millisecond
	if r := m.CurrentBlastRadius(); r != vmath.FromInt(150) {
		t.Errorf("radius after ramp = %v, want held at 150", vmath.ToFloat(r))
	}
}
