package system

import (
	"testing"
	"time"

	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

func fireRequest(speed, rangeBudget int64, damage, penetration int) *event.BulletFireRequestPayload {
	return &event.BulletFireRequestPayload{
		OriginX:     0,
		OriginY:     vmath.FromInt(100),
		Angle:       0, // +X
		Speed:       speed,
		Damage:      damage,
		Penetration: penetration,
		RangeBudget: rangeBudget,
		Faction:     core.FactionPlayer,
	}
}

// A penetration-3 bullet fired through three lined-up agents damages each
// exactly once and is removed after the third hit
func TestBulletPenetratesThreeTargets(t *testing.T) {
	w := newTestWorld()
	addPlayer(w, 0, 0)
	w.AddSystem(NewBulletSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewCullSystem(w))

	y := vmath.FromInt(100)
	a := addEnemy(w, vmath.FromInt(100), y, 50)
	b := addEnemy(w, vmath.FromInt(200), y, 50)
	c := addEnemy(w, vmath.FromInt(300), y, 50)

	w.PushEvent(event.EventBulletFireRequest,
		fireRequest(vmath.FromInt(800), vmath.FromInt(1200), 25, 3))

	// 800 units/s at 100ms ticks = 80 units per tick; 5 ticks pass all three
	for i := 0; i < 5; i++ {
		tick(w, 100*time.Millisecond)
	}

	for _, e := range []core.Entity{a, b, c} {
		if got := healthOf(w, e); got != 25 {
			t.Errorf("target health = %d, want 25 (one 25-damage hit)", got)
		}
	}
	if n := w.Components.Bullet.Count(); n != 0 {
		t.Errorf("spent bullet not removed, %d still live", n)
	}
}

// A penetration-1 bullet stops at the first target
func TestBulletStopsAfterPenetrationExhausted(t *testing.T) {
	w := newTestWorld()
	addPlayer(w, 0, 0)
	w.AddSystem(NewBulletSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewCullSystem(w))

	y := vmath.FromInt(100)
	first := addEnemy(w, vmath.FromInt(100), y, 50)
	second := addEnemy(w, vmath.FromInt(200), y, 50)

	w.PushEvent(event.EventBulletFireRequest,
		fireRequest(vmath.FromInt(800), vmath.FromInt(1200), 25, 1))

	for i := 0; i < 5; i++ {
		tick(w, 100*time.Millisecond)
	}

	if got := healthOf(w, first); got != 25 {
		t.Errorf("first target health = %d, want 25", got)
	}
	if got := healthOf(w, second); got != 50 {
		t.Errorf("second target health = %d, want untouched 50", got)
	}
}

// Range expiry flips the bullet to its inert dissolve state, during which
// it no longer registers hits, then removes it
func TestBulletRangeExpiryDissolves(t *testing.T) {
	w := newTestWorld()
	addPlayer(w, 0, 0)
	w.AddSystem(NewBulletSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewCullSystem(w))

	y := vmath.FromInt(100)
	outOfReach := addEnemy(w, vmath.FromInt(500), y, 50)

	// 160-unit budget expires after two 80-unit ticks
	w.PushEvent(event.EventBulletFireRequest,
		fireRequest(vmath.FromInt(800), vmath.FromInt(160), 25, 1))

	for i := 0; i < 2; i++ {
		tick(w, 100*time.Millisecond)
	}
	if n := w.Components.Bullet.Count(); n != 1 {
		t.Fatalf("bullet removed before dissolve completed")
	}

	// Dissolve lasts 150ms
	for i := 0; i < 2; i++ {
		tick(w, 100*time.Millisecond)
	}
	if n := w.Components.Bullet.Count(); n != 0 {
		t.Errorf("dissolved bullet not removed, %d remain", n)
	}
	if got := healthOf(w, outOfReach); got != 50 {
		t.Errorf("target beyond range took damage, health = %d", got)
	}
}

// Holding the trigger fires on the ramped cadence and releasing resets it
func TestContinuousFireRamp(t *testing.T) {
	w := newTestWorld()
	center := vmath.FromInt(2048)
	addPlayer(w, center, center)
	w.AddSystem(NewBulletSystem(w))

	w.PushEvent(event.EventTriggerState, &event.TriggerStatePayload{Pressed: true})

	// 2s held: 250ms easing to 80ms over 1.5s averages well under 250ms,
	// so strictly more shots than the un-ramped cadence would allow
	for i := 0; i < 200; i++ {
		tick(w, 10*time.Millisecond)
	}
	got := w.Components.Bullet.Count()
	unramped := int(2 * time.Second / parameter.FireIntervalInitial)
	if got <= unramped {
		t.Errorf("ramped fire produced %d bullets, want more than %d", got, unramped)
	}

	w.PushEvent(event.EventTriggerState, &event.TriggerStatePayload{Pressed: false})
	tick(w, 10*time.Millisecond)
	before := w.Components.Bullet.Count()
	for i := 0; i < 10; i++ {
		tick(w, 10*time.Millisecond)
	}
	if w.Components.Bullet.Count() != before {
		t.Error("bullets fired after trigger release")
	}
}
