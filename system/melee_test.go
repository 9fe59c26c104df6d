package system

import (
	"testing"
	"time"

	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// A 400ms 45-degree sweep aimed along +X hits a target at bearing 0 once
// the wipe reaches its distance, exactly once, and never hits a target at
// bearing 90
func TestMeleeSweepArcWindow(t *testing.T) {
	w := newTestWorld()
	origin := vmath.FromInt(1000)
	player := addPlayer(w, origin, origin)
	w.AddSystem(NewMeleeSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewCullSystem(w))

	inArc := addEnemy(w, origin+vmath.FromInt(150), origin, 50)
	offArc := addEnemy(w, origin, origin+vmath.FromInt(150), 50)

	w.PushEvent(event.EventMeleeSweepRequest, &event.MeleeSweepRequestPayload{
		Attacker:  player,
		Reach:     vmath.FromInt(300),
		HalfWidth: parameter.MeleeArcHalfWidth,
		Damage:    40,
		Duration:  400 * time.Millisecond,
	})

	// Run well past the activation window
	for i := 0; i < 12; i++ { // 600ms
		tick(w, 50*time.Millisecond)
	}

	if got := healthOf(w, inArc); got != 10 {
		t.Errorf("in-arc target health = %d, want 10 (exactly one 40-damage hit)", got)
	}
	if got := healthOf(w, offArc); got != 50 {
		t.Errorf("off-arc target health = %d, want untouched 50", got)
	}
	if n := w.Components.Melee.Count(); n != 0 {
		t.Errorf("expired sweep not removed, %d remain", n)
	}
}

// The wipe grows outward: a distant target is only reachable late in the
// window, a near one early
func TestMeleeWipeRampsOutward(t *testing.T) {
	w := newTestWorld()
	origin := vmath.FromInt(1000)
	player := addPlayer(w, origin, origin)
	w.AddSystem(NewMeleeSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewCullSystem(w))

	near := addEnemy(w, origin+vmath.FromInt(40), origin, 50)
	far := addEnemy(w, origin+vmath.FromInt(270), origin, 50)

	w.PushEvent(event.EventMeleeSweepRequest, &event.MeleeSweepRequestPayload{
		Attacker:  player,
		Reach:     vmath.FromInt(300),
		HalfWidth: parameter.MeleeArcHalfWidth,
		Damage:    40,
		Duration:  400 * time.Millisecond,
	})

	// Early in the window only the near target is inside the wipe
	// reach(t) = 300 * min(1, 1.5*t/0.4); at 50ms that is ~56 units
	tick(w, 50*time.Millisecond)
	if got := healthOf(w, near); got != 10 {
		t.Errorf("near target health = %d early in the wipe, want 10", got)
	}
	if got := healthOf(w, far); got != 50 {
		t.Errorf("far target hit before the wipe reached it, health = %d", got)
	}

	for i := 0; i < 7; i++ { // Through the rest of the window
		tick(w, 50*time.Millisecond)
	}
	if got := healthOf(w, far); got != 10 {
		t.Errorf("far target health = %d after full wipe, want 10", got)
	}
}

// The sweep anchor tracks the attacker while alive
func TestMeleeSweepTracksAttacker(t *testing.T) {
	w := newTestWorld()
	origin := vmath.FromInt(1000)
	player := addPlayer(w, origin, origin)
	w.AddSystem(NewMeleeSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewCullSystem(w))

	// Beyond full reach from the spawn anchor; only reachable if the
	// anchor follows the player's movement
	target := addEnemy(w, origin+vmath.FromInt(500), origin, 50)

	w.PushEvent(event.EventMeleeSweepRequest, &event.MeleeSweepRequestPayload{
		Attacker:  player,
		Reach:     vmath.FromInt(300),
		HalfWidth: parameter.MeleeArcHalfWidth,
		Damage:    40,
		Duration:  400 * time.Millisecond,
	})

	tick(w, 50*time.Millisecond)
	if got := healthOf(w, target); got != 50 {
		t.Fatalf("target hit while out of reach, health = %d", got)
	}

	// Teleport the player forward; the sweep should follow and connect
	pk, _ := w.Components.Kinetic.Get(player)
	pk.PreciseX = origin + vmath.FromInt(400)
	w.Components.Kinetic.Set(player, pk)

	for i := 0; i < 7; i++ {
		tick(w, 50*time.Millisecond)
	}
	if got := healthOf(w, target); got != 10 {
		t.Errorf("tracked sweep missed, target health = %d, want 10", got)
	}
}
