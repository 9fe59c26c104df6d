package system

import (
	"testing"
	"time"

	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// Agents always seek: an agent far outside the detection radius still
// closes on the player, just slower
func TestEnemyAlwaysSeeksPlayer(t *testing.T) {
	w := newTestWorld()
	center := vmath.FromInt(2048)
	addPlayer(w, center, center)
	w.AddSystem(NewEnemySystem(w))

	agent := addEnemy(w, center+vmath.FromInt(2000), center, 50)

	gap := func() int64 {
		k, _ := w.Components.Kinetic.Get(agent)
		return vmath.DistanceApprox(k.PreciseX-center, k.PreciseY-center)
	}

	before := gap()
	for i := 0; i < 30; i++ {
		tick(w, 33*time.Millisecond)
	}
	after := gap()

	if after >= before {
		t.Errorf("agent outside detection radius did not close: %v -> %v",
			vmath.ToFloat(before), vmath.ToFloat(after))
	}
}

// Agents past the cull distance are removed without a kill event
func TestEnemyCullWithoutKillCredit(t *testing.T) {
	w := newTestWorld()
	corner := vmath.FromInt(100)
	addPlayer(w, corner, corner)
	w.AddSystem(NewEnemySystem(w))
	w.AddSystem(NewCullSystem(w))

	kills := 0
	w.SetEventTap(func(ev event.GameEvent) {
		if ev.Type == event.EventKill {
			kills++
		}
	})

	// Opposite corner, well past the 3000-unit cull distance
	far := addEnemy(w, vmath.FromInt(4000), vmath.FromInt(4000), 50)

	for i := 0; i < 3; i++ {
		tick(w, 33*time.Millisecond)
	}

	if w.Alive(far) {
		t.Error("out-of-range agent not culled")
	}
	if kills != 0 {
		t.Errorf("cull emitted %d kill events, want 0", kills)
	}
}

// An agent embedded in blocked terrain is snapped to the nearest open
// candidate instead of staying stuck
func TestEnemyExtractsFromTerrain(t *testing.T) {
	w := newTestWorld()
	center := vmath.FromInt(2048)
	addPlayer(w, center, center)

	// Blocked region: x < center - 400
	wall := center - vmath.FromInt(400)
	w.Resources.Terrain.Blocked = func(x, y int64) bool {
		return x < wall
	}
	w.AddSystem(NewEnemySystem(w))

	agent := addEnemy(w, wall-vmath.FromInt(4), center, 50)

	tick(w, 33*time.Millisecond)

	k, _ := w.Components.Kinetic.Get(agent)
	if w.Resources.Terrain.IsBlocked(k.PreciseX, k.PreciseY) {
		t.Errorf("agent still embedded at x=%v after extraction",
			vmath.ToFloat(k.PreciseX))
	}
}

// The facing sector only changes after its cooldown, suppressing flicker
func TestEnemyFacingSectorCooldown(t *testing.T) {
	w := newTestWorld()
	center := vmath.FromInt(2048)
	player := addPlayer(w, center, center+vmath.FromInt(300))
	w.AddSystem(NewEnemySystem(w))

	agent := addEnemy(w, center, center, 50)

	tick(w, 33*time.Millisecond)
	e, _ := w.Components.Enemy.Get(agent)
	first := e.FacingSector

	// Swing the player to the opposite side; the sector must hold until
	// the cooldown expires
	pk, _ := w.Components.Kinetic.Get(player)
	pk.PreciseY = center - vmath.FromInt(300)
	w.Components.Kinetic.Set(player, pk)

	tick(w, 33*time.Millisecond)
	e, _ = w.Components.Enemy.Get(agent)
	if e.FacingSector != first {
		t.Fatal("facing sector changed inside the cooldown window")
	}

	for i := 0; i < 16; i++ { // Past the 500ms cooldown
		tick(w, 33*time.Millisecond)
	}
	e, _ = w.Components.Enemy.Get(agent)
	if e.FacingSector == first {
		t.Error("facing sector never updated after the cooldown")
	}
}

// Shooter agents in range emit hostile fire requests
func TestEnemyRangedAttack(t *testing.T) {
	w := newTestWorld()
	center := vmath.FromInt(2048)
	addPlayer(w, center, center)
	w.AddSystem(NewEnemySystem(w))

	agent := addEnemy(w, center+vmath.FromInt(200), center, 50)
	e, _ := w.Components.Enemy.Get(agent)
	e.Shooter = true
	e.FireCooldown = 0
	w.Components.Enemy.Set(agent, e)

	fired := 0
	w.SetEventTap(func(ev event.GameEvent) {
		if ev.Type == event.EventBulletFireRequest {
			p := ev.Payload.(*event.BulletFireRequestPayload)
			if p.Faction != core.FactionHostile {
				t.Errorf("agent fired faction %d", p.Faction)
			}
			fired++
		}
	})

	for i := 0; i < 30; i++ { // ~1s, multiple cooldown cycles
		tick(w, 33*time.Millisecond)
	}
	if fired == 0 {
		t.Error("in-range shooter never fired")
	}
}
