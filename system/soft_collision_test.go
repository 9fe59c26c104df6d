package system

import (
	"testing"
	"time"

	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// Two overlapping agents are pushed apart a little each tick until their
// padded bubbles no longer intersect; the correction is monotonic
func TestSeparationPushesOverlappingAgentsApart(t *testing.T) {
	w := newTestWorld()
	origin := vmath.FromInt(1000)
	a := addEnemy(w, origin, origin, 50)
	b := addEnemy(w, origin+vmath.FromInt(5), origin, 50)
	w.AddSystem(NewSoftCollisionSystem(w))

	gap := func() int64 {
		ka, _ := w.Components.Kinetic.Get(a)
		kb, _ := w.Components.Kinetic.Get(b)
		return vmath.DistanceApprox(kb.PreciseX-ka.PreciseX, kb.PreciseY-ka.PreciseY)
	}

	prev := gap()
	for i := 0; i < 60; i++ {
		tick(w, 33*time.Millisecond)
		cur := gap()
		if cur < prev {
			t.Fatalf("tick %d: agents moved closer (%v -> %v)",
				i, vmath.ToFloat(prev), vmath.ToFloat(cur))
		}
		prev = cur
	}

	// Bubble = radius 15 + buffer 15, so rest distance approaches 60
	if got := vmath.ToFloat(prev); got < 40 {
		t.Errorf("final separation %v, want pushed most of the way to 60", got)
	}
}

// Exactly coincident agents still separate along the fallback axis
func TestSeparationHandlesCoincidentCenters(t *testing.T) {
	w := newTestWorld()
	origin := vmath.FromInt(1000)
	a := addEnemy(w, origin, origin, 50)
	b := addEnemy(w, origin, origin, 50)
	w.AddSystem(NewSoftCollisionSystem(w))

	for i := 0; i < 30; i++ {
		tick(w, 33*time.Millisecond)
	}

	ka, _ := w.Components.Kinetic.Get(a)
	kb, _ := w.Components.Kinetic.Get(b)
	if ka.PreciseX == kb.PreciseX && ka.PreciseY == kb.PreciseY {
		t.Error("coincident agents never separated")
	}
}

// An agent wedged between two neighbors is damped once for the tick,
// not once per overlapping pair
func TestSeparationDampsOncePerAgent(t *testing.T) {
	w := newTestWorld()
	origin := vmath.FromInt(1000)
	addEnemy(w, origin-vmath.FromInt(5), origin, 50)
	mid := addEnemy(w, origin, origin, 50)
	addEnemy(w, origin+vmath.FromInt(5), origin, 50)
	w.AddSystem(NewSoftCollisionSystem(w))

	velocity := vmath.FromInt(100)
	k, _ := w.Components.Kinetic.Get(mid)
	k.VelX = velocity
	w.Components.Kinetic.Set(mid, k)

	tick(w, 33*time.Millisecond)

	want := vmath.Mul(velocity, parameter.EnemySeparationDamp)
	k, _ = w.Components.Kinetic.Get(mid)
	if k.VelX != want {
		t.Fatalf("velocity %v after tick, want %v damped exactly once",
			vmath.ToFloat(k.VelX), vmath.ToFloat(want))
	}
}

// Disjoint agents are left untouched
func TestSeparationIgnoresDistantAgents(t *testing.T) {
	w := newTestWorld()
	origin := vmath.FromInt(1000)
	a := addEnemy(w, origin, origin, 50)
	b := addEnemy(w, origin+vmath.FromInt(200), origin, 50)
	w.AddSystem(NewSoftCollisionSystem(w))

	tick(w, 33*time.Millisecond)

	ka, _ := w.Components.Kinetic.Get(a)
	kb, _ := w.Components.Kinetic.Get(b)
	if ka.PreciseX != origin || kb.PreciseX != origin+vmath.FromInt(200) {
		t.Error("non-overlapping agents were moved")
	}
}
