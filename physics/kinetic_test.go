package physics

import (
	"testing"

	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

func TestIntegrateConstantVelocity(t *testing.T) {
	k := core.Kinetic{VelX: vmath.FromInt(800)}
	dt := vmath.FromFloat(0.5)

	Integrate(&k, dt)

	if got := vmath.ToInt(k.PreciseX); got != 400 {
		t.Errorf("position after 0.5s at 800 u/s = %d, want 400", got)
	}
	if k.PreciseY != 0 {
		t.Errorf("Y should be untouched, got %v", vmath.ToFloat(k.PreciseY))
	}
}

func TestIntegrateAcceleration(t *testing.T) {
	k := core.Kinetic{AccelX: vmath.FromInt(100)}
	dt := vmath.FromFloat(0.1)

	for i := 0; i < 10; i++ {
		Integrate(&k, dt)
	}

	// Semi-implicit Euler after 1s at 100 u/s²: v = 100
	v := vmath.ToFloat(k.VelX)
	if v < 99 || v > 101 {
		t.Errorf("velocity after 1s = %v, want 100", v)
	}
}

func TestCapSpeed(t *testing.T) {
	k := core.Kinetic{VelX: vmath.FromInt(300), VelY: vmath.FromInt(400)}
	CapSpeed(&k, vmath.FromInt(100))

	mag := vmath.ToFloat(vmath.Magnitude(k.VelX, k.VelY))
	if mag > 105 { // DistanceApprox tolerance
		t.Errorf("capped speed = %v, want <= ~100", mag)
	}
}

func TestDamp(t *testing.T) {
	k := core.Kinetic{VelX: vmath.FromInt(100)}
	Damp(&k, vmath.FromFloat(0.9))
	if got := vmath.ToFloat(k.VelX); got < 89.9 || got > 90.1 {
		t.Errorf("damped velocity = %v, want 90", got)
	}
}

func TestClampToRect(t *testing.T) {
	r := core.Rect{MinX: 0, MinY: 0, MaxX: vmath.FromInt(100), MaxY: vmath.FromInt(100)}
	k := core.Kinetic{PreciseX: vmath.FromInt(-5), PreciseY: vmath.FromInt(50), VelX: -vmath.FromInt(10)}

	ClampToRect(&k, r)

	if k.PreciseX != 0 {
		t.Errorf("X should clamp to 0, got %v", vmath.ToFloat(k.PreciseX))
	}
	if k.VelX != 0 {
		t.Error("velocity on clamped axis should zero")
	}
	if k.PreciseY != vmath.FromInt(50) {
		t.Error("unclamped axis should be untouched")
	}
}
