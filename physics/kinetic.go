package physics

import (
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// Integrate advances position and velocity by dt (Q32.32 seconds)
// Semi-implicit Euler: velocity first, then position
func Integrate(k *core.Kinetic, dt int64) {
	k.VelX += vmath.Mul(k.AccelX, dt)
	k.VelY += vmath.Mul(k.AccelY, dt)
	k.PreciseX += vmath.Mul(k.VelX, dt)
	k.PreciseY += vmath.Mul(k.VelY, dt)
}

// CapSpeed limits velocity magnitude to maxSpeed, preserving direction
func CapSpeed(k *core.Kinetic, maxSpeed int64) {
	k.VelX, k.VelY = vmath.ClampMagnitude(k.VelX, k.VelY, maxSpeed)
}

// Damp scales velocity by factor (Q32.32, Scale = unchanged)
// Used by separation passes to suppress oscillation
func Damp(k *core.Kinetic, factor int64) {
	k.VelX = vmath.Mul(k.VelX, factor)
	k.VelY = vmath.Mul(k.VelY, factor)
}

// ApplyImpulse adds a velocity delta
func ApplyImpulse(k *core.Kinetic, ix, iy int64) {
	k.VelX += ix
	k.VelY += iy
}

// SetHeading replaces velocity with speed along the given unit direction
func SetHeading(k *core.Kinetic, dirX, dirY, speed int64) {
	k.VelX = vmath.Mul(dirX, speed)
	k.VelY = vmath.Mul(dirY, speed)
}

// ClampToRect confines position to the rectangle, zeroing velocity on the
// clamped axis so entities do not grind against the boundary
func ClampToRect(k *core.Kinetic, r core.Rect) {
	if k.PreciseX < r.MinX {
		k.PreciseX = r.MinX
		k.VelX = 0
	} else if k.PreciseX > r.MaxX {
		k.PreciseX = r.MaxX
		k.VelX = 0
	}
	if k.PreciseY < r.MinY {
		k.PreciseY = r.MinY
		k.VelY = 0
	} else if k.PreciseY > r.MaxY {
		k.PreciseY = r.MaxY
		k.VelY = 0
	}
}

// Nudge displaces position directly without touching velocity
// Used by pairwise separation; the push is positional, not an impulse
func Nudge(k *core.Kinetic, dx, dy int64) {
	k.PreciseX += dx
	k.PreciseY += dy
}
