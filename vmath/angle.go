package vmath

// Angle representation: Q32.32 rotation units where Scale = full rotation (2π)

// NormalizeAngle wraps angle to [0, Scale)
func NormalizeAngle(angle int64) int64 {
	for angle >= Scale {
		angle -= Scale
	}
	for angle < 0 {
		angle += Scale
	}
	return angle
}

// AngleDiff returns shortest signed difference between angles
// Result in [-Scale/2, Scale/2]
func AngleDiff(from, to int64) int64 {
	diff := NormalizeAngle(to) - NormalizeAngle(from)
	if diff > Scale/2 {
		diff -= Scale
	} else if diff < -Scale/2 {
		diff += Scale
	}
	return diff
}

// AngleFromVector returns the rotation-unit heading of (dx, dy)
func AngleFromVector(dx, dy int64) int64 {
	return Atan2(dy, dx)
}

// VectorFromAngle returns the unit vector at the given heading
func VectorFromAngle(angle int64) (x, y int64) {
	return Cos(angle), Sin(angle)
}

// DegreesToAngle converts whole degrees to rotation units
func DegreesToAngle(deg int) int64 {
	return int64(deg) * Scale / 360
}

// Sector discretizes an angle into one of n equal sectors starting at 0
// Used for facing-category selection (animation direction)
func Sector(angle int64, n int) int {
	if n <= 0 {
		return 0
	}
	a := NormalizeAngle(angle + Scale/int64(n*2)) // Center sectors on axes
	return int(a * int64(n) / Scale)
}
