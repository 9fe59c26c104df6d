package vmath

// Circle and segment primitives for hit testing
// All coordinates and radii are Q32.32 world units

// CircleOverlap reports whether two circles intersect or touch
// Compares against DistanceApprox; the ~4% error is uniform across callers
func CircleOverlap(x1, y1, r1, x2, y2, r2 int64) bool {
	return DistanceApprox(x2-x1, y2-y1) <= r1+r2
}

// CircleOverlapDepth returns penetration depth, or <= 0 when separated
func CircleOverlapDepth(x1, y1, r1, x2, y2, r2 int64) int64 {
	return r1 + r2 - DistanceApprox(x2-x1, y2-y1)
}

// PointInCircle reports whether point (px, py) lies within the circle
func PointInCircle(px, py, cx, cy, r int64) bool {
	return DistanceApprox(px-cx, py-cy) <= r
}

// PointSegmentDistance returns the distance from point p to segment a-b
// A zero-length segment degrades to a point-distance check
func PointSegmentDistance(px, py, ax, ay, bx, by int64) int64 {
	abx, aby := bx-ax, by-ay
	if abx == 0 && aby == 0 {
		return DistanceApprox(px-ax, py-ay)
	}

	apx, apy := px-ax, py-ay
	lenSq := Mul(abx, abx) + Mul(aby, aby)
	t := Div(Mul(apx, abx)+Mul(apy, aby), lenSq)
	t = Clamp(t, 0, Scale)

	closestX := ax + Mul(abx, t)
	closestY := ay + Mul(aby, t)
	return DistanceApprox(px-closestX, py-closestY)
}

// SegmentCircleHit reports whether segment a-b passes within r of (cx, cy)
// Used for swept projectile tests so fast bullets cannot tunnel through targets
func SegmentCircleHit(ax, ay, bx, by, cx, cy, r int64) bool {
	return PointSegmentDistance(cx, cy, ax, ay, bx, by) <= r
}

// PointInArc reports whether the target at (tx, ty) lies inside an arc
// centered at (ox, oy), facing the given heading, with the given reach
// and angular half-width (all in rotation units / Q32.32)
func PointInArc(tx, ty, ox, oy, facing, reach, halfWidth int64) bool {
	dx, dy := tx-ox, ty-oy
	if DistanceApprox(dx, dy) > reach {
		return false
	}
	bearing := AngleFromVector(dx, dy)
	return Abs(AngleDiff(facing, bearing)) <= halfWidth
}
