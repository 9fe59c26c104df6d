package parameter

import "time"

const (
	MeleeArcHalfWidthDeg = 45
	MeleeDefaultDuration = 400 * time.Millisecond
	MeleeDefaultRange    = 150.0
	MeleeDefaultDamage   = 40

	// MeleeWipeFactorFloat: current range = full * min(1, progress * factor),
	// so the wipe completes in the first two thirds of the duration
	MeleeWipeFactorFloat = 1.5
)
