package component

import "time"

// WaveState is the difficulty-epoch record owned by the spawn director
type WaveState struct {
	Wave  int
	Kills int // Kills this level, drives advancement

	BaseInterval    time.Duration // Tightened per wave
	CurrentInterval time.Duration // After all multipliers, floored

	Elapsed        time.Duration // Level time, drives the time ramp
	GraceRemaining time.Duration
}
