package parameter

import "time"

// Event queue sizing (power of two for mask arithmetic)
const (
	EventQueueSize  = 1024
	EventBufferMask = EventQueueSize - 1
)

// Simulation tick
const (
	// TickRate is the fixed simulation frequency driven by the frame loop
	TickRate = 30

	// MaxDeltaSeconds caps dt after stalls so physics cannot explode
	MaxDeltaSecondsFloat = 0.1
	MaxDeltaDuration     = 100 * time.Millisecond
)

// Default world extent in whole units (overridable via config)
const (
	WorldWidth  = 4096
	WorldHeight = 4096
)
