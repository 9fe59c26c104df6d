package core

type Kinetic struct {
	// PreciseX and PreciseY are sub-unit coordinates in Q32.32 format
	PreciseX, PreciseY int64
	// VelX and VelY represent velocity in world units per second (Q32.32)
	VelX, VelY int64
	// AccelX and AccelY represent acceleration in world units per second squared (Q32.32)
	AccelX, AccelY int64
}
