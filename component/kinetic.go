package component

import (
	"github.com/exporterrormusic/kingdom-arena/core"
)

// KineticComponent provides a reusable kinematic container for entities requiring sub-unit motion
// Uses Q32.32 fixed-point arithmetic for deterministic integration
type KineticComponent struct {
	core.Kinetic
}
