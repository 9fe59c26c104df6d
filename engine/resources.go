package engine

import (
	"time"

	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/status"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// TimeResource wraps time data for systems
// Updated by the frame loop at the start of a tick
type TimeResource struct {
	// GameTime is accumulated simulation time
	GameTime time.Duration

	// DeltaTime is the duration since the last update, capped by the loop
	DeltaTime time.Duration

	// DeltaFixed is DeltaTime in Q32.32 seconds, precomputed once per tick
	DeltaFixed int64

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Advance moves the clock one tick
func (t *TimeResource) Advance(dt time.Duration) {
	t.GameTime += dt
	t.DeltaTime = dt
	t.DeltaFixed = vmath.FromFloat(dt.Seconds())
	t.FrameNumber++
}

// TerrainResource is the static obstacle query collaborator
// A nil Blocked degrades to "never blocked"
type TerrainResource struct {
	Blocked func(x, y int64) bool
}

// IsBlocked queries the terrain at a Q32.32 world position
func (t *TerrainResource) IsBlocked(x, y int64) bool {
	if t == nil || t.Blocked == nil {
		return false
	}
	return t.Blocked(x, y)
}

// BoundsResource holds the world boundary and current camera view
type BoundsResource struct {
	World  core.Rect
	Camera core.Rect
}

// PlayerResource caches the player entity for hot-path access
type PlayerResource struct {
	Entity core.Entity
}

// Resources is the typed facade handed to every system
type Resources struct {
	Time    *TimeResource
	Terrain *TerrainResource
	Bounds  *BoundsResource
	Player  *PlayerResource
	Status  *status.Registry
	Config  *ConfigResource
}

// ConfigResource carries simulation tunables resolved at startup
// Systems read it instead of package-level weapon/wave lookups
type ConfigResource struct {
	// Spawn scheduling
	SpawnBaseInterval time.Duration
	GracePeriod       time.Duration
	EnemyCapBase      int
	EnemyCapMax       int

	// Player weapon
	FireIntervalInitial time.Duration
	FireIntervalMin     time.Duration
	FireRampTime        time.Duration

	// Simulation
	Seed uint64
}
