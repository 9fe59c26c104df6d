package system

import (
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/physics"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// collisionEntry caches one agent's position for the pair pass
type collisionEntry struct {
	entity core.Entity
	x, y   int64
	bubble int64 // Radius plus separation buffer
	nudged bool  // Touched at least one neighbor this tick
}

// SoftCollisionSystem applies pairwise agent separation ("bubble physics")
// Every overlapping unordered pair is pushed apart along the
// center-to-center axis by a fraction of the overlap, split evenly; each
// nudged agent's velocity is then damped once per tick to suppress
// oscillation, regardless of how many neighbors it touched
// Full O(n²) each tick; acceptable at the designed agent cap
type SoftCollisionSystem struct {
	world   *engine.World
	enabled bool

	entries []collisionEntry // Reused across ticks
}

func NewSoftCollisionSystem(world *engine.World) engine.System {
	s := &SoftCollisionSystem{
		world:   world,
		entries: make([]collisionEntry, 0, 64),
	}
	s.Init()
	return s
}

func (s *SoftCollisionSystem) Init() {
	s.enabled = true
}

func (s *SoftCollisionSystem) Name() string { return "soft_collision" }

func (s *SoftCollisionSystem) Priority() int { return parameter.PrioritySeparation }

func (s *SoftCollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *SoftCollisionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if p, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
	}
}

func (s *SoftCollisionSystem) Update() {
	if !s.enabled {
		return
	}

	// Rebuild the position cache for this tick
	s.entries = s.entries[:0]
	for _, e := range s.world.Components.Enemy.All() {
		enemy, ok := s.world.Components.Enemy.Get(e)
		if !ok {
			continue
		}
		kinetic, ok := s.world.Components.Kinetic.Get(e)
		if !ok {
			continue
		}
		s.entries = append(s.entries, collisionEntry{
			entity: e,
			x:      kinetic.PreciseX,
			y:      kinetic.PreciseY,
			bubble: enemy.Radius + parameter.EnemySeparationBuffer,
		})
	}

	for i := 0; i < len(s.entries); i++ {
		for j := i + 1; j < len(s.entries); j++ {
			s.separate(&s.entries[i], &s.entries[j])
		}
	}

	for i := range s.entries {
		if !s.entries[i].nudged {
			continue
		}
		if kinetic, ok := s.world.Components.Kinetic.Get(s.entries[i].entity); ok {
			physics.Damp(&kinetic.Kinetic, parameter.EnemySeparationDamp)
			s.world.Components.Kinetic.Set(s.entries[i].entity, kinetic)
		}
	}
}

// separate pushes an overlapping pair apart
func (s *SoftCollisionSystem) separate(a, b *collisionEntry) {
	overlap := vmath.CircleOverlapDepth(a.x, a.y, a.bubble, b.x, b.y, b.bubble)
	if overlap <= 0 {
		return
	}

	nx, ny := vmath.Normalize2D(b.x-a.x, b.y-a.y)
	if nx == 0 && ny == 0 {
		// Coincident centers: pick an arbitrary axis
		nx = vmath.Scale
	}

	// Correct a fraction of the overlap per tick, split evenly
	push := vmath.Mul(overlap, parameter.EnemySeparationPush) / 2
	pushX, pushY := vmath.Mul(nx, push), vmath.Mul(ny, push)

	s.apply(a.entity, -pushX, -pushY)
	s.apply(b.entity, pushX, pushY)
	a.nudged = true
	b.nudged = true

	// Keep the cache consistent for later pairs in the same pass
	a.x -= pushX
	a.y -= pushY
	b.x += pushX
	b.y += pushY
}

func (s *SoftCollisionSystem) apply(e core.Entity, dx, dy int64) {
	kinetic, ok := s.world.Components.Kinetic.Get(e)
	if !ok {
		return
	}
	physics.Nudge(&kinetic.Kinetic, dx, dy)
	s.world.Components.Kinetic.Set(e, kinetic)
}
