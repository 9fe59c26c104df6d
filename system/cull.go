package system

import (
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
)

// CullSystem runs last and destroys every entity tagged for removal
// during the tick; no other system destroys entities directly, so the
// world stays consistent within a frame
type CullSystem struct {
	world   *engine.World
	enabled bool
}

func NewCullSystem(world *engine.World) engine.System {
	s := &CullSystem{world: world}
	s.Init()
	return s
}

func (s *CullSystem) Init() {
	s.enabled = true
}

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int { return parameter.PriorityCleanup }

func (s *CullSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *CullSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if p, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
	}
}

func (s *CullSystem) Update() {
	if !s.enabled {
		return
	}

	for _, e := range s.world.Components.Death.All() {
		s.world.DestroyEntity(e)
	}
}
