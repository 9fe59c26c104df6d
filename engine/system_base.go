package engine

import (
	"github.com/exporterrormusic/kingdom-arena/event"
)

// System is the interface all simulation systems implement
// Systems run in Priority order (lower first); events are delivered
// before Update each tick, only for the types a system declares
type System interface {
	Name() string
	Priority() int
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
	Update()
}
