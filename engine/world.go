package engine

import (
	"sync"

	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/status"
)

// World contains all entities and their components using typed stores
type World struct {
	mu sync.RWMutex

	// Generational entity arena: generations[i] is the live generation
	// for slot i; destroyed slots go to the free list and their
	// generation is bumped so stale handles never alias new occupants
	generations []uint32
	free        []uint32

	Components ComponentStore
	Resources  Resources

	allStores []AnyStore

	eventQueue  *event.EventQueue
	subscribers map[event.EventType][]System
	tap         func(event.GameEvent)

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with typed component stores
func NewWorld() *World {
	w := &World{
		generations: make([]uint32, 1, 256), // Slot 0 reserved for EntityNone
		eventQueue:  event.NewEventQueue(),
		subscribers: make(map[event.EventType][]System),
		systems:     make([]System, 0),
	}
	w.Components, w.allStores = newComponentStore()
	w.Resources = Resources{
		Time:    &TimeResource{},
		Terrain: &TerrainResource{},
		Bounds:  &BoundsResource{},
		Player:  &PlayerResource{},
		Status:  status.NewRegistry(),
		Config:  &ConfigResource{},
	}
	return w
}

// CreateEntity allocates a generational handle
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		return core.MakeEntity(idx, w.generations[idx])
	}

	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	return core.MakeEntity(idx, 1)
}

// Alive reports whether the handle still refers to a live entity
func (w *World) Alive(e core.Entity) bool {
	if e == core.EntityNone {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	idx := e.Index()
	return idx < uint32(len(w.generations)) && w.generations[idx] == e.Generation()
}

// DestroyEntity removes all components and retires the handle
// Destroying a stale handle is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	idx := e.Index()
	if e == core.EntityNone || idx >= uint32(len(w.generations)) || w.generations[idx] != e.Generation() {
		w.mu.Unlock()
		return
	}
	w.generations[idx]++
	w.free = append(w.free, idx)
	w.mu.Unlock()

	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.generations = make([]uint32, 1, 256)
	w.free = w.free[:0]
	w.mu.Unlock()

	for _, s := range w.allStores {
		s.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	for _, t := range system.EventTypes() {
		w.subscribers[t] = append(w.subscribers[t], system)
	}
}

// Systems returns the priority-ordered system list
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// SetEventTap registers an external observer for all routed events
// Collaborators (scoring, audio, effects) consume the tick's events here;
// the tap must never block
func (w *World) SetEventTap(tap func(event.GameEvent)) {
	w.tap = tap
}

// PushEvent emits a game event; hot path for all system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// Update routes pending events then runs all systems in priority order
func (w *World) Update() {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.routeEvents()

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

func (w *World) routeEvents() {
	for _, ev := range w.eventQueue.Consume() {
		if w.tap != nil {
			w.tap(ev)
		}
		for _, s := range w.subscribers[ev.Type] {
			s.HandleEvent(ev)
		}
	}
}
