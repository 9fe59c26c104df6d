package system

import (
	"github.com/exporterrormusic/kingdom-arena/component"
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// MeleeSystem manages time-windowed arc sweeps
// A sweep is its own entity anchored to the attacker; the anchor and
// heading track the attacker every tick until either the window closes or
// the attacker is gone, in which case the sweep freezes in place for its
// remaining frames
type MeleeSystem struct {
	world   *engine.World
	enabled bool
}

func NewMeleeSystem(world *engine.World) engine.System {
	s := &MeleeSystem{world: world}
	s.Init()
	return s
}

func (s *MeleeSystem) Init() {
	s.enabled = true
}

func (s *MeleeSystem) Name() string { return "melee" }

func (s *MeleeSystem) Priority() int { return parameter.PriorityMelee }

func (s *MeleeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMeleeSweepRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *MeleeSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if p, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
	case event.EventMeleeSweepRequest:
		if !s.enabled {
			return
		}
		if p, ok := ev.Payload.(*event.MeleeSweepRequestPayload); ok {
			s.beginSweep(p)
		}
	}
}

func (s *MeleeSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime

	for _, e := range s.world.Components.Melee.All() {
		sweep, ok := s.world.Components.Melee.Get(e)
		if !ok {
			continue
		}

		sweep.Age += dt
		if sweep.Expired() {
			s.world.Components.Death.Set(e, component.DeathComponent{})
			s.world.Components.Melee.Set(e, sweep)
			continue
		}

		s.refreshAnchor(&sweep)
		s.world.Components.Melee.Set(e, sweep)
	}
}

// refreshAnchor re-reads the attacker's position and heading; a vanished
// attacker leaves the last-known anchor in place
func (s *MeleeSystem) refreshAnchor(sweep *component.MeleeSweepComponent) {
	if !s.world.Alive(sweep.Attacker) {
		return
	}
	kinetic, ok := s.world.Components.Kinetic.Get(sweep.Attacker)
	if !ok {
		return
	}

	sweep.OriginX = kinetic.PreciseX
	sweep.OriginY = kinetic.PreciseY
	sweep.Facing = vmath.NormalizeAngle(s.attackerHeading(sweep.Attacker) + sweep.RelativeAngle)
}

// attackerHeading resolves the base direction the sweep is offset from:
// player aim for the player entity, agent facing for anyone else
func (s *MeleeSystem) attackerHeading(attacker core.Entity) int64 {
	if player, ok := s.world.Components.Player.Get(attacker); ok {
		return player.Aim
	}
	if enemy, ok := s.world.Components.Enemy.Get(attacker); ok {
		return enemy.Facing
	}
	return 0
}

func (s *MeleeSystem) beginSweep(p *event.MeleeSweepRequestPayload) {
	reach := p.Reach
	if reach <= 0 {
		reach = parameter.MeleeDefRange
	}
	halfWidth := p.HalfWidth
	if halfWidth <= 0 {
		halfWidth = parameter.MeleeArcHalfWidth
	}
	damage := p.Damage
	if damage <= 0 {
		damage = parameter.MeleeDefaultDamage
	}
	duration := p.Duration
	if duration <= 0 {
		duration = parameter.MeleeDefaultDuration
	}

	sweep := component.MeleeSweepComponent{
		Attacker:      p.Attacker,
		RelativeAngle: p.RelativeAngle,
		Reach:         reach,
		HalfWidth:     halfWidth,
		Damage:        damage,
		Duration:      duration,
	}
	s.refreshAnchor(&sweep)

	e := s.world.CreateEntity()
	s.world.Components.Melee.Set(e, sweep)
}
