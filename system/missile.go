package system

import (
	"github.com/exporterrormusic/kingdom-arena/component"
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/physics"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// MissileSystem drives the missile lifecycle: fly toward the fixed target
// point, detonate on arrival or flight timeout, expand the blast, finish
// Proximity detonation against valid targets mid-flight belongs to the
// collision resolver, which sees both sides of the pair
type MissileSystem struct {
	world   *engine.World
	enabled bool
}

func NewMissileSystem(world *engine.World) engine.System {
	s := &MissileSystem{world: world}
	s.Init()
	return s
}

func (s *MissileSystem) Init() {
	s.enabled = true
}

func (s *MissileSystem) Name() string { return "missile" }

func (s *MissileSystem) Priority() int { return parameter.PriorityMissile }

func (s *MissileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMissileLaunchRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *MissileSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if p, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
	case event.EventMissileLaunchRequest:
		if !s.enabled {
			return
		}
		if p, ok := ev.Payload.(*event.MissileLaunchRequestPayload); ok {
			s.launch(p)
		}
	}
}

func (s *MissileSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	dtFixed := s.world.Resources.Time.DeltaFixed

	for _, e := range s.world.Components.Missile.All() {
		missile, ok := s.world.Components.Missile.Get(e)
		if !ok {
			continue
		}

		missile.Age += dt
		missile.PhaseAge += dt

		switch missile.Phase {
		case component.MissilePhaseFlying:
			s.fly(e, &missile, dtFixed)
		case component.MissilePhaseExploding:
			if missile.PhaseAge >= missile.Duration {
				missile.AdvancePhase(component.MissilePhaseFinished)
				s.world.Components.Death.Set(e, component.DeathComponent{})
			}
		}

		s.world.Components.Missile.Set(e, missile)
	}
}

// fly advances toward the target point and detonates on arrival or timeout
func (s *MissileSystem) fly(e core.Entity, missile *component.MissileComponent, dtFixed int64) {
	kinetic, ok := s.world.Components.Kinetic.Get(e)
	if !ok {
		return
	}

	dx := missile.TargetX - kinetic.PreciseX
	dy := missile.TargetY - kinetic.PreciseY
	dist := vmath.DistanceApprox(dx, dy)

	if dist <= parameter.MissileArrivalRadius || missile.Age > parameter.MissileMaxFlightTime {
		s.detonate(missile, &kinetic.Kinetic)
		s.world.Components.Kinetic.Set(e, kinetic)
		return
	}

	speed := vmath.Magnitude(kinetic.VelX, kinetic.VelY)
	if speed <= 0 {
		speed = parameter.MissileSpeed
	}

	nx, ny := vmath.Normalize2D(dx, dy)
	physics.SetHeading(&kinetic.Kinetic, nx, ny, speed)
	physics.Integrate(&kinetic.Kinetic, dtFixed)

	// Do not overshoot the target point on a fast tick
	step := vmath.Mul(speed, dtFixed)
	if step >= dist {
		kinetic.PreciseX = missile.TargetX
		kinetic.PreciseY = missile.TargetY
	}

	s.world.Components.Kinetic.Set(e, kinetic)
}

func (s *MissileSystem) detonate(missile *component.MissileComponent, k *core.Kinetic) {
	if !missile.AdvancePhase(component.MissilePhaseExploding) {
		return
	}
	k.VelX, k.VelY = 0, 0
	s.world.PushEvent(event.EventExplosionStarted, &event.ExplosionStartedPayload{
		X:      k.PreciseX,
		Y:      k.PreciseY,
		Radius: missile.BlastRadius,
	})
}

func (s *MissileSystem) launch(p *event.MissileLaunchRequestPayload) {
	speed := p.Speed
	if speed <= 0 {
		speed = parameter.MissileSpeed
	}
	damage := p.Damage
	if damage <= 0 {
		damage = parameter.MissileDamage
	}
	blast := p.BlastRadius
	if blast <= 0 {
		blast = parameter.MissileBlastRadius
	}

	nx, ny := vmath.Normalize2D(p.TargetX-p.OriginX, p.TargetY-p.OriginY)
	if nx == 0 && ny == 0 {
		nx = vmath.Scale
	}

	e := s.world.CreateEntity()
	s.world.Components.Missile.Set(e, component.MissileComponent{
		Phase:       component.MissilePhaseFlying,
		Owner:       p.Owner,
		TargetX:     p.TargetX,
		TargetY:     p.TargetY,
		Damage:      damage,
		BlastRadius: blast,
		Duration:    parameter.MissileExplosionDuration,
	})
	s.world.Components.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{
			PreciseX: p.OriginX,
			PreciseY: p.OriginY,
			VelX:     vmath.Mul(nx, speed),
			VelY:     vmath.Mul(ny, speed),
		},
	})
}
