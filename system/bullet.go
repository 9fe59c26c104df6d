package system

import (
	"time"

	"github.com/exporterrormusic/kingdom-arena/component"
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/status"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// fireControl implements continuous-fire semantics for the player weapon:
// while the trigger is held the interval ramps from initial toward the
// minimum over the ramp time; release or reload resets the ramp
type fireControl struct {
	pressed  bool
	aim      int64 // Rotation units
	heldFor  time.Duration
	cooldown time.Duration
	initial  time.Duration
	minimum  time.Duration
	rampTime time.Duration
}

// interval eases linearly from initial to minimum over the ramp window
func (f *fireControl) interval() time.Duration {
	if f.heldFor >= f.rampTime {
		return f.minimum
	}
	span := f.initial - f.minimum
	return f.initial - time.Duration(int64(span)*int64(f.heldFor)/int64(f.rampTime))
}

func (f *fireControl) reset() {
	f.heldFor = 0
	f.cooldown = 0
}

// BulletSystem manages penetrating projectile lifecycle
// Bullets advance by velocity × dt, spend their range budget on distance
// traveled, and dissolve briefly (inert) once the budget empties
// Hits are reported by the collision resolver; the bullet is only removed
// once its penetration count reaches zero
type BulletSystem struct {
	world   *engine.World
	enabled bool

	fire fireControl

	mActive *status.AtomicFloat
}

func NewBulletSystem(world *engine.World) engine.System {
	s := &BulletSystem{
		world:   world,
		mActive: world.Resources.Status.Floats.Get("bullet.active"),
	}
	s.Init()
	return s
}

func (s *BulletSystem) Init() {
	s.destroyAll()
	cfg := s.world.Resources.Config
	s.fire = fireControl{
		initial:  cfg.FireIntervalInitial,
		minimum:  cfg.FireIntervalMin,
		rampTime: cfg.FireRampTime,
	}
	s.enabled = true
}

func (s *BulletSystem) Name() string { return "bullet" }

func (s *BulletSystem) Priority() int { return parameter.PriorityBullet }

func (s *BulletSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBulletFireRequest,
		event.EventTriggerState,
		event.EventReloadRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *BulletSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
		return
	case event.EventMetaSystemCommandRequest:
		if p, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
		return
	}
	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventBulletFireRequest:
		if p, ok := ev.Payload.(*event.BulletFireRequestPayload); ok {
			s.spawnBullet(p)
		}
	case event.EventTriggerState:
		if p, ok := ev.Payload.(*event.TriggerStatePayload); ok {
			if s.fire.pressed && !p.Pressed {
				s.fire.reset()
			}
			s.fire.pressed = p.Pressed
			s.fire.aim = p.Angle
		}
	case event.EventReloadRequest:
		s.fire.reset()
	}
}

func (s *BulletSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	dtFixed := s.world.Resources.Time.DeltaFixed

	s.updateFireControl(dt)

	entities := s.world.Components.Bullet.All()
	s.mActive.Store(float64(len(entities)))

	var toDestroy []core.Entity

	for _, e := range entities {
		bullet, ok := s.world.Components.Bullet.Get(e)
		if !ok {
			continue
		}
		kinetic, ok := s.world.Components.Kinetic.Get(e)
		if !ok {
			continue
		}

		if bullet.State == component.BulletDissolving {
			bullet.Dissolve -= dt
			if bullet.Dissolve <= 0 {
				toDestroy = append(toDestroy, e)
				continue
			}
			s.world.Components.Bullet.Set(e, bullet)
			continue
		}

		bullet.PrevX, bullet.PrevY = kinetic.PreciseX, kinetic.PreciseY
		kinetic.PreciseX += vmath.Mul(kinetic.VelX, dtFixed)
		kinetic.PreciseY += vmath.Mul(kinetic.VelY, dtFixed)

		traveled := vmath.DistanceApprox(
			kinetic.PreciseX-bullet.PrevX, kinetic.PreciseY-bullet.PrevY)
		bullet.Range -= traveled

		if bullet.Range <= 0 {
			bullet.State = component.BulletDissolving
			bullet.Dissolve = parameter.BulletDissolveDuration
		}

		s.world.Components.Bullet.Set(e, bullet)
		s.world.Components.Kinetic.Set(e, kinetic)
	}

	for _, e := range toDestroy {
		s.world.Components.Death.Set(e, component.DeathComponent{})
	}
}

// updateFireControl emits player fire requests while the trigger is held
func (s *BulletSystem) updateFireControl(dt time.Duration) {
	if !s.fire.pressed {
		return
	}

	s.fire.heldFor += dt
	s.fire.cooldown -= dt
	if s.fire.cooldown > 0 {
		return
	}
	s.fire.cooldown = s.fire.interval()

	playerEntity := s.world.Resources.Player.Entity
	pk, ok := s.world.Components.Kinetic.Get(playerEntity)
	if !ok {
		return
	}

	s.spawnBullet(&event.BulletFireRequestPayload{
		Owner:       playerEntity,
		OriginX:     pk.PreciseX,
		OriginY:     pk.PreciseY,
		Angle:       s.fire.aim,
		Speed:       parameter.PlayerBulletSpeed,
		Damage:      parameter.RapidBulletDamage,
		Penetration: parameter.RapidBulletPenetration,
		RangeBudget: parameter.RapidBulletRange,
		Faction:     core.FactionPlayer,
	})
}

func (s *BulletSystem) spawnBullet(p *event.BulletFireRequestPayload) {
	// Degenerate configuration clamps to minimum valid values
	penetration := p.Penetration
	if penetration < 1 {
		penetration = 1
	}
	rangeBudget := p.RangeBudget
	if rangeBudget <= 0 {
		rangeBudget = vmath.Scale
	}

	dirX, dirY := vmath.VectorFromAngle(p.Angle)

	e := s.world.CreateEntity()
	s.world.Components.Bullet.Set(e, component.BulletComponent{
		Owner:       p.Owner,
		Faction:     p.Faction,
		Damage:      p.Damage,
		Penetration: penetration,
		Range:       rangeBudget,
		PrevX:       p.OriginX,
		PrevY:       p.OriginY,
		Shape:       p.Shape,
	})
	s.world.Components.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{
			PreciseX: p.OriginX,
			PreciseY: p.OriginY,
			VelX:     vmath.Mul(dirX, p.Speed),
			VelY:     vmath.Mul(dirY, p.Speed),
		},
	})
}

func (s *BulletSystem) destroyAll() {
	for _, e := range s.world.Components.Bullet.All() {
		s.world.Components.Bullet.Remove(e)
		s.world.Components.Kinetic.Remove(e)
		s.world.DestroyEntity(e)
	}
}
