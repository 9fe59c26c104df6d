package system

import (
	"github.com/exporterrormusic/kingdom-arena/component"
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/physics"
	"github.com/exporterrormusic/kingdom-arena/status"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// CollisionSystem is the resolver: it owns every damage interaction and
// runs them in a fixed order each tick so results do not depend on entity
// iteration order:
//
//	1. player-faction bullets against agents (swept segment)
//	2. hostile bullets against the player (shield arc checked first)
//	3. melee sweeps against their targets
//	4. missiles: proximity trigger, body hits, then blast
//	5. agent-player contact with pushback
//
// Entities killed here are tagged for deferred removal, never destroyed
// mid-pass, so later pairs in the same tick see a consistent world
type CollisionSystem struct {
	world   *engine.World
	enabled bool

	mKills *status.AtomicFloat
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		world:  world,
		mKills: world.Resources.Status.Floats.Get("combat.kills"),
	}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.enabled = true
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if p, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
	}
}

func (s *CollisionSystem) Update() {
	if !s.enabled {
		return
	}

	s.resolveBulletsVsEnemies()
	s.resolveBulletsVsPlayer()
	s.resolveMelee()
	s.resolveMissiles()
	s.resolveContact()
}

// targetAlive filters out entities already tagged for removal this tick,
// keeping the at-most-once guarantee across resolver passes
func (s *CollisionSystem) targetAlive(e core.Entity) bool {
	return s.world.Alive(e) && !s.world.Components.Death.Has(e)
}

// applyDamage routes damage through the target's health, emits the damage
// event, and on a kill tags the target and credits it; returns true if
// the target died
func (s *CollisionSystem) applyDamage(target core.Entity, amount int, source event.SourceKind) bool {
	health, ok := s.world.Components.Health.Get(target)
	if !ok {
		return false
	}

	health.ApplyDamage(amount)
	s.world.Components.Health.Set(target, health)

	s.world.PushEvent(event.EventDamage, &event.DamagePayload{
		Target: target,
		Amount: amount,
		Source: source,
	})

	if !health.Dead() {
		return false
	}

	s.world.Components.Death.Set(target, component.DeathComponent{})

	var x, y int64
	if kinetic, ok := s.world.Components.Kinetic.Get(target); ok {
		x, y = kinetic.PreciseX, kinetic.PreciseY
	}
	s.world.PushEvent(event.EventKill, &event.KillPayload{Target: target, X: x, Y: y})
	s.mKills.Add(1)
	return true
}

// resolveBulletsVsEnemies sweeps each live player-faction bullet's segment
// for this tick against every agent circle; a spent bullet keeps the hits
// it already registered this tick
func (s *CollisionSystem) resolveBulletsVsEnemies() {
	enemies := s.world.Components.Enemy.All()

	for _, be := range s.world.Components.Bullet.All() {
		bullet, ok := s.world.Components.Bullet.Get(be)
		if !ok || !bullet.Live() || bullet.Faction != core.FactionPlayer {
			continue
		}
		kinetic, ok := s.world.Components.Kinetic.Get(be)
		if !ok {
			continue
		}

		spent := false
		for _, ee := range enemies {
			if !s.targetAlive(ee) {
				continue
			}
			enemy, ok := s.world.Components.Enemy.Get(ee)
			if !ok {
				continue
			}
			ek, ok := s.world.Components.Kinetic.Get(ee)
			if !ok {
				continue
			}

			if !vmath.SegmentCircleHit(bullet.PrevX, bullet.PrevY,
				kinetic.PreciseX, kinetic.PreciseY,
				ek.PreciseX, ek.PreciseY, enemy.Radius) {
				continue
			}

			s.applyDamage(ee, bullet.Damage, event.SourceBullet)
			if bullet.ConsumeHit() {
				spent = true
				break
			}
		}

		if spent {
			s.world.Components.Death.Set(be, component.DeathComponent{})
		}
		s.world.Components.Bullet.Set(be, bullet)
	}
}

// resolveBulletsVsPlayer tests hostile bullets against the player circle,
// deflecting any bullet caught inside the active shield arc
func (s *CollisionSystem) resolveBulletsVsPlayer() {
	playerEntity := s.world.Resources.Player.Entity
	if !s.targetAlive(playerEntity) {
		return
	}
	player, ok := s.world.Components.Player.Get(playerEntity)
	if !ok {
		return
	}
	pk, ok := s.world.Components.Kinetic.Get(playerEntity)
	if !ok {
		return
	}

	for _, be := range s.world.Components.Bullet.All() {
		bullet, ok := s.world.Components.Bullet.Get(be)
		if !ok || !bullet.Live() || bullet.Faction != core.FactionHostile {
			continue
		}
		kinetic, ok := s.world.Components.Kinetic.Get(be)
		if !ok {
			continue
		}

		if player.ShieldActive && vmath.PointInArc(
			kinetic.PreciseX, kinetic.PreciseY,
			pk.PreciseX, pk.PreciseY,
			player.Aim, parameter.ShieldRange, parameter.ShieldArcHalfWide) {
			// Deflected: the bullet is consumed, no damage
			s.world.Components.Death.Set(be, component.DeathComponent{})
			continue
		}

		if !vmath.SegmentCircleHit(bullet.PrevX, bullet.PrevY,
			kinetic.PreciseX, kinetic.PreciseY,
			pk.PreciseX, pk.PreciseY, player.Radius) {
			continue
		}

		s.world.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{
			Amount: bullet.Damage,
			Source: event.SourceBullet,
		})
		s.applyDamage(playerEntity, bullet.Damage, event.SourceBullet)
		s.world.Components.Death.Set(be, component.DeathComponent{})
	}
}

// resolveMelee tests every active sweep's arc against its target set:
// player sweeps hit agents, agent sweeps hit the player; each target is
// damaged at most once per activation
func (s *CollisionSystem) resolveMelee() {
	playerEntity := s.world.Resources.Player.Entity

	for _, se := range s.world.Components.Melee.All() {
		sweep, ok := s.world.Components.Melee.Get(se)
		if !ok || sweep.Expired() {
			continue
		}

		if sweep.Attacker == playerEntity {
			for _, ee := range s.world.Components.Enemy.All() {
				if !s.targetAlive(ee) {
					continue
				}
				ek, ok := s.world.Components.Kinetic.Get(ee)
				if !ok {
					continue
				}
				if !sweep.Contains(ek.PreciseX, ek.PreciseY, parameter.MeleeWipeFactor) {
					continue
				}
				if !sweep.MarkDamaged(ee) {
					continue
				}
				s.applyDamage(ee, sweep.Damage, event.SourceMelee)
			}
		} else if s.targetAlive(playerEntity) {
			if pk, ok := s.world.Components.Kinetic.Get(playerEntity); ok {
				if sweep.Contains(pk.PreciseX, pk.PreciseY, parameter.MeleeWipeFactor) &&
					sweep.MarkDamaged(playerEntity) {
					s.world.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{
						Amount: sweep.Damage,
						Source: event.SourceMelee,
					})
					s.applyDamage(playerEntity, sweep.Damage, event.SourceMelee)
				}
			}
		}

		s.world.Components.Melee.Set(se, sweep)
	}
}

// resolveMissiles handles the pair side of the missile lifecycle:
// mid-flight proximity triggers and body hits, then blast damage while
// exploding; body and blast share one damaged set per missile
func (s *CollisionSystem) resolveMissiles() {
	enemies := s.world.Components.Enemy.All()

	for _, me := range s.world.Components.Missile.All() {
		missile, ok := s.world.Components.Missile.Get(me)
		if !ok {
			continue
		}
		mk, ok := s.world.Components.Kinetic.Get(me)
		if !ok {
			continue
		}

		switch missile.Phase {
		case component.MissilePhaseFlying:
			s.missileFlight(&missile, &mk.Kinetic, enemies)
		case component.MissilePhaseExploding:
			s.missileBlast(&missile, &mk.Kinetic, enemies)
		}

		s.world.Components.Missile.Set(me, missile)
		s.world.Components.Kinetic.Set(me, mk)
	}
}

func (s *CollisionSystem) missileFlight(missile *component.MissileComponent, mk *core.Kinetic, enemies []core.Entity) {
	for _, ee := range enemies {
		if !s.targetAlive(ee) {
			continue
		}
		enemy, ok := s.world.Components.Enemy.Get(ee)
		if !ok {
			continue
		}
		ek, ok := s.world.Components.Kinetic.Get(ee)
		if !ok {
			continue
		}

		// Direct body hit: reduced damage, then detonate in place
		bodyRadius := missile.BodyRadius(parameter.MissileBodyRadius, enemy.Radius)
		if vmath.CircleOverlap(mk.PreciseX, mk.PreciseY, bodyRadius,
			ek.PreciseX, ek.PreciseY, enemy.Radius) {
			if missile.MarkDamaged(ee) {
				s.applyDamage(ee, missile.Damage/parameter.MissileBodyDamageDiv,
					event.SourceMissileBody)
			}
			s.detonate(missile, mk)
			return
		}

		// Proximity trigger: detonate without a body hit
		if vmath.CircleOverlap(mk.PreciseX, mk.PreciseY, parameter.MissileTriggerRadius,
			ek.PreciseX, ek.PreciseY, enemy.Radius) {
			s.detonate(missile, mk)
			return
		}
	}
}

func (s *CollisionSystem) missileBlast(missile *component.MissileComponent, mk *core.Kinetic, enemies []core.Entity) {
	blast := missile.CurrentBlastRadius()
	if blast <= 0 {
		return
	}

	for _, ee := range enemies {
		if !s.targetAlive(ee) {
			continue
		}
		enemy, ok := s.world.Components.Enemy.Get(ee)
		if !ok {
			continue
		}
		ek, ok := s.world.Components.Kinetic.Get(ee)
		if !ok {
			continue
		}

		if !vmath.CircleOverlap(mk.PreciseX, mk.PreciseY, blast,
			ek.PreciseX, ek.PreciseY, enemy.Radius) {
			continue
		}
		if !missile.MarkDamaged(ee) {
			continue
		}
		s.applyDamage(ee, missile.Damage, event.SourceMissileBlast)
	}
}

func (s *CollisionSystem) detonate(missile *component.MissileComponent, mk *core.Kinetic) {
	if !missile.AdvancePhase(component.MissilePhaseExploding) {
		return
	}
	mk.VelX, mk.VelY = 0, 0
	s.world.PushEvent(event.EventExplosionStarted, &event.ExplosionStartedPayload{
		X:      mk.PreciseX,
		Y:      mk.PreciseY,
		Radius: missile.BlastRadius,
	})
}

// resolveContact applies touch damage and positional pushback when an
// agent overlaps the player and its contact cooldown has elapsed
func (s *CollisionSystem) resolveContact() {
	playerEntity := s.world.Resources.Player.Entity
	if !s.targetAlive(playerEntity) {
		return
	}
	player, ok := s.world.Components.Player.Get(playerEntity)
	if !ok {
		return
	}
	pk, ok := s.world.Components.Kinetic.Get(playerEntity)
	if !ok {
		return
	}

	pushed := false
	for _, ee := range s.world.Components.Enemy.All() {
		if !s.targetAlive(ee) {
			continue
		}
		enemy, ok := s.world.Components.Enemy.Get(ee)
		if !ok || enemy.ContactCooldown > 0 {
			continue
		}
		ek, ok := s.world.Components.Kinetic.Get(ee)
		if !ok {
			continue
		}

		if !vmath.CircleOverlap(ek.PreciseX, ek.PreciseY, enemy.Radius,
			pk.PreciseX, pk.PreciseY, player.Radius) {
			continue
		}

		s.world.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{
			Amount: enemy.Damage,
			Source: event.SourceContact,
		})
		s.applyDamage(playerEntity, enemy.Damage, event.SourceContact)

		// Knock the player away along the contact normal
		nx, ny := vmath.Normalize2D(pk.PreciseX-ek.PreciseX, pk.PreciseY-ek.PreciseY)
		if nx == 0 && ny == 0 {
			nx = vmath.Scale
		}
		physics.Nudge(&pk.Kinetic,
			vmath.Mul(nx, parameter.PlayerPushback),
			vmath.Mul(ny, parameter.PlayerPushback))
		physics.ClampToRect(&pk.Kinetic, s.world.Resources.Bounds.World)
		pushed = true

		enemy.ContactCooldown = parameter.EnemyContactCooldown
		s.world.Components.Enemy.Set(ee, enemy)
	}

	if pushed {
		s.world.Components.Kinetic.Set(playerEntity, pk)
	}
}
