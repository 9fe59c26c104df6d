package system

import (
	"time"

	"github.com/exporterrormusic/kingdom-arena/component"
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/physics"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// EnemySystem steers every agent toward the player each tick
// There is no idle state: agents always seek, at reduced speed beyond
// the detection radius and boosted speed at close range
type EnemySystem struct {
	world   *engine.World
	enabled bool
	rng     *vmath.FastRand
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{
		world: world,
		rng:   vmath.NewFastRand(world.Resources.Config.Seed ^ 0x9e3779b97f4a7c15),
	}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.enabled = true
}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if p, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
	}
}

func (s *EnemySystem) Update() {
	if !s.enabled {
		return
	}

	res := s.world.Resources
	dt := res.Time.DeltaTime
	dtFixed := res.Time.DeltaFixed
	frame := res.Time.FrameNumber

	playerEntity := res.Player.Entity
	pk, hasPlayer := s.world.Components.Kinetic.Get(playerEntity)

	var toCull []core.Entity

	for _, e := range s.world.Components.Enemy.All() {
		enemy, ok := s.world.Components.Enemy.Get(e)
		if !ok {
			continue
		}
		kinetic, ok := s.world.Components.Kinetic.Get(e)
		if !ok {
			continue
		}

		if hasPlayer {
			dx := pk.PreciseX - kinetic.PreciseX
			dy := pk.PreciseY - kinetic.PreciseY
			dist := vmath.DistanceApprox(dx, dy)

			if dist > parameter.EnemyCullDistance {
				// Too far to matter; removed without kill credit
				toCull = append(toCull, e)
				continue
			}

			s.steer(&enemy, &kinetic.Kinetic, dx, dy, dist)
			s.updateFacing(&enemy, dt)
			s.avoidTerrain(&enemy, &kinetic.Kinetic, frame)
			s.rangedAttack(&enemy, &kinetic.Kinetic, dist, dt)
		}

		if enemy.ContactCooldown > 0 {
			enemy.ContactCooldown -= dt
		}

		physics.Integrate(&kinetic.Kinetic, dtFixed)
		physics.ClampToRect(&kinetic.Kinetic, res.Bounds.World)

		s.world.Components.Enemy.Set(e, enemy)
		s.world.Components.Kinetic.Set(e, kinetic)
	}

	for _, e := range toCull {
		s.world.Components.Death.Set(e, component.DeathComponent{})
	}
}

// steer points velocity at the player with jitter and range-dependent speed
func (s *EnemySystem) steer(enemy *component.EnemyComponent, k *core.Kinetic, dx, dy, dist int64) {
	// Jitter before normalization breaks up perfect stacking of agents
	// approaching from the same side
	jx := s.rng.FixedRange(-parameter.EnemyJitter, parameter.EnemyJitter)
	jy := s.rng.FixedRange(-parameter.EnemyJitter, parameter.EnemyJitter)

	nx, ny := vmath.Normalize2D(dx+jx, dy+jy)
	if nx == 0 && ny == 0 {
		nx = vmath.Scale // Degenerate aim falls back to +X
	}

	speed := enemy.Speed
	switch {
	case dist <= parameter.EnemyCloseRange:
		speed = vmath.Mul(speed, parameter.EnemyCloseSpeedMult)
	case dist > parameter.EnemyDetectionRadius:
		speed = vmath.Mul(speed, parameter.EnemyFarSpeedMult)
	}

	physics.SetHeading(k, nx, ny, speed)
	enemy.Facing = vmath.AngleFromVector(dx, dy)
}

// updateFacing keeps the continuous heading fresh but only lets the
// discretized sector change after the cooldown
func (s *EnemySystem) updateFacing(enemy *component.EnemyComponent, dt time.Duration) {
	if enemy.FacingCooldown > 0 {
		enemy.FacingCooldown -= dt
		return
	}

	sector := vmath.Sector(enemy.Facing, parameter.EnemyFacingSectors)
	if sector != enemy.FacingSector {
		enemy.FacingSector = sector
		enemy.FacingCooldown = parameter.EnemyFacingCooldown
	}
}

// avoidTerrain extracts embedded agents immediately; unstuck agents get a
// cheaper lookahead probe on a rotating schedule so the whole population
// is not probed every tick
func (s *EnemySystem) avoidTerrain(enemy *component.EnemyComponent, k *core.Kinetic, frame int64) {
	terrain := s.world.Resources.Terrain

	if terrain.IsBlocked(k.PreciseX, k.PreciseY) {
		s.extract(enemy, k, terrain)
		return
	}

	if (uint64(frame)+enemy.Ordinal)%parameter.EnemyAvoidanceStride != 0 {
		return
	}

	nx, ny := vmath.Normalize2D(k.VelX, k.VelY)
	if nx == 0 && ny == 0 {
		return
	}

	aheadX := k.PreciseX + vmath.Mul(nx, parameter.EnemyLookahead)
	aheadY := k.PreciseY + vmath.Mul(ny, parameter.EnemyLookahead)
	if !terrain.IsBlocked(aheadX, aheadY) {
		return
	}

	// Blocked ahead: try ±90° and take whichever turn is open
	leftX, leftY := vmath.Perpendicular(nx, ny)
	lx := k.PreciseX + vmath.Mul(leftX, parameter.EnemyLookahead)
	ly := k.PreciseY + vmath.Mul(leftY, parameter.EnemyLookahead)

	speed := vmath.Magnitude(k.VelX, k.VelY)
	if !terrain.IsBlocked(lx, ly) {
		physics.SetHeading(k, leftX, leftY, speed)
		return
	}

	rightX, rightY := -leftX, -leftY
	rx := k.PreciseX + vmath.Mul(rightX, parameter.EnemyLookahead)
	ry := k.PreciseY + vmath.Mul(rightY, parameter.EnemyLookahead)
	if !terrain.IsBlocked(rx, ry) {
		physics.SetHeading(k, rightX, rightY, speed)
	}
}

// extract snaps an embedded agent to the first unblocked cardinal
// candidate at increasing radii and aims velocity at it
func (s *EnemySystem) extract(enemy *component.EnemyComponent, k *core.Kinetic, terrain *engine.TerrainResource) {
	cardinals := [4][2]int64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for _, radius := range parameter.EnemyExtractionRadii {
		r := vmath.FromFloat(radius)
		for _, c := range cardinals {
			cx := k.PreciseX + c[0]*r
			cy := k.PreciseY + c[1]*r
			if terrain.IsBlocked(cx, cy) {
				continue
			}

			dirX, dirY := vmath.Normalize2D(cx-k.PreciseX, cy-k.PreciseY)
			k.PreciseX = cx
			k.PreciseY = cy
			physics.SetHeading(k, dirX, dirY, enemy.Speed)
			return
		}
	}
}

// rangedAttack fires a hostile bullet at the player when in range
func (s *EnemySystem) rangedAttack(enemy *component.EnemyComponent, k *core.Kinetic, dist int64, dt time.Duration) {
	if !enemy.Shooter {
		return
	}

	if enemy.FireCooldown > 0 {
		enemy.FireCooldown -= dt
		return
	}
	if dist > parameter.EnemyFireRange {
		return
	}

	s.world.PushEvent(event.EventBulletFireRequest, &event.BulletFireRequestPayload{
		OriginX:     k.PreciseX,
		OriginY:     k.PreciseY,
		Angle:       enemy.Facing,
		Speed:       parameter.HostileBulletSpeed,
		Damage:      parameter.HostileBulletDamage,
		Penetration: 1,
		RangeBudget: parameter.HostileBulletRange,
		Faction:     core.FactionHostile,
	})

	cooldownRange := int(parameter.EnemyFireCooldownMax - parameter.EnemyFireCooldownMin)
	enemy.FireCooldown = parameter.EnemyFireCooldownMin + time.Duration(s.rng.Intn(cooldownRange))
}
