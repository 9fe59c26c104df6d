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

// SpawnSystem is the wave director: it decides when and where agents
// enter the arena and when difficulty advances
// Spawn cadence = base × waveMult × borderMult × timeRamp, floored at 1%
// of base; the cap is wave-scaled and a full cap resets (not accumulates)
// the spawn timer so release never burst-spawns
type SpawnSystem struct {
	world   *engine.World
	enabled bool
	rng     *vmath.FastRand

	wave       component.WaveState
	spawnTimer time.Duration
	spawned    uint64 // Running ordinal for lookahead striding

	mWave     *status.AtomicFloat
	mInterval *status.AtomicFloat
	mActive   *status.AtomicFloat
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world:     world,
		rng:       vmath.NewFastRand(world.Resources.Config.Seed),
		mWave:     world.Resources.Status.Floats.Get("wave.number"),
		mInterval: world.Resources.Status.Floats.Get("spawn.interval"),
		mActive:   world.Resources.Status.Floats.Get("enemy.active"),
	}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	cfg := s.world.Resources.Config
	s.wave = component.WaveState{
		Wave:            1,
		BaseInterval:    cfg.SpawnBaseInterval,
		CurrentInterval: cfg.SpawnBaseInterval,
		GraceRemaining:  cfg.GracePeriod,
	}
	s.spawnTimer = 0
	s.enabled = true
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventKill,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		if p, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
	case event.EventKill:
		s.wave.Kills++
	}
}

// Wave returns a snapshot of the current difficulty epoch
func (s *SpawnSystem) Wave() component.WaveState {
	return s.wave
}

func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	s.wave.Elapsed += dt

	s.advanceWave()

	s.wave.CurrentInterval = s.currentInterval()
	s.mWave.Store(float64(s.wave.Wave))
	s.mInterval.Store(s.wave.CurrentInterval.Seconds())

	if s.wave.GraceRemaining > 0 {
		s.wave.GraceRemaining -= dt
		s.spawnTimer = 0
		return
	}

	active := s.world.Components.Enemy.Count()
	s.mActive.Store(float64(active))

	s.spawnTimer += dt
	if s.spawnTimer < s.wave.CurrentInterval {
		return
	}

	if active >= s.enemyCap() {
		// Reset rather than accumulate so cap release cannot burst-spawn
		s.spawnTimer = 0
		return
	}

	s.spawnTimer = 0
	s.spawnEnemy()
}

// advanceWave tightens difficulty when the kill threshold is crossed
func (s *SpawnSystem) advanceWave() {
	if s.wave.Kills < s.wave.Wave*parameter.WaveKillFactor {
		return
	}

	s.wave.Wave++
	tightened := time.Duration(float64(s.wave.BaseInterval) * parameter.WaveIntervalTightenFloat)
	if tightened < parameter.WaveIntervalMin {
		tightened = parameter.WaveIntervalMin
	}
	s.wave.BaseInterval = tightened

	s.world.PushEvent(event.EventWaveAdvance, &event.WaveAdvancePayload{Wave: s.wave.Wave})
}

func (s *SpawnSystem) enemyCap() int {
	cfg := s.world.Resources.Config
	limit := cfg.EnemyCapBase + (s.wave.Wave - 1)
	if limit > cfg.EnemyCapMax {
		limit = cfg.EnemyCapMax
	}
	return limit
}

// dangerLevel is the capped scalar derived from wave number
func (s *SpawnSystem) dangerLevel() int64 {
	danger := vmath.Scale + vmath.FromFloat(parameter.WaveDangerStepFloat)*int64(s.wave.Wave-1)
	ceiling := vmath.FromFloat(parameter.WaveDangerCapFloat)
	if danger > ceiling {
		danger = ceiling
	}
	return danger
}

// currentInterval applies the three multipliers to the base interval:
// wave danger shortens it, border proximity shortens it exponentially,
// and the time ramp halves it per configured half-life
func (s *SpawnSystem) currentInterval() time.Duration {
	base := s.wave.BaseInterval
	interval := vmath.FromFloat(base.Seconds())

	// Wave danger
	interval = vmath.Div(interval, s.dangerLevel())

	// Border pressure: continuous exponential falloff
	interval = vmath.Mul(interval, vmath.Halving(s.borderPercent(), parameter.SpawnBorderRampHalfLifePercent))

	// Time ramp: the multiplier doubles every fixed interval, stepwise
	halvings := int(s.wave.Elapsed / (parameter.SpawnTimeRampHalfLifeSeconds * time.Second))
	if halvings > 16 {
		halvings = 16
	}
	interval >>= uint(halvings)

	floor := vmath.FromFloat(base.Seconds() * float64(parameter.SpawnIntervalFloorPercent) / 100)
	if interval < floor {
		interval = floor
	}
	return time.Duration(vmath.ToFloat(interval) * float64(time.Second))
}

// borderPercent is the player's center-to-border progress, 0..100
func (s *SpawnSystem) borderPercent() int {
	bounds := s.world.Resources.Bounds.World
	pk, ok := s.world.Components.Kinetic.Get(s.world.Resources.Player.Entity)
	if !ok {
		return 0
	}

	halfW, halfH := bounds.Width()/2, bounds.Height()/2
	if halfW == 0 || halfH == 0 {
		return 0
	}

	fx := vmath.Abs(pk.PreciseX-bounds.CenterX()) * 100 / halfW
	fy := vmath.Abs(pk.PreciseY-bounds.CenterY()) * 100 / halfH
	pct := fx
	if fy > pct {
		pct = fy
	}
	if pct > 100 {
		pct = 100
	}
	return int(pct)
}

// spawnEnemy places one agent at a world-border position outside the
// current camera view and derives its stats from the wave state
func (s *SpawnSystem) spawnEnemy() {
	bounds := s.world.Resources.Bounds
	x, y := s.borderPosition(bounds.World)

	// Prefer spawn points the player cannot see
	for attempt := 0; attempt < parameter.SpawnPlacementAttempts && bounds.Camera.Contains(x, y); attempt++ {
		x, y = s.borderPosition(bounds.World)
	}

	enemyType := s.rollType()
	base := parameter.EnemyBaseStats[enemyType]

	danger := s.dangerLevel()
	statMult := vmath.Scale + vmath.Mul(vmath.FromFloat(parameter.DangerStatFactorFloat), danger-vmath.Scale)
	speedMult := vmath.Scale + vmath.FromFloat(parameter.WaveSpeedFactorFloat)*int64(s.wave.Wave-1)

	// Distance-from-origin scaling applies to health and damage only;
	// speed grows with wave number alone
	dist := vmath.DistanceApprox(x-bounds.World.CenterX(), y-bounds.World.CenterY())
	distMult := vmath.Scale + vmath.Mul(vmath.FromFloat(parameter.OriginDistanceFactorFloat),
		vmath.Div(dist, vmath.FromInt(parameter.OriginDistanceUnit)))

	health := vmath.ToInt(vmath.Mul(vmath.Mul(vmath.FromInt(base.Health), statMult), distMult))
	damage := vmath.ToInt(vmath.Mul(vmath.Mul(vmath.FromInt(base.Damage), statMult), distMult))
	speed := vmath.Mul(vmath.FromFloat(base.Speed), speedMult)

	e := s.world.CreateEntity()
	s.spawned++

	s.world.Components.Enemy.Set(e, component.EnemyComponent{
		Type:    component.EnemyType(enemyType),
		State:   component.AISeeking,
		Radius:  vmath.FromFloat(base.Radius),
		Speed:   speed,
		Damage:  damage,
		Shooter: s.rng.Intn(100) < parameter.EnemyShooterPercent,
		FireCooldown: parameter.EnemyFireCooldownMin +
			time.Duration(s.rng.Intn(int(parameter.EnemyFireCooldownMax-parameter.EnemyFireCooldownMin))),
		Ordinal: s.spawned,
	})
	s.world.Components.Health.Set(e, component.NewHealth(health))
	s.world.Components.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{PreciseX: x, PreciseY: y},
	})

	s.world.PushEvent(event.EventEnemySpawned, &event.EnemySpawnedPayload{
		Entity:    e,
		X:         x,
		Y:         y,
		EnemyType: uint8(enemyType),
	})
}

// borderPosition picks a point just inside a random world edge
func (s *SpawnSystem) borderPosition(world core.Rect) (int64, int64) {
	buffer := parameter.SpawnBorderBuffer
	switch s.rng.Intn(4) {
	case 0: // Top
		return world.MinX + s.rng.Fixed(world.Width()), world.MinY + buffer
	case 1: // Bottom
		return world.MinX + s.rng.Fixed(world.Width()), world.MaxY - buffer
	case 2: // Left
		return world.MinX + buffer, world.MinY + s.rng.Fixed(world.Height())
	default: // Right
		return world.MaxX - buffer, world.MinY + s.rng.Fixed(world.Height())
	}
}

// rollType picks an enemy kind from the weight table
func (s *SpawnSystem) rollType() int {
	roll := s.rng.Intn(100)
	for i, w := range parameter.EnemyTypeWeights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return 0
}
