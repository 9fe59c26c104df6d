package system

import (
	"time"

	"github.com/exporterrormusic/kingdom-arena/component"
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// newTestWorld builds a world with production tunables, no grace period,
// and the camera parked at the world center away from the borders
func newTestWorld() *engine.World {
	w := engine.NewWorld()
	*w.Resources.Config = engine.ConfigResource{
		SpawnBaseInterval:   parameter.SpawnBaseInterval,
		GracePeriod:         0,
		EnemyCapBase:        parameter.EnemyCapBase,
		EnemyCapMax:         parameter.EnemyCapMax,
		FireIntervalInitial: parameter.FireIntervalInitial,
		FireIntervalMin:     parameter.FireIntervalMin,
		FireRampTime:        parameter.FireRampTime,
		Seed:                42,
	}
	w.Resources.Bounds.World = core.Rect{
		MinX: 0, MinY: 0,
		MaxX: vmath.FromInt(parameter.WorldWidth),
		MaxY: vmath.FromInt(parameter.WorldHeight),
	}
	center := vmath.FromInt(parameter.WorldWidth / 2)
	view := vmath.FromInt(400)
	w.Resources.Bounds.Camera = core.Rect{
		MinX: center - view, MinY: center - view,
		MaxX: center + view, MaxY: center + view,
	}
	return w
}

func addPlayer(w *engine.World, x, y int64) core.Entity {
	e := w.CreateEntity()
	w.Components.Player.Set(e, component.PlayerComponent{
		Radius: parameter.PlayerRadius,
	})
	w.Components.Health.Set(e, component.NewHealth(parameter.PlayerMaxHealth))
	w.Components.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{PreciseX: x, PreciseY: y},
	})
	w.Resources.Player.Entity = e
	return e
}

func addEnemy(w *engine.World, x, y int64, health int) core.Entity {
	e := w.CreateEntity()
	w.Components.Enemy.Set(e, component.EnemyComponent{
		Type:   component.EnemyBasic,
		Radius: vmath.FromFloat(parameter.EnemyBaseStats[0].Radius),
		Speed:  vmath.FromFloat(parameter.EnemyBaseStats[0].Speed),
		Damage: parameter.EnemyBaseStats[0].Damage,
	})
	w.Components.Health.Set(e, component.NewHealth(health))
	w.Components.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{PreciseX: x, PreciseY: y},
	})
	return e
}

func tick(w *engine.World, dt time.Duration) {
	w.Resources.Time.Advance(dt)
	w.Update()
}

func healthOf(w *engine.World, e core.Entity) int {
	h, ok := w.Components.Health.Get(e)
	if !ok {
		return -1
	}
	return h.Current
}
