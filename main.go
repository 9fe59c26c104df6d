package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/exporterrormusic/kingdom-arena/audio"
	"github.com/exporterrormusic/kingdom-arena/component"
	"github.com/exporterrormusic/kingdom-arena/config"
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/event"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/physics"
	"github.com/exporterrormusic/kingdom-arena/render"
	"github.com/exporterrormusic/kingdom-arena/system"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

const configPath = "arena.toml"

type Game struct {
	screen tcell.Screen
	world  *engine.World
	view   *render.View
	sound  *audio.Engine
	cfg    *config.ArenaConfig

	player core.Entity

	aim      int64 // Rotation units
	firing   bool
	gameOver bool
	debug    bool
}

func NewGame() (*Game, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Debug {
		initDebugLog()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen: screen,
		cfg:    cfg,
		sound:  audio.NewEngine(cfg.Audio.Enabled),
		debug:  cfg.Debug,
	}
	g.world = g.buildWorld()
	g.view = render.NewView(screen, g.world)
	g.world.SetEventTap(g.tapEvent)

	return g, nil
}

// initDebugLog redirects the standard logger to a file; the terminal is
// owned by tcell, stderr would corrupt the screen
func initDebugLog() {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join("logs", "arena.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	log.SetOutput(f)
}

// tapEvent is the world's event tap: cues first, then debug tracing
func (g *Game) tapEvent(ev event.GameEvent) {
	g.sound.HandleEvent(ev)

	if !g.debug {
		return
	}
	switch ev.Type {
	case event.EventWaveAdvance:
		if p, ok := ev.Payload.(*event.WaveAdvancePayload); ok {
			log.Printf("wave %d (frame %d)", p.Wave, ev.Frame)
		}
	case event.EventPlayerHit:
		if p, ok := ev.Payload.(*event.PlayerHitPayload); ok {
			log.Printf("player hit for %d (source %d, frame %d)", p.Amount, p.Source, ev.Frame)
		}
	case event.EventKill:
		if p, ok := ev.Payload.(*event.KillPayload); ok {
			log.Printf("kill %d at (%.0f, %.0f)", p.Target.Index(),
				vmath.ToFloat(p.X), vmath.ToFloat(p.Y))
		}
	}
}

func (g *Game) buildWorld() *engine.World {
	w := engine.NewWorld()

	seed := g.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	*w.Resources.Config = engine.ConfigResource{
		SpawnBaseInterval:   g.cfg.BaseInterval(),
		GracePeriod:         g.cfg.GracePeriod(),
		EnemyCapBase:        g.cfg.Spawn.EnemyCapBase,
		EnemyCapMax:         g.cfg.Spawn.EnemyCapMax,
		FireIntervalInitial: time.Duration(g.cfg.Weapon.FireIntervalInitialMs) * time.Millisecond,
		FireIntervalMin:     time.Duration(g.cfg.Weapon.FireIntervalMinMs) * time.Millisecond,
		FireRampTime:        time.Duration(g.cfg.Weapon.FireRampTimeMs) * time.Millisecond,
		Seed:                seed,
	}
	w.Resources.Bounds.World = core.Rect{
		MinX: 0, MinY: 0,
		MaxX: vmath.FromInt(g.cfg.World.Width),
		MaxY: vmath.FromInt(g.cfg.World.Height),
	}

	g.player = g.spawnPlayer(w)

	w.AddSystem(system.NewSpawnSystem(w))
	w.AddSystem(system.NewEnemySystem(w))
	w.AddSystem(system.NewBulletSystem(w))
	w.AddSystem(system.NewMissileSystem(w))
	w.AddSystem(system.NewMeleeSystem(w))
	w.AddSystem(system.NewCollisionSystem(w))
	w.AddSystem(system.NewSoftCollisionSystem(w))
	w.AddSystem(system.NewCullSystem(w))

	return w
}

func (g *Game) spawnPlayer(w *engine.World) core.Entity {
	e := w.CreateEntity()
	w.Components.Player.Set(e, component.PlayerComponent{
		Radius: parameter.PlayerRadius,
	})
	w.Components.Health.Set(e, component.NewHealth(parameter.PlayerMaxHealth))
	w.Components.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{
			PreciseX: w.Resources.Bounds.World.CenterX(),
			PreciseY: w.Resources.Bounds.World.CenterY(),
		},
	})
	w.Resources.Player.Entity = e
	return e
}

// move applies an impulse in the given direction and turns the aim there;
// terminals report no key-up, so motion coasts and damps instead of
// tracking held keys
func (g *Game) move(dx, dy int64) {
	pk, ok := g.world.Components.Kinetic.Get(g.player)
	if !ok {
		return
	}
	nx, ny := vmath.Normalize2D(dx, dy)
	physics.SetHeading(&pk.Kinetic, nx, ny, parameter.PlayerSpeed)
	g.world.Components.Kinetic.Set(g.player, pk)

	g.aim = vmath.AngleFromVector(dx, dy)
	g.syncAim()
}

// syncAim updates the player component and, while firing, re-sends the
// trigger state so new shots leave along the new heading
func (g *Game) syncAim() {
	if player, ok := g.world.Components.Player.Get(g.player); ok {
		player.Aim = g.aim
		g.world.Components.Player.Set(g.player, player)
	}
	if g.firing {
		g.world.PushEvent(event.EventTriggerState, &event.TriggerStatePayload{
			Pressed: true,
			Angle:   g.aim,
		})
	}
}

func (g *Game) toggleFire() {
	g.firing = !g.firing
	g.world.PushEvent(event.EventTriggerState, &event.TriggerStatePayload{
		Pressed: g.firing,
		Angle:   g.aim,
	})
}

func (g *Game) launchMissile() {
	pk, ok := g.world.Components.Kinetic.Get(g.player)
	if !ok {
		return
	}
	dx, dy := vmath.VectorFromAngle(g.aim)
	reach := vmath.FromInt(400)
	g.world.PushEvent(event.EventMissileLaunchRequest, &event.MissileLaunchRequestPayload{
		Owner:   g.player,
		OriginX: pk.PreciseX,
		OriginY: pk.PreciseY,
		TargetX: pk.PreciseX + vmath.Mul(dx, reach),
		TargetY: pk.PreciseY + vmath.Mul(dy, reach),
	})
}

func (g *Game) meleeSweep() {
	g.world.PushEvent(event.EventMeleeSweepRequest, &event.MeleeSweepRequestPayload{
		Attacker: g.player,
	})
}

func (g *Game) toggleShield() {
	if player, ok := g.world.Components.Player.Get(g.player); ok {
		player.ShieldActive = !player.ShieldActive
		g.world.Components.Player.Set(g.player, player)
	}
}

func (g *Game) reset() {
	g.world.PushEvent(event.EventGameReset, nil)

	// Systems reinitialize from the reset event; live agents, missiles
	// and sweeps are cleared here
	for _, e := range g.world.Components.Enemy.All() {
		g.world.DestroyEntity(e)
	}
	for _, e := range g.world.Components.Missile.All() {
		g.world.DestroyEntity(e)
	}
	for _, e := range g.world.Components.Melee.All() {
		g.world.DestroyEntity(e)
	}

	g.world.Components.Health.Set(g.player, component.NewHealth(parameter.PlayerMaxHealth))
	pk, _ := g.world.Components.Kinetic.Get(g.player)
	pk.Kinetic = core.Kinetic{
		PreciseX: g.world.Resources.Bounds.World.CenterX(),
		PreciseY: g.world.Resources.Bounds.World.CenterY(),
	}
	g.world.Components.Kinetic.Set(g.player, pk)

	g.firing = false
	g.gameOver = false
}

func (g *Game) handleInput(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
		return false
	}

	if g.gameOver {
		if key.Key() == tcell.KeyRune && key.Rune() == 'r' {
			g.reset()
		}
		return true
	}

	switch key.Key() {
	case tcell.KeyUp:
		g.move(0, -vmath.Scale)
	case tcell.KeyDown:
		g.move(0, vmath.Scale)
	case tcell.KeyLeft:
		g.move(-vmath.Scale, 0)
	case tcell.KeyRight:
		g.move(vmath.Scale, 0)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w':
			g.move(0, -vmath.Scale)
		case 's':
			g.move(0, vmath.Scale)
		case 'a':
			g.move(-vmath.Scale, 0)
		case 'd':
			g.move(vmath.Scale, 0)
		case ' ':
			g.toggleFire()
		case 'e':
			g.meleeSweep()
		case 'f':
			g.launchMissile()
		case 'c':
			g.toggleShield()
		case 'u':
			g.sound.ToggleMute()
		case 'q':
			return false
		}
	}
	return true
}

// stepPlayer integrates the player and damps the coasting motion
func (g *Game) stepPlayer() {
	pk, ok := g.world.Components.Kinetic.Get(g.player)
	if !ok {
		return
	}
	physics.Integrate(&pk.Kinetic, g.world.Resources.Time.DeltaFixed)
	physics.Damp(&pk.Kinetic, vmath.FromFloat(0.9))
	physics.ClampToRect(&pk.Kinetic, g.world.Resources.Bounds.World)
	g.world.Components.Kinetic.Set(g.player, pk)
}

func (g *Game) run() {
	tickInterval := time.Second / parameter.TickRate
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > parameter.MaxDeltaDuration {
				dt = parameter.MaxDeltaDuration
			}

			if !g.gameOver {
				g.world.Resources.Time.Advance(dt)
				g.stepPlayer()
				g.world.Update()

				if h, ok := g.world.Components.Health.Get(g.player); ok && h.Dead() {
					g.gameOver = true
					g.firing = false
				}
			}

			g.view.Render()
			if g.gameOver {
				g.drawGameOver()
			}
		}
	}
}

func (g *Game) drawGameOver() {
	width, height := g.screen.Size()
	msg := " GAME OVER - press r to restart, q to quit "
	col := (width - len(msg)) / 2
	if col < 0 {
		col = 0
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	for i, r := range msg {
		g.screen.SetContent(col+i, height/2, r, nil, style)
	}
	g.screen.Show()
}

func (g *Game) cleanup() {
	g.sound.Close()
	g.screen.Fini()
}

func main() {
	game, err := NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
