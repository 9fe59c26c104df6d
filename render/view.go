package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/exporterrormusic/kingdom-arena/component"
	"github.com/exporterrormusic/kingdom-arena/core"
	"github.com/exporterrormusic/kingdom-arena/engine"
	"github.com/exporterrormusic/kingdom-arena/parameter"
	"github.com/exporterrormusic/kingdom-arena/vmath"
)

// Cell size in world units; terminal cells are roughly twice as tall as
// they are wide, so the vertical scale doubles to keep circles round
const (
	cellWidthUnits  = 8
	cellHeightUnits = 16
)

var (
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleShield    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleBasic     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFast      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTank      = tcell.StyleDefault.Foreground(tcell.ColorMaroon).Bold(true)
	styleBullet    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHostile   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleMissile   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleExplosion = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleMelee     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBorder    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var enemyGlyphs = [component.EnemyTypeCount]struct {
	r     rune
	style tcell.Style
}{
	{'b', styleBasic},
	{'f', styleFast},
	{'T', styleTank},
}

// View draws the simulation onto a tcell screen, camera centered on the
// player; it also publishes the camera rect back to the world so spawn
// placement can avoid the visible area
type View struct {
	screen tcell.Screen
	world  *engine.World
}

func NewView(screen tcell.Screen, world *engine.World) *View {
	return &View{screen: screen, world: world}
}

// Render draws one frame and syncs the camera rect into the world
func (v *View) Render() {
	v.screen.Clear()

	width, height := v.screen.Size()
	hudRows := 2
	viewH := height - hudRows
	if viewH < 1 {
		viewH = 1
	}

	camera := v.cameraRect(width, viewH)
	v.world.Resources.Bounds.Camera = camera

	v.drawBorder(camera, width, viewH, hudRows)
	v.drawMelee(camera, hudRows)
	v.drawEnemies(camera, hudRows)
	v.drawBullets(camera, hudRows)
	v.drawMissiles(camera, hudRows)
	v.drawPlayer(camera, hudRows)
	v.drawHUD(width)

	v.screen.Show()
}

// cameraRect centers the visible window on the player
func (v *View) cameraRect(cols, rows int) core.Rect {
	var cx, cy int64
	if pk, ok := v.world.Components.Kinetic.Get(v.world.Resources.Player.Entity); ok {
		cx, cy = pk.PreciseX, pk.PreciseY
	}

	halfW := vmath.FromInt(cols * cellWidthUnits / 2)
	halfH := vmath.FromInt(rows * cellHeightUnits / 2)
	return core.Rect{
		MinX: cx - halfW, MinY: cy - halfH,
		MaxX: cx + halfW, MaxY: cy + halfH,
	}
}

// toScreen maps a world position to a screen cell; ok is false off-view
func toScreen(camera core.Rect, x, y int64, hudRows int) (int, int, bool) {
	if !camera.Contains(x, y) {
		return 0, 0, false
	}
	col := int(vmath.ToInt(x-camera.MinX)) / cellWidthUnits
	row := int(vmath.ToInt(y-camera.MinY))/cellHeightUnits + hudRows
	return col, row, true
}

func (v *View) drawBorder(camera core.Rect, cols, rows, hudRows int) {
	world := v.world.Resources.Bounds.World
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			wx := camera.MinX + vmath.FromInt(col*cellWidthUnits)
			wy := camera.MinY + vmath.FromInt(row*cellHeightUnits)
			if world.Contains(wx, wy) {
				continue
			}
			v.screen.SetContent(col, row+hudRows, '░', nil, styleBorder)
		}
	}
}

func (v *View) drawPlayer(camera core.Rect, hudRows int) {
	playerEntity := v.world.Resources.Player.Entity
	player, ok := v.world.Components.Player.Get(playerEntity)
	if !ok {
		return
	}
	pk, ok := v.world.Components.Kinetic.Get(playerEntity)
	if !ok {
		return
	}

	if col, row, visible := toScreen(camera, pk.PreciseX, pk.PreciseY, hudRows); visible {
		v.screen.SetContent(col, row, '@', nil, stylePlayer)
		if player.ShieldActive {
			dx, dy := vmath.VectorFromAngle(player.Aim)
			sx := pk.PreciseX + vmath.Mul(dx, vmath.FromInt(24))
			sy := pk.PreciseY + vmath.Mul(dy, vmath.FromInt(24))
			if scol, srow, sv := toScreen(camera, sx, sy, hudRows); sv {
				v.screen.SetContent(scol, srow, ')', nil, styleShield)
			}
		}
	}
}

func (v *View) drawEnemies(camera core.Rect, hudRows int) {
	for _, e := range v.world.Components.Enemy.All() {
		enemy, ok := v.world.Components.Enemy.Get(e)
		if !ok {
			continue
		}
		k, ok := v.world.Components.Kinetic.Get(e)
		if !ok {
			continue
		}
		if col, row, visible := toScreen(camera, k.PreciseX, k.PreciseY, hudRows); visible {
			g := enemyGlyphs[enemy.Type%component.EnemyTypeCount]
			v.screen.SetContent(col, row, g.r, nil, g.style)
		}
	}
}

func (v *View) drawBullets(camera core.Rect, hudRows int) {
	for _, e := range v.world.Components.Bullet.All() {
		bullet, ok := v.world.Components.Bullet.Get(e)
		if !ok || !bullet.Live() {
			continue
		}
		k, ok := v.world.Components.Kinetic.Get(e)
		if !ok {
			continue
		}
		if col, row, visible := toScreen(camera, k.PreciseX, k.PreciseY, hudRows); visible {
			style := styleBullet
			if bullet.Faction == core.FactionHostile {
				style = styleHostile
			}
			v.screen.SetContent(col, row, '·', nil, style)
		}
	}
}

func (v *View) drawMissiles(camera core.Rect, hudRows int) {
	for _, e := range v.world.Components.Missile.All() {
		missile, ok := v.world.Components.Missile.Get(e)
		if !ok {
			continue
		}
		k, ok := v.world.Components.Kinetic.Get(e)
		if !ok {
			continue
		}

		switch missile.Phase {
		case component.MissilePhaseFlying:
			if col, row, visible := toScreen(camera, k.PreciseX, k.PreciseY, hudRows); visible {
				v.screen.SetContent(col, row, '^', nil, styleMissile)
			}
		case component.MissilePhaseExploding:
			v.drawRing(camera, k.PreciseX, k.PreciseY, missile.CurrentBlastRadius(), '*', styleExplosion, hudRows)
		}
	}
}

// drawRing samples points around a circle; cheap and good enough for a
// blast indicator
func (v *View) drawRing(camera core.Rect, cx, cy, radius int64, glyph rune, style tcell.Style, hudRows int) {
	const points = 24
	for i := 0; i < points; i++ {
		angle := int64(i) * (vmath.Scale / points)
		dx, dy := vmath.VectorFromAngle(angle)
		x := cx + vmath.Mul(dx, radius)
		y := cy + vmath.Mul(dy, radius)
		if col, row, visible := toScreen(camera, x, y, hudRows); visible {
			v.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (v *View) drawMelee(camera core.Rect, hudRows int) {
	for _, e := range v.world.Components.Melee.All() {
		sweep, ok := v.world.Components.Melee.Get(e)
		if !ok || sweep.Expired() {
			continue
		}

		// Sample the arc edge at the current wipe distance
		reach := sweep.CurrentReach(parameter.MeleeWipeFactor)
		const points = 9
		for i := 0; i < points; i++ {
			offset := sweep.HalfWidth * int64(2*i-points+1) / int64(points-1)
			dx, dy := vmath.VectorFromAngle(vmath.NormalizeAngle(sweep.Facing + offset))
			x := sweep.OriginX + vmath.Mul(dx, reach)
			y := sweep.OriginY + vmath.Mul(dy, reach)
			if col, row, visible := toScreen(camera, x, y, hudRows); visible {
				v.screen.SetContent(col, row, '/', nil, styleMelee)
			}
		}
	}
}

func (v *View) drawHUD(width int) {
	st := v.world.Resources.Status

	hp := 0
	if h, ok := v.world.Components.Health.Get(v.world.Resources.Player.Entity); ok {
		hp = h.Current
	}

	line := fmt.Sprintf(" HP %3d | wave %.0f | hostiles %.0f | kills %.0f | spawn %.2fs",
		hp,
		st.Floats.Get("wave.number").Load(),
		st.Floats.Get("enemy.active").Load(),
		st.Floats.Get("combat.kills").Load(),
		st.Floats.Get("spawn.interval").Load(),
	)
	v.drawText(0, 0, line, styleHUD)
	for col := 0; col < width; col++ {
		v.screen.SetContent(col, 1, '─', nil, styleBorder)
	}
}

func (v *View) drawText(col, row int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(col+i, row, r, nil, style)
	}
}
