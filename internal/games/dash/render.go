package dash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/sim"
	"github.com/vovakirdan/neon-dash/internal/skins"
)

// Visual characters for rendering
const (
	GroundChar  = '═'
	SubsoilChar = '░'
	SpikeChar   = '▲'
	MoverChar   = '◆'
	WallChar    = '█'
	PadChar     = '▀'
	CoinChar    = '●'
	RunnerChar  = '█'
	SpinChar    = '▓'
	EyeChar     = '▪'
	TrailChar   = '░'
	SparkChar   = '*'
	PuffChar    = '•'
	FadedChar   = '·'
	StarChar    = '.'
	BrightStar  = '+'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy  float64
	offsetX int
	rows    int
	cols    int
}

func newViewport(dst *core.Screen, snap sim.Snapshot, shakeX int) viewport {
	rows := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:      float64(dst.Width()) / snap.Width,
		sy:      float64(rows) / snap.Height,
		offsetX: shakeX,
		rows:    rows,
		cols:    dst.Width(),
	}
}

// cell converts a world point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x*v.sx)) + v.offsetX, int(math.Floor(y*v.sy)) + hudRows
}

// rect converts a world box to the cells it covers. Every box covers at
// least one cell so small objects never vanish.
func (v viewport) rect(b core.RectF) core.Rect {
	x0, y0 := v.cell(b.X, b.Y)
	x1 := int(math.Ceil(b.Right()*v.sx)) + v.offsetX
	y1 := int(math.Ceil(b.Bottom()*v.sy)) + hudRows
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.frame.Snapshot

	shakeX := 0
	if snap.Shake > 2 {
		// Alternate sides each frame while the camera is shaking.
		shakeX = 1 - 2*(g.ticks%2)
	}
	v := newViewport(dst, snap, shakeX)

	g.drawStars(dst, v, snap)
	g.drawGround(dst, v, snap)
	g.drawTrail(dst, v, snap)
	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, v, o)
	}
	g.drawRunner(dst, v, snap.Runner)
	g.drawParticles(dst, v, snap)
	g.drawHUD(dst, snap)

	switch {
	case snap.Phase == sim.PhaseIdle:
		g.drawCenteredMessage(dst, "N E O N   D A S H", "SPACE to start  |  Q to quit")
	case snap.Phase == sim.PhaseDead:
		g.drawCenteredMessage(dst, "CRASHED",
			fmt.Sprintf("Score: %d  Coins: +%d  |  R to restart", snap.Score(), snap.Coins()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawStars(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, s := range snap.Stars {
		x, y := v.cell(s.X, s.Y)
		if y < hudRows {
			continue
		}
		if s.Layer == 2 && s.Alpha > 0.5 {
			dst.SetColored(x, y, BrightStar, core.ColorWhite)
		} else {
			dst.SetColored(x, y, StarChar, core.ColorGray)
		}
	}
}

func (g *Game) drawGround(dst *core.Screen, v viewport, snap sim.Snapshot) {
	_, gy := v.cell(0, snap.GroundY)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, core.ColorCyan)
	for y := gy + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SubsoilChar, core.ColorBlue)
	}
}

func (g *Game) drawTrail(dst *core.Screen, v viewport, snap sim.Snapshot) {
	n := len(snap.Trail)
	for i, t := range snap.Trail {
		if t.Alpha < 0.1 {
			continue
		}
		// The runner never moves horizontally, so older segments are
		// smeared further left to read as motion.
		age := n - 1 - i
		color := skins.Resolve(t.Skin).Color
		if age > n/2 {
			color = color.Dim()
		}
		r := v.rect(core.RectF{X: t.X, Y: t.Y, W: t.W, H: t.H})
		dst.DrawVLine(r.X-1-age/4, r.Y, r.H, TrailChar, color)
	}
}

func (g *Game) drawObstacle(dst *core.Screen, v viewport, o sim.Obstacle) {
	switch ob := o.(type) {
	case *sim.Spike:
		dst.DrawRectColored(v.rect(ob.Bounds()), SpikeChar, core.ColorBrightRed)
	case *sim.TripleSpike:
		for _, sub := range ob.SubSpikes() {
			dst.DrawRectColored(v.rect(sub.Bounds()), SpikeChar, core.ColorBrightRed)
		}
	case *sim.MovingSpike:
		dst.DrawRectColored(v.rect(ob.Bounds()), MoverChar, core.ColorBrightMagenta)
	case *sim.Wall:
		dst.DrawRectColored(v.rect(ob.Bounds()), WallChar, core.ColorBrightBlue)
	case *sim.JumpPad:
		dst.DrawRectColored(v.rect(ob.Bounds()), PadChar, core.ColorMagenta)
	case *sim.Coin:
		if ob.Collected {
			return
		}
		x, y := v.cell(ob.X, ob.Y)
		dst.SetColored(x, y, CoinChar, core.ColorBrightYellow)
	}
}

func (g *Game) drawRunner(dst *core.Screen, v viewport, r sim.Runner) {
	body := v.rect(r.Bounds())

	ch := RunnerChar
	// Quarter turns alternate the texture while spinning.
	if !r.OnGround && int(r.Rotation/(math.Pi/4))%2 == 1 {
		ch = SpinChar
	}
	dst.DrawRectColored(body, ch, g.skin.Color)

	if g.skin.Face && r.OnGround && body.W >= 3 {
		dst.SetColored(body.X+body.W-2, body.Y, EyeChar, core.ColorBrightWhite)
	}
}

func (g *Game) drawParticles(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, p := range snap.Particles {
		x, y := v.cell(p.X, p.Y)
		if y < hudRows {
			continue
		}
		ch, color := PuffChar, tintColor(p.Tint)
		switch {
		case p.Alpha < 0.3:
			ch, color = FadedChar, color.Dim()
		case p.Spark:
			ch = SparkChar
		}
		dst.SetColored(x, y, ch, color)
	}
}

func tintColor(t sim.Tint) core.Color {
	switch t {
	case sim.TintViolet:
		return core.ColorMagenta
	case sim.TintWhite:
		return core.ColorBrightWhite
	default:
		return core.ColorBrightCyan
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	left := fmt.Sprintf(" SCORE %d   COINS %d   SPD %.1f ", snap.Score(), snap.Coins(), snap.Speed())
	dst.DrawTextColored(0, 0, left, core.ColorBrightCyan)

	right := fmt.Sprintf(" %s ", g.skin.Name)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, g.skin.Color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightMagenta)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
