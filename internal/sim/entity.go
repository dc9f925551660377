package sim

import (
	"math"

	"github.com/vovakirdan/neon-dash/internal/core"
)

// Fixed per-variant geometry in world units.
const (
	spikeSize = 46

	wallWidth  = 54
	wallHeight = 82

	tripleWidth  = 100
	tripleHeight = 46

	padWidth  = 54
	padHeight = 16

	// Moving spikes bob around a point slightly above their resting height:
	// y = rest - (sin(phase)*bobAmplitude + bobLift).
	bobRate      = 3.2
	bobAmplitude = 18
	bobLift      = 10
	bobPhaseSeed = 10 // initial phase is drawn from [0, bobPhaseSeed)
)

// Kind identifies an obstacle variant.
type Kind int

const (
	KindSpike Kind = iota
	KindWall
	KindTripleSpike
	KindMovingSpike
	KindJumpPad
	KindCoin
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindSpike:
		return "spike"
	case KindWall:
		return "wall"
	case KindTripleSpike:
		return "triple-spike"
	case KindMovingSpike:
		return "moving-spike"
	case KindJumpPad:
		return "jump-pad"
	case KindCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Fatal reports whether touching this variant ends the run.
func (k Kind) Fatal() bool {
	return k != KindJumpPad && k != KindCoin
}

// Obstacle is anything riding the conveyor: the five obstacle variants and
// coins. The set of implementations is closed.
type Obstacle interface {
	Kind() Kind
	// Bounds is the axis-aligned box the renderer and pruning use.
	Bounds() core.RectF

	shift(dx float64)
	clone() Obstacle
}

// Box is the geometry shared by the rectangular variants.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Bounds returns the box as a rectangle.
func (b Box) Bounds() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

func (b *Box) shift(dx float64) { b.X += dx }

// groundBox returns a box of the given size resting on the ground line.
func groundBox(x, groundY, w, h float64) Box {
	return Box{X: x, Y: groundY - h, W: w, H: h}
}

// Spike is a single ground spike.
type Spike struct{ Box }

func (*Spike) Kind() Kind        { return KindSpike }
func (s *Spike) clone() Obstacle { return &Spike{s.Box} }

// Wall is a tall block.
type Wall struct{ Box }

func (*Wall) Kind() Kind        { return KindWall }
func (w *Wall) clone() Obstacle { return &Wall{w.Box} }

// TripleSpike is three spikes side by side, each a third of the width.
type TripleSpike struct{ Box }

func (*TripleSpike) Kind() Kind        { return KindTripleSpike }
func (t *TripleSpike) clone() Obstacle { return &TripleSpike{t.Box} }

// SubSpikes returns the three spike boxes, left to right.
func (t *TripleSpike) SubSpikes() [3]Box {
	w := t.W / 3
	var out [3]Box
	for i := range out {
		out[i] = Box{X: t.X + float64(i)*w, Y: t.Y, W: w, H: t.H}
	}
	return out
}

// MovingSpike bobs vertically, driven by its phase accumulator.
type MovingSpike struct {
	Box
	Phase float64
	RestY float64 // y when resting on the ground
}

func (*MovingSpike) Kind() Kind { return KindMovingSpike }
func (m *MovingSpike) clone() Obstacle {
	c := *m
	return &c
}

// advance steps the bob animation by dt seconds.
func (m *MovingSpike) advance(dt float64) {
	m.Phase += dt * bobRate
	m.Y = m.RestY - (math.Sin(m.Phase)*bobAmplitude + bobLift)
}

// JumpPad launches a grounded runner with the pad impulse. Never fatal.
type JumpPad struct{ Box }

func (*JumpPad) Kind() Kind        { return KindJumpPad }
func (j *JumpPad) clone() Obstacle { return &JumpPad{j.Box} }

// Coin is a pickup. X, Y is the center. A collected coin stays on the
// conveyor, inert, until it is pruned.
type Coin struct {
	X, Y      float64
	Radius    float64
	Collected bool
}

func (*Coin) Kind() Kind { return KindCoin }
func (c *Coin) clone() Obstacle {
	cp := *c
	return &cp
}

func (c *Coin) shift(dx float64) { c.X += dx }

// Bounds returns the square enclosing the coin.
func (c *Coin) Bounds() core.RectF {
	return core.RectF{X: c.X - c.Radius, Y: c.Y - c.Radius, W: 2 * c.Radius, H: 2 * c.Radius}
}

// Runner is the player-controlled box. X is fixed for the whole run.
type Runner struct {
	X, Y     float64
	W, H     float64
	VY       float64 // vertical velocity, world units per step; negative is up
	OnGround bool
	Rotation float64 // radians, cosmetic
}

// Bounds returns the runner's collision box.
func (r Runner) Bounds() core.RectF {
	return core.RectF{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Rightmost returns the furthest occupied x on the conveyor: obstacle right
// edges and coin centers. An empty conveyor reports 0.
func Rightmost(list []Obstacle) float64 {
	far := 0.0
	for _, o := range list {
		x := o.Bounds().Right()
		if c, ok := o.(*Coin); ok {
			x = c.X
		}
		far = math.Max(far, x)
	}
	return far
}
