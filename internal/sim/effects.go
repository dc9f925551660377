package sim

import (
	"math/rand"

	"github.com/vovakirdan/neon-dash/internal/config"
)

// Burst and starfield shapes. Decorations advance per frame, not per
// simulated second, so they keep moving while the clock is dilated.
const (
	puffSpread   = 3.2
	puffRadius   = 2
	puffRadiusUp = 4

	sparkSpread   = 6.2
	sparkRadius   = 1.8
	sparkRadiusUp = 2.4

	starBand       = 0.75 // stars occupy the top fraction of the field
	starParallax   = 0.18 // star drift per unit of scroll speed
	starNearFactor = 1.4  // extra drift for the near layer
	starIdleDrift  = 0.5
	starWrapMargin = 10

	jumpPuffCount  = 14
	padPuffCount   = 18
	padSparkCount  = 10
	coinSparkCount = 14
	deathSparks    = 28
	deathPuffCount = 22
)

// Tint is the glow color family of a particle.
type Tint int

const (
	TintCyan Tint = iota
	TintViolet
	TintWhite
)

// Particle is a decaying decorative dot. Sparks fall slower and fade faster
// than puffs.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Radius float64
	Spark  bool
	Tint   Tint
}

// TrailSegment is a ghost copy of the runner box left behind while running.
type TrailSegment struct {
	X, Y  float64
	W, H  float64
	Alpha float64
	Skin  string
}

// Star is a background starfield point. Layer 2 drifts faster.
type Star struct {
	X, Y  float64
	Size  float64
	Alpha float64
	Layer int
}

// effects owns every purely cosmetic entity. It draws from its own RNG so
// that decoration never perturbs obstacle generation.
type effects struct {
	cfg       config.EffectsConfig
	rng       *rand.Rand
	width     float64
	height    float64
	particles []Particle
	trail     []TrailSegment
	stars     []Star
	shake     float64
}

func newEffects(cfg config.EffectsConfig, seed int64, width, height float64) *effects {
	fx := &effects{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
	}
	fx.seedStars()
	return fx
}

func (fx *effects) seedStars() {
	fx.stars = make([]Star, fx.cfg.Stars)
	for i := range fx.stars {
		layer := 1
		if fx.rng.Float64() >= 0.5 {
			layer = 2
		}
		fx.stars[i] = Star{
			X:     fx.rng.Float64() * fx.width,
			Y:     fx.rng.Float64() * fx.height * starBand,
			Size:  0.7 + fx.rng.Float64()*1.9,
			Alpha: 0.25 + fx.rng.Float64()*0.55,
			Layer: layer,
		}
	}
}

// clear drops particles, trail and shake. Stars persist across runs.
func (fx *effects) clear() {
	fx.particles = fx.particles[:0]
	fx.trail = fx.trail[:0]
	fx.shake = 0
}

func (fx *effects) puff(x, y float64, n int, tint Tint) {
	for i := 0; i < n; i++ {
		fx.particles = append(fx.particles, Particle{
			X:      x,
			Y:      y,
			VX:     (fx.rng.Float64() - 0.5) * puffSpread,
			VY:     -fx.rng.Float64() * puffSpread,
			Alpha:  1,
			Radius: puffRadius + fx.rng.Float64()*puffRadiusUp,
			Tint:   tint,
		})
	}
}

func (fx *effects) sparks(x, y float64, n int) {
	for i := 0; i < n; i++ {
		fx.particles = append(fx.particles, Particle{
			X:      x,
			Y:      y,
			VX:     (fx.rng.Float64() - 0.5) * sparkSpread,
			VY:     (fx.rng.Float64() - 0.5) * sparkSpread,
			Alpha:  1,
			Radius: sparkRadius + fx.rng.Float64()*sparkRadiusUp,
			Spark:  true,
			Tint:   TintWhite,
		})
	}
}

// pushTrail records the runner pose, keeping at most TrailLength segments.
func (fx *effects) pushTrail(r Runner, skin string) {
	fx.trail = append(fx.trail, TrailSegment{
		X:     r.X,
		Y:     r.Y,
		W:     r.W,
		H:     r.H,
		Alpha: fx.cfg.TrailOpacity,
		Skin:  skin,
	})
	if over := len(fx.trail) - fx.cfg.TrailLength; over > 0 {
		fx.trail = append(fx.trail[:0], fx.trail[over:]...)
	}
}

// update advances one frame of decoration. scroll is the current scroll
// speed while running, or 0 when the conveyor is stopped.
func (fx *effects) update(scroll float64) {
	drift := starIdleDrift
	if scroll > 0 {
		drift = scroll * starParallax
	}
	for i := range fx.stars {
		s := &fx.stars[i]
		if s.Layer == 2 {
			s.X -= drift * starNearFactor
		} else {
			s.X -= drift
		}
		if s.X < -starWrapMargin {
			s.X = fx.width + starWrapMargin
		}
	}

	fx.shake *= fx.cfg.ShakeDecay

	live := fx.particles[:0]
	for _, p := range fx.particles {
		p.X += p.VX
		p.Y += p.VY
		if p.Spark {
			p.VY += fx.cfg.SparkGravity
			p.Alpha *= fx.cfg.SparkDecay
		} else {
			p.VY += fx.cfg.PuffGravity
			p.Alpha *= fx.cfg.PuffDecay
		}
		if p.Alpha >= fx.cfg.FadeEpsilon {
			live = append(live, p)
		}
	}
	fx.particles = live

	trail := fx.trail[:0]
	for _, t := range fx.trail {
		t.Alpha *= fx.cfg.TrailDecay
		t.Y += fx.cfg.TrailDrift
		if t.Alpha >= fx.cfg.FadeEpsilon {
			trail = append(trail, t)
		}
	}
	fx.trail = trail
}
