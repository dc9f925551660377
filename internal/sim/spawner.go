package sim

import (
	"math/rand"

	"github.com/vovakirdan/neon-dash/internal/config"
)

// Spawner emits obstacle groups ahead of the visible field. Each group is
// one primary obstacle plus an optional coin. Groups are only placed past
// everything already on the conveyor, so spacing rather than frequency
// controls difficulty.
type Spawner struct {
	cfg     config.SpawnerConfig
	rng     *rand.Rand
	fieldW  float64
	groundY float64
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.SpawnerConfig, fieldW, groundY float64) *Spawner {
	return &Spawner{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		fieldW:  fieldW,
		groundY: groundY,
	}
}

// Reset reseeds the RNG.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
}

// Populate appends the initial lookahead window: InitialGroups groups
// starting at the field's right edge, InitialSpacing apart.
func (sp *Spawner) Populate(list []Obstacle) []Obstacle {
	for i := 0; i < sp.cfg.InitialGroups; i++ {
		list = sp.Group(list, sp.fieldW+float64(i)*sp.cfg.InitialSpacing)
	}
	return list
}

// Fill appends one group when the conveyor does not reach the lookahead
// edge. It reports whether a group was spawned.
func (sp *Spawner) Fill(list []Obstacle) ([]Obstacle, bool) {
	edge := sp.fieldW + sp.cfg.Lookahead
	if Rightmost(list) >= edge {
		return list, false
	}
	x := edge + sp.rng.Float64()*sp.cfg.Jitter
	return sp.Group(list, x), true
}

// Group appends a primary obstacle with its left edge at x and, with
// CoinChance probability, a coin above and after it.
func (sp *Spawner) Group(list []Obstacle, x float64) []Obstacle {
	list = append(list, sp.primary(sp.pickKind(), x))

	if sp.rng.Float64() < sp.cfg.CoinChance {
		c := sp.cfg.Coin
		cy := sp.groundY - (c.HeightMin + sp.rng.Float64()*c.HeightRange)
		cx := x + c.OffsetMin + sp.rng.Float64()*c.OffsetRange
		list = append(list, &Coin{X: cx, Y: cy, Radius: c.Radius})
	}
	return list
}

// pickKind draws a primary variant from the weighted distribution.
func (sp *Spawner) pickKind() Kind {
	w := sp.cfg.Weights
	roll := sp.rng.Float64() * w.Total()

	table := [...]struct {
		kind   Kind
		weight float64
	}{
		{KindSpike, w.Spike},
		{KindWall, w.Wall},
		{KindTripleSpike, w.TripleSpike},
		{KindMovingSpike, w.MovingSpike},
		{KindJumpPad, w.JumpPad},
	}
	for _, entry := range table {
		if roll < entry.weight {
			return entry.kind
		}
		roll -= entry.weight
	}
	return KindJumpPad
}

// primary builds the obstacle for a variant, resting on the ground.
func (sp *Spawner) primary(kind Kind, x float64) Obstacle {
	gy := sp.groundY
	switch kind {
	case KindWall:
		return &Wall{groundBox(x, gy, wallWidth, wallHeight)}
	case KindTripleSpike:
		return &TripleSpike{groundBox(x, gy, tripleWidth, tripleHeight)}
	case KindMovingSpike:
		box := groundBox(x, gy, spikeSize, spikeSize)
		return &MovingSpike{Box: box, RestY: box.Y, Phase: sp.rng.Float64() * bobPhaseSeed}
	case KindJumpPad:
		return &JumpPad{groundBox(x, gy, padWidth, padHeight)}
	default:
		return &Spike{groundBox(x, gy, spikeSize, spikeSize)}
	}
}
