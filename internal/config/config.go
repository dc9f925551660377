// Package config provides YAML-based tuning for the runner simulation and
// the difficulty presets exposed on the command line.
package config

// DashConfig contains every tunable of the runner simulation.
type DashConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Runner    RunnerConfig    `yaml:"runner"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Clock     ClockConfig     `yaml:"clock"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Collision CollisionConfig `yaml:"collision"`
	Effects   EffectsConfig   `yaml:"effects"`
}

// FieldConfig defines the world-space playfield. The ground line sits at
// floor(Height * GroundRatio).
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GroundRatio float64 `yaml:"ground_ratio"`
}

// RunnerConfig defines the runner box. X never changes during a run.
type RunnerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines integration constants. Impulses are negative (up).
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // vy gain per second
	JumpImpulse   float64 `yaml:"jump_impulse"`   // manual jump vy
	PadImpulse    float64 `yaml:"pad_impulse"`    // jump-pad vy
	InitialSpeed  float64 `yaml:"initial_speed"`  // scroll speed at run start
	MaxSpeed      float64 `yaml:"max_speed"`      // scroll speed ceiling
	SpeedRamp     float64 `yaml:"speed_ramp"`     // speed gain per second
	DistanceScale float64 `yaml:"distance_scale"` // world units per speed unit per second
	SpinRate      float64 `yaml:"spin_rate"`      // airborne radians per second
	SpinDecay     float64 `yaml:"spin_decay"`     // grounded rotation multiplier per step
	ScoreDivisor  float64 `yaml:"score_divisor"`  // distance units per score point
}

// ClockConfig defines frame-delta clamping and time dilation.
type ClockConfig struct {
	MaxDelta      float64 `yaml:"max_delta"`      // seconds
	FallbackDelta float64 `yaml:"fallback_delta"` // used for malformed deltas
	Easing        float64 `yaml:"easing"`         // fraction of the gap closed per step
	DeathDilation float64 `yaml:"death_dilation"` // dilation target after a fatal hit
}

// SpawnerConfig defines procedural generation of obstacle groups.
type SpawnerConfig struct {
	InitialGroups  int           `yaml:"initial_groups"`
	InitialSpacing float64       `yaml:"initial_spacing"`
	Lookahead      float64       `yaml:"lookahead"`
	Jitter         float64       `yaml:"jitter"`
	PruneMargin    float64       `yaml:"prune_margin"`
	CoinChance     float64       `yaml:"coin_chance"`
	Weights        SpawnWeights  `yaml:"weights"`
	Coin           CoinPlacement `yaml:"coin"`
}

// SpawnWeights is the relative frequency of each primary obstacle variant.
type SpawnWeights struct {
	Spike       float64 `yaml:"spike"`
	Wall        float64 `yaml:"wall"`
	TripleSpike float64 `yaml:"triple_spike"`
	MovingSpike float64 `yaml:"moving_spike"`
	JumpPad     float64 `yaml:"jump_pad"`
}

// Total returns the sum of all weights.
func (w SpawnWeights) Total() float64 {
	return w.Spike + w.Wall + w.TripleSpike + w.MovingSpike + w.JumpPad
}

// CoinPlacement defines where a group's optional coin lands relative to
// the primary obstacle.
type CoinPlacement struct {
	Radius      float64 `yaml:"radius"`
	OffsetMin   float64 `yaml:"offset_min"`   // horizontal offset from the obstacle's left edge
	OffsetRange float64 `yaml:"offset_range"` // random extra horizontal offset
	HeightMin   float64 `yaml:"height_min"`   // center height above ground
	HeightRange float64 `yaml:"height_range"` // random extra height
}

// CollisionConfig defines hit-test tolerances.
type CollisionConfig struct {
	CoinFudge float64 `yaml:"coin_fudge"` // added to coin radius
	PadReach  float64 `yaml:"pad_reach"`  // upward extension of the pad hit box
}

// EffectsConfig defines the purely cosmetic layer.
type EffectsConfig struct {
	TrailLength  int     `yaml:"trail_length"`
	TrailOpacity float64 `yaml:"trail_opacity"`
	TrailDecay   float64 `yaml:"trail_decay"`
	TrailDrift   float64 `yaml:"trail_drift"`
	PuffDecay    float64 `yaml:"puff_decay"`
	PuffGravity  float64 `yaml:"puff_gravity"`
	SparkDecay   float64 `yaml:"spark_decay"`
	SparkGravity float64 `yaml:"spark_gravity"`
	FadeEpsilon  float64 `yaml:"fade_epsilon"`
	Stars        int     `yaml:"stars"`
	DeathShake   float64 `yaml:"death_shake"`
	ShakeDecay   float64 `yaml:"shake_decay"`
}

// GroundY returns the world-space y of the ground line.
func (c DashConfig) GroundY() float64 {
	return float64(int(c.Field.Height * c.Field.GroundRatio))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
