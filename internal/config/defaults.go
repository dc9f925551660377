package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the built-in tuning. It mirrors defaults/dash.yaml
// and is used when the embedded YAML cannot be parsed.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		Field: FieldConfig{
			Width:       960,
			Height:      540,
			GroundRatio: 0.82,
		},
		Runner: RunnerConfig{
			X:      190,
			Width:  44,
			Height: 44,
		},
		Physics: PhysicsConfig{
			Gravity:       38,
			JumpImpulse:   -14.6,
			PadImpulse:    -18.5,
			InitialSpeed:  6.0,
			MaxSpeed:      13.2,
			SpeedRamp:     0.10,
			DistanceScale: 60,
			SpinRate:      7.8,
			SpinDecay:     0.84,
			ScoreDivisor:  22,
		},
		Clock: ClockConfig{
			MaxDelta:      0.033,
			FallbackDelta: 0.016,
			Easing:        0.08,
			DeathDilation: 0.25,
		},
		Spawner: SpawnerConfig{
			InitialGroups:  5,
			InitialSpacing: 320,
			Lookahead:      520,
			Jitter:         220,
			PruneMargin:    240,
			CoinChance:     0.70,
			Weights: SpawnWeights{
				Spike:       40,
				Wall:        22,
				TripleSpike: 16,
				MovingSpike: 12,
				JumpPad:     10,
			},
			Coin: CoinPlacement{
				Radius:      14,
				OffsetMin:   80,
				OffsetRange: 90,
				HeightMin:   110,
				HeightRange: 160,
			},
		},
		Collision: CollisionConfig{
			CoinFudge: 18,
			PadReach:  8,
		},
		Effects: EffectsConfig{
			TrailLength:  14,
			TrailOpacity: 0.22,
			TrailDecay:   0.88,
			TrailDrift:   0.02,
			PuffDecay:    0.95,
			PuffGravity:  0.10,
			SparkDecay:   0.93,
			SparkGravity: 0.06,
			FadeEpsilon:  0.05,
			Stars:        90,
			DeathShake:   16,
			ShakeDecay:   0.86,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML printed by `dash config`.
func GetDefaultYAML() []byte {
	return defaultDashYAML
}
