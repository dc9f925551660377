package config

import (
	"errors"
	"fmt"
)

// ApplyDashPreset adjusts the speed tuning for a difficulty preset.
// "normal" and "" leave the config untouched.
func ApplyDashPreset(cfg *DashConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.InitialSpeed *= 0.85
		cfg.Physics.SpeedRamp *= 0.5
	case DifficultyHard:
		// Start 40% of the way to the ceiling.
		cfg.Physics.InitialSpeed += 0.4 * (cfg.Physics.MaxSpeed - cfg.Physics.InitialSpeed)
		cfg.Physics.SpeedRamp *= 1.5
	case DifficultyFixed:
		cfg.Physics.SpeedRamp = 0
	}
}

// Validate reports the first tunable that would make the simulation
// degenerate.
func (c DashConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return errors.New("config: field dimensions must be positive")
	case c.Field.GroundRatio <= 0 || c.Field.GroundRatio > 1:
		return fmt.Errorf("config: ground_ratio %v out of (0, 1]", c.Field.GroundRatio)
	case c.Runner.Width <= 0 || c.Runner.Height <= 0:
		return errors.New("config: runner dimensions must be positive")
	case c.Physics.InitialSpeed < 0 || c.Physics.MaxSpeed < c.Physics.InitialSpeed:
		return fmt.Errorf("config: speed range [%v, %v] is invalid", c.Physics.InitialSpeed, c.Physics.MaxSpeed)
	case c.Physics.ScoreDivisor <= 0:
		return errors.New("config: score_divisor must be positive")
	case c.Clock.MaxDelta <= 0 || c.Clock.FallbackDelta <= 0:
		return errors.New("config: clock deltas must be positive")
	case c.Clock.Easing < 0 || c.Clock.Easing > 1:
		return fmt.Errorf("config: clock easing %v out of [0, 1]", c.Clock.Easing)
	case c.Spawner.Weights.Total() <= 0:
		return errors.New("config: spawn weights must sum to a positive value")
	case c.Spawner.CoinChance < 0 || c.Spawner.CoinChance > 1:
		return fmt.Errorf("config: coin_chance %v out of [0, 1]", c.Spawner.CoinChance)
	}
	return nil
}
