package sim

import (
	"math"

	"github.com/vovakirdan/neon-dash/internal/core"
)

// launch applies a vertical impulse and leaves the ground. Manual jumps
// require ground contact; pad bounces are forced.
func (s *Sim) launch(impulse float64, force bool) bool {
	if !s.runner.OnGround && !force {
		return false
	}
	s.runner.VY = impulse
	s.runner.OnGround = false
	return true
}

// integrate advances scroll speed, distance and the runner's vertical motion.
// Velocity is in world units per step, so y advances by vy directly.
func (s *Sim) integrate(dt float64) {
	p := s.cfg.Physics

	s.session.Speed = math.Min(p.MaxSpeed, s.session.Speed+p.SpeedRamp*dt)
	s.session.Distance += s.session.Speed * p.DistanceScale * dt

	r := &s.runner
	r.VY += p.Gravity * dt
	r.Y += r.VY

	// Ground clamp is the only way back onto the ground.
	if r.Y+r.H >= s.groundY {
		r.Y = s.groundY - r.H
		r.VY = 0
		r.OnGround = true
	}

	if r.OnGround {
		r.Rotation *= p.SpinDecay
	} else {
		r.Rotation += p.SpinRate * dt
	}
}

// translate shifts the conveyor left by the distance covered this step and
// animates moving spikes.
func (s *Sim) translate(dt float64) {
	dx := s.session.Speed * s.cfg.Physics.DistanceScale * dt
	for _, o := range s.obstacles {
		o.shift(-dx)
		if m, ok := o.(*MovingSpike); ok {
			m.advance(dt)
		}
	}
}

// prune drops everything whose right edge is behind the left margin.
// List order is preserved.
func (s *Sim) prune() {
	limit := -s.cfg.Spawner.PruneMargin
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Bounds().Right() >= limit {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(s.obstacles); i++ {
		s.obstacles[i] = nil
	}
	s.obstacles = kept
}

// collide resolves runner contact against every live entity in list order.
// The first fatal overlap ends the run and stops evaluation.
func (s *Sim) collide() {
	c := s.cfg.Collision
	body := s.runner.Bounds()
	cx, cy := body.Center()

	for _, o := range s.obstacles {
		switch v := o.(type) {
		case *Coin:
			if v.Collected {
				continue
			}
			if core.WithinRadius(v.X, v.Y, v.Radius+c.CoinFudge, cx, cy) {
				v.Collected = true
				s.session.Coins++
				s.emit(CoinCollected{TotalThisRun: s.session.Coins})
				s.fx.sparks(v.X, v.Y, coinSparkCount)
			}

		case *JumpPad:
			if !s.runner.OnGround {
				continue
			}
			reach := v.Bounds()
			reach.Y -= c.PadReach
			reach.H += c.PadReach
			if body.Intersects(reach) {
				s.launch(s.cfg.Physics.PadImpulse, true)
				s.emit(PadBounced{})
				fx, fy := s.runner.X+s.runner.W/2, s.runner.Y+s.runner.H
				s.fx.puff(fx, fy, padPuffCount, TintViolet)
				s.fx.sparks(fx, fy, padSparkCount)
			}

		default:
			if body.Intersects(o.Bounds()) {
				s.die(o)
				return
			}
		}
	}
}
