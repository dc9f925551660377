package sim

// Snapshot is a read-only copy of the world after a step. It holds
// everything a renderer needs, and mutating it never affects the simulation.
type Snapshot struct {
	Phase   Phase
	Runner  Runner
	Session Session

	// Obstacles and coins in conveyor order. Collected coins are included
	// with Collected set; renderers skip them.
	Obstacles []Obstacle
	Particles []Particle
	Trail     []TrailSegment
	Stars     []Star

	Dilation float64
	Shake    float64

	Width   float64
	Height  float64
	GroundY float64
	Skin    string
}

// Score returns the run score.
func (s Snapshot) Score() int { return s.Session.Score }

// Coins returns the coins collected this run.
func (s Snapshot) Coins() int { return s.Session.Coins }

// Speed returns the current scroll speed.
func (s Snapshot) Speed() float64 { return s.Session.Speed }

// Snapshot copies the current world state.
func (s *Sim) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = o.clone()
	}

	return Snapshot{
		Phase:     s.phase,
		Runner:    s.runner,
		Session:   s.session,
		Obstacles: obstacles,
		Particles: append([]Particle(nil), s.fx.particles...),
		Trail:     append([]TrailSegment(nil), s.fx.trail...),
		Stars:     append([]Star(nil), s.fx.stars...),
		Dilation:  s.clock.Dilation(),
		Shake:     s.fx.shake,
		Width:     s.cfg.Field.Width,
		Height:    s.cfg.Field.Height,
		GroundY:   s.groundY,
		Skin:      s.skin,
	}
}
