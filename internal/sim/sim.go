// Package sim implements the endless-runner simulation: a runner box
// auto-scrolls over a procedurally spawned obstacle conveyor and can only
// jump. The package does no rendering, persistence or timing of its own;
// the host calls Step once per frame and reacts to the returned events.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-dash/internal/config"
)

// Input is the player intent captured before a step.
type Input struct {
	JumpRequested bool
}

// Frame is the output of one step.
type Frame struct {
	Snapshot Snapshot
	Events   []Event // in the order they occurred
}

// Option configures a Sim.
type Option func(*Sim)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSkin sets the cosmetic skin identifier tagged onto trail segments.
func WithSkin(skin string) Option {
	return func(s *Sim) { s.skin = skin }
}

// WithSeed sets the obstacle RNG seed. Decorations use a derived seed.
func WithSeed(seed int64) Option {
	return func(s *Sim) { s.seed = seed }
}

// Sim is the simulation context. All state lives here; a host may run any
// number of independent instances. Sim is not safe for concurrent use.
type Sim struct {
	cfg     config.DashConfig
	log     *log.Logger
	seed    int64
	skin    string
	groundY float64

	clock   *Clock
	spawner *Spawner
	fx      *effects

	phase     Phase
	runner    Runner
	session   Session
	result    Result
	obstacles []Obstacle

	pendingJumps int
	events       []Event
}

// New creates a simulation in the Idle phase.
func New(cfg config.DashConfig, opts ...Option) *Sim {
	s := &Sim{
		cfg:  cfg,
		log:  log.New(io.Discard),
		seed: 1,
		skin: "classic",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.groundY = cfg.GroundY()
	s.clock = NewClock(cfg.Clock)
	s.spawner = NewSpawner(s.seed, cfg.Spawner, cfg.Field.Width, s.groundY)
	s.fx = newEffects(cfg.Effects, s.seed+1, cfg.Field.Width, cfg.Field.Height)
	s.reset()
	return s
}

// Phase returns the current lifecycle phase.
func (s *Sim) Phase() Phase { return s.phase }

// Result returns the outcome of the last finished run. It is zero until a
// run has ended.
func (s *Sim) Result() Result { return s.result }

// Skin returns the skin identifier tagged onto decorations.
func (s *Sim) Skin() string { return s.skin }

// SetSkin changes the skin identifier. It has no gameplay effect.
func (s *Sim) SetSkin(skin string) { s.skin = skin }

// Reset returns to Idle with cleared state. It is ignored while a run is in
// progress and reports whether the phase is now Idle.
func (s *Sim) Reset() bool {
	if s.phase == PhaseRunning {
		return false
	}
	s.reset()
	s.log.Debug("reset")
	return true
}

func (s *Sim) reset() {
	s.phase = PhaseIdle
	s.restRunner()
	s.session = Session{Speed: s.cfg.Physics.InitialSpeed}
	s.clearConveyor()
	s.fx.clear()
	s.clock.Reset()
	s.pendingJumps = 0
}

// Start begins a run. It only has an effect from Idle and reports whether a
// run was started.
func (s *Sim) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}

	s.restRunner()
	s.session = Session{Speed: s.cfg.Physics.InitialSpeed}
	s.result = Result{}
	s.clearConveyor()
	s.fx.clear()
	s.clock.Reset()
	s.pendingJumps = 0

	s.obstacles = s.spawner.Populate(s.obstacles)
	s.phase = PhaseRunning
	s.log.Debug("run started", "groups", len(s.obstacles))
	return true
}

// Reseed restarts the obstacle RNG. Runs started afterwards replay the same
// layout for the same seed.
func (s *Sim) Reseed(seed int64) {
	s.seed = seed
	s.spawner.Reset(seed)
}

// RequestJump queues one jump intent for the next step. Any number of
// requests before a step count as a single attempt. Requests outside a run
// are discarded.
func (s *Sim) RequestJump() {
	if s.phase != PhaseRunning {
		return
	}
	s.pendingJumps++
}

// Step advances the simulation by one frame. rawDt is the wall-clock time in
// seconds since the previous frame; malformed values are replaced by a
// nominal frame. Step never fails.
func (s *Sim) Step(in Input, rawDt float64) Frame {
	dt := s.clock.Advance(rawDt)

	wantJump := in.JumpRequested || s.pendingJumps > 0
	s.pendingJumps = 0
	s.events = nil

	scroll := 0.0
	if s.phase == PhaseRunning {
		s.advanceRun(dt, wantJump)
		if s.phase == PhaseRunning {
			scroll = s.session.Speed
		}
	}
	s.fx.update(scroll)

	return Frame{Snapshot: s.Snapshot(), Events: s.events}
}

// advanceRun is one gameplay step: jump, integration, conveyor, spawning,
// scoring and collisions, in that order.
func (s *Sim) advanceRun(dt float64, wantJump bool) {
	s.session.Elapsed += dt

	if wantJump && s.launch(s.cfg.Physics.JumpImpulse, false) {
		s.emit(Jumped{})
		s.fx.puff(s.runner.X+s.runner.W/2, s.runner.Y+s.runner.H, jumpPuffCount, TintCyan)
	}

	s.integrate(dt)
	s.translate(dt)
	s.prune()

	var spawned bool
	if s.obstacles, spawned = s.spawner.Fill(s.obstacles); spawned {
		s.log.Debug("spawned group", "distance", s.session.Distance, "live", len(s.obstacles))
	}

	s.session.Score = scoreFor(s.session.Distance, s.cfg.Physics.ScoreDivisor)
	s.fx.pushTrail(s.runner, s.skin)

	s.collide()
}

// die ends the run on a fatal hit.
func (s *Sim) die(cause Obstacle) {
	s.phase = PhaseDead
	s.result = Result{Score: s.session.Score, CoinsEarned: s.session.Coins}
	s.clock.SetTarget(s.cfg.Clock.DeathDilation)
	s.fx.shake = s.cfg.Effects.DeathShake

	cx, cy := s.runner.Bounds().Center()
	s.fx.sparks(cx, cy, deathSparks)
	s.fx.puff(cx, cy, deathPuffCount, TintViolet)

	s.emit(Died{Score: s.result.Score, CoinsEarned: s.result.CoinsEarned})
	s.log.Debug("run ended",
		"cause", cause.Kind(),
		"score", s.result.Score,
		"coins", s.result.CoinsEarned,
		"elapsed", s.session.Elapsed,
	)
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Sim) restRunner() {
	rc := s.cfg.Runner
	s.runner = Runner{
		X:        rc.X,
		Y:        s.groundY - rc.Height,
		W:        rc.Width,
		H:        rc.Height,
		OnGround: true,
	}
}

func (s *Sim) clearConveyor() {
	for i := range s.obstacles {
		s.obstacles[i] = nil
	}
	s.obstacles = s.obstacles[:0]
}
