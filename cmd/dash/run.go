package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/games/dash"
	"github.com/vovakirdan/neon-dash/internal/sim"
	"github.com/vovakirdan/neon-dash/internal/skins"
)

var (
	flagSteps      int
	flagDT         float64
	flagJumpEvery  int
	flagDifficulty string
	flagSkin       string
	flagRecord     bool
	flagVerbose    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a run without a terminal UI",
	Long: `Drive the simulation headless with a fixed frame delta and a scripted
jump pattern, logging every event and the final result. Useful for tuning
configs and checking that a seed reproduces.

The run stops at the first crash or after --steps frames.

Examples:
  dash run --seed 7
  dash run --seed 7 --jump-every 35 --steps 5000
  dash run --difficulty hard --dt 0.033 --verbose
  dash run --config ./my-dash.yaml --record`,
	Run: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagSteps, "steps", 3600, "Maximum number of frames to simulate")
	runCmd.Flags().Float64Var(&flagDT, "dt", 0.016, "Frame delta in seconds")
	runCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Request a jump every N frames (0 = never)")
	runCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	runCmd.Flags().StringVar(&flagSkin, "skin", skins.DefaultID, "Skin identifier tagged onto the trail")
	runCmd.Flags().BoolVar(&flagRecord, "record", false, "Store the run's score and coins in the database")
	runCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log simulation internals at debug level")
}

func runHeadless(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "neondash-run",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		logger.Error("unknown difficulty", "difficulty", flagDifficulty)
		os.Exit(1)
	}
	if _, err := skins.Lookup(flagSkin); err != nil {
		logger.Error("cannot use skin", "err", err)
		os.Exit(1)
	}

	cfg, err := config.LoadDash(flagConfig)
	if err != nil {
		logger.Warn("using default tuning", "err", err)
	}
	config.ApplyDashPreset(&cfg, preset)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mode := dash.ModeFor(preset)

	s := sim.New(cfg,
		sim.WithSeed(seed),
		sim.WithSkin(flagSkin),
		sim.WithLogger(logger.With("mode", mode.ID)),
	)
	s.Start()
	logger.Info("run started", "mode", mode.ID, "seed", seed, "dt", flagDT, "jump_every", flagJumpEvery)

	var (
		step int
		last sim.Frame
	)
	for step = 1; step <= flagSteps && s.Phase() == sim.PhaseRunning; step++ {
		in := sim.Input{JumpRequested: flagJumpEvery > 0 && step%flagJumpEvery == 0}
		last = s.Step(in, flagDT)
		for _, e := range last.Events {
			logger.Info(e.String(), "step", step, "score", last.Snapshot.Score())
		}
	}

	snap := last.Snapshot
	if s.Phase() != sim.PhaseDead {
		logger.Info("step limit reached",
			"steps", flagSteps,
			"score", snap.Score(),
			"coins", snap.Coins(),
			"speed", fmt.Sprintf("%.2f", snap.Speed()),
		)
		return
	}

	res := s.Result()
	logger.Info("run finished",
		"steps", step-1,
		"score", res.Score,
		"coins", res.CoinsEarned,
		"distance", fmt.Sprintf("%.1f", snap.Session.Distance),
		"elapsed", fmt.Sprintf("%.2fs", snap.Session.Elapsed),
	)

	if !flagRecord {
		return
	}
	store := mustOpenStore()
	defer store.Close()

	rec, err := store.RecordRun(mode.ID, res.Score, res.CoinsEarned)
	if err != nil {
		logger.Error("cannot record run", "err", err)
		return
	}
	logger.Info("run recorded", "mode", mode.ID, "best", rec.Best, "new_best", rec.NewBest, "wallet", rec.Wallet)
}
