package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/lixenwraith/microcosm/config"
	"github.com/lixenwraith/microcosm/core"
	"github.com/lixenwraith/microcosm/engine"
	"github.com/lixenwraith/microcosm/vmath"
)

// flag name to config key
var flagKeys = map[string]string{
	"debug":        "debug",
	"headless":     "headless",
	"ticks":        "ticks",
	"audio":        "audio",
	"tick-rate":    "tickRate",
	"seed":         "world.seed",
	"spawn-chance": "world.spawnChance",
}

func main() {
	// Panic recovery: restore the terminal even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stderr))
}

// run resolves configuration, builds the world and drives it until exit
// Returns the process exit code
func run(args []string, stderr io.Writer) int {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := loadConfig(fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	seed := cfg.World.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	world, err := newWorld(cfg, vmath.NewFastRand(seed))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		logger := newConsoleLogger(stderr, cfg.Debug, !isTerminal(stderr))
		world.SetLogger(logger.With().Str("component", "world").Logger())
		logger.Info().Uint64("seed", seed).Msg("starting headless")
		runHeadless(ctx, world, cfg.Ticks, logger)
		return 0
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	var logOut io.Writer = io.Discard
	if logFile != nil {
		logOut = logFile
	}
	logger := newFileLogger(logOut, cfg.Debug)
	world.SetLogger(logger.With().Str("component", "world").Logger())
	logger.Info().Uint64("seed", seed).Int("tickRate", cfg.TickRate).Msg("starting terminal")

	if err := runTerminal(ctx, cfg, world, logger); err != nil {
		fmt.Fprintf(stderr, "terminal: %v\n", err)
		return 1
	}
	return 0
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("microcosm", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "scene file (toml, yaml or json) merged over the built-in scene")
	fs.Bool("debug", false, "write debug logs to logs/microcosm.log")
	fs.Bool("headless", false, "run without a terminal and log a summary")
	fs.Int("ticks", 3600, "headless run length in ticks, 0 runs until interrupted")
	fs.Bool("audio", true, "play sound cues")
	fs.Int("tick-rate", 60, "simulation ticks per second")
	fs.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	fs.Float64("spawn-chance", 0.05, "per-tick probability of an edge debris spawn")
	return fs
}

// loadConfig layers flags over file, environment and defaults, then validates
func loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	v := viper.New()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}

	path, _ := fs.GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newWorld(cfg *config.Config, rng vmath.Rand) (*engine.World, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	attractor, err := cfg.AttractorBody()
	if err != nil {
		return nil, err
	}

	return engine.NewWorld(engine.Options{
		Width:       cfg.World.Width,
		Height:      cfg.World.Height,
		SpawnChance: cfg.World.SpawnChance,
		Attractor:   attractor,
		Catalog:     catalog,
		Rand:        rng,
	}), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// logSummary writes every registry metric on one line
func logSummary(logger zerolog.Logger, world *engine.World, msg string) {
	ev := logger.Info().Int64("tick", world.Tick())
	for _, f := range world.Status().Fields() {
		ev = ev.Str(f.Key, f.Value)
	}
	ev.Msg(msg)
}
