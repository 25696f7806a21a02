package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/topo/config"
	"github.com/pthm-cable/topo/game"
	"github.com/pthm-cable/topo/session"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Render offscreen without a window")
	terminal := flag.Bool("terminal", false, "Render in the terminal with braille characters")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "Noise seed (0 = config, then time-based)")
	noiseKind := flag.String("noise", "", "Noise source: perlin or simplex (empty = use config)")
	maxFrames := flag.Uint64("max-frames", 0, "Stop after N frames (0 = unlimited)")
	restore := flag.String("restore", "", "Snapshot file to resume from")
	svgPath := flag.String("svg", "", "Write the last headless frame as SVG to this path")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	noiseSeed := *seed
	if noiseSeed == 0 {
		noiseSeed = cfg.Noise.Seed
	}
	if noiseSeed == 0 {
		noiseSeed = time.Now().UnixNano()
	}

	// The terminal owns stdout while drawing
	var logOut io.Writer = os.Stdout
	if *terminal {
		logOut = io.Discard
		if *outputDir != "" {
			if err := os.MkdirAll(*outputDir, 0755); err == nil {
				if f, err := os.Create(filepath.Join(*outputDir, "run.log")); err == nil {
					defer f.Close()
					logOut = f
				}
			}
		}
	}

	// Set up slog (JSON for structured logging)
	logger := slog.New(slog.NewJSONHandler(logOut, nil))
	slog.SetDefault(logger)

	opts := session.Options{
		NoiseKind:      *noiseKind,
		Seed:           noiseSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		SnapshotDir:    *snapshotDir,
		OutputDir:      *outputDir,
		MaxFrames:      *maxFrames,
		RestorePath:    *restore,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *headless:
		if err := session.RunHeadless(ctx, cfg, opts, session.DefaultAutopilot(), *svgPath); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}

	case *terminal:
		if err := runTerminal(ctx, cfg, opts); err != nil {
			slog.Error("terminal run failed", "error", err)
			os.Exit(1)
		}

	default:
		runWindow(cfg, opts)
	}
}

// runTerminal owns the tcell screen for the duration of the run.
func runTerminal(ctx context.Context, cfg *config.Config, opts session.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return session.RunTerminal(ctx, cfg, opts, screen)
}

// runWindow opens the raylib window and runs the frame loop.
func runWindow(cfg *config.Config, opts session.Options) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if cfg.Screen.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Topo")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() && !g.Done() {
		g.Update()
		g.Draw()
	}
}
