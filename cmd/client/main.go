// Command client opens the YARPGP window and runs the demo scene.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/yarpgp/internal/config"
	"github.com/Faultbox/yarpgp/internal/game"
	"github.com/Faultbox/yarpgp/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== YARPGP ===",
		zap.String("assets", cfg.Assets.Root),
		zap.String("map", cfg.Assets.Map),
		zap.Duration("tick", cfg.Simulation.Tick),
		zap.Bool("audio", cfg.Audio.Enabled),
	)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		return 1
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		return 1
	}

	logger.Info("game closed normally", zap.Uint64("ticks", g.Ticks()))
	return 0
}
