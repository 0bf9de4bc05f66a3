// Command scriptsim runs the demo scene without a window and prints one line
// per entity per tick: tick, name, facing, x and y.
//
// Usage:
//
//	scriptsim [flags] [config.yaml]
//
// A config file given as argument is read without the client's discovery
// rules.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/yarpgp/internal/assets"
	"github.com/Faultbox/yarpgp/internal/config"
	"github.com/Faultbox/yarpgp/internal/engine/character"
	"github.com/Faultbox/yarpgp/internal/game/world"
	"github.com/Faultbox/yarpgp/internal/logger"
)

var (
	flagTicks  = flag.Int("ticks", 354, "Number of ticks to simulate")
	flagEntity = flag.String("entity", "", "Only trace the named entity")
	flagUseMap = flag.Bool("use-map", false, "Load the configured map for spawn points")
)

func main() {
	config.ParseFlags()

	var cfg *config.Config
	var err error
	if path := flag.Arg(0); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Diagnostics go to the log file only so stdout stays a clean trace.
	if cfg.Logging.LogFile != "" {
		if err := logger.InitWithFileConfig(cfg.Logging.Level, logger.DefaultFileConfig(cfg.Logging.LogFile), false); err != nil {
			fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	w, err := buildWorld(cfg, *flagUseMap)
	if err != nil {
		logger.Error("failed to build scene", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Scene error: %v\n", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := trace(out, w, cfg, *flagTicks, *flagEntity); err != nil {
		fmt.Fprintf(os.Stderr, "Trace error: %v\n", err)
		os.Exit(1)
	}
}

func buildWorld(cfg *config.Config, useMap bool) (*world.World, error) {
	w := world.New()
	if useMap && cfg.Assets.Map != "" {
		am, err := assets.NewDirManager(cfg.Assets.Root)
		if err != nil {
			return nil, err
		}
		defer am.Close()

		tm, err := world.LoadTileMap(am.FS(), cfg.Assets.Map)
		if err != nil {
			return nil, err
		}
		w.SetTileMap(tm)
	}
	if err := world.PopulateDemo(w, world.DemoOptionsFromConfig(cfg)); err != nil {
		return nil, err
	}
	return w, nil
}

// trace runs ticks with no player input. Tick numbers start at 1.
func trace(out io.Writer, w *world.World, cfg *config.Config, ticks int, only string) error {
	for t := 1; t <= ticks; t++ {
		w.Tick(cfg.Simulation.Tick, character.Intents{}, false)
		for _, e := range w.Entities() {
			if only != "" && e.Name != only {
				continue
			}
			if _, err := fmt.Fprintf(out, "%d\t%s\t%s\t%.3f\t%.3f\n", t, e.Name, e.Facing, e.Position.X, e.Position.Y); err != nil {
				return err
			}
		}
	}
	return nil
}
