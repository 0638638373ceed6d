// Package main provides the robosim binary: a command-line toy robot
// simulator reading commands from named files or standard input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/robosim/internal/config"
	"github.com/cory-johannsen/robosim/internal/game/world"
	"github.com/cory-johannsen/robosim/internal/observability"
	"github.com/cory-johannsen/robosim/internal/sim"
)

func main() {
	os.Exit(run())
}

// run wires the world and processes every input source. It returns the
// process exit code: 0 on EOF or quit, 1 on an unrecoverable startup
// error.
func run() int {
	configPath := flag.String("config", "", "path to YAML configuration file; empty = built-in defaults")
	scenarioPath := flag.String("scenario", "", "path to scenario YAML overriding the configured table and robots")
	flag.Parse()

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		log.Printf("loading config: %v", err)
		return 1
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Printf("initializing logger: %v", err)
		return 1
	}
	defer logger.Sync()

	scenario := cfg.Scenario()
	if *scenarioPath != "" {
		scenario, err = world.LoadScenarioFromFile(*scenarioPath)
		if err != nil {
			logger.Error("loading scenario", zap.Error(err))
			return 1
		}
	}

	w, err := sim.NewWorld(scenario, logger, os.Stdout, os.Stderr)
	if err != nil {
		logger.Error("building world", zap.Error(err))
		return 1
	}

	// Read from supplied files, processed in argument order, or else
	// stdin. One world retains state across all of them.
	files := flag.Args()
	if len(files) == 0 {
		w.Run(sim.NewSource(os.Stdin))
		return 0
	}

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open file %s for reading: %v\n", path, err)
			return 1
		}
		src := sim.NewSource(f)
		quit := w.Run(src)
		if err := src.Err(); err != nil {
			logger.Warn("reading commands", zap.String("file", path), zap.Error(err))
		}
		f.Close()
		if quit {
			break
		}
	}
	return 0
}
