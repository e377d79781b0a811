// Command lpstress runs a long randomized operation stream against an
// lpmap.HashMap and checks every result against a builtin map.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "", "path to a TOML config file")
	seed       = flag.Uint64("seed", 0, "override the configured seed")
	steps      = flag.Int("steps", 0, "override the configured number of steps")
	hasher     = flag.String("hasher", "", "override the configured hasher")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *steps != 0 {
		cfg.Steps = *steps
	}
	if *hasher != "" {
		cfg.Hasher = *hasher
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	res, err := Run(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("workload finished", res.fields()...)
	if logger.Core().Enabled(zap.DebugLevel) {
		fmt.Fprint(os.Stderr, res.Stats.ToString())
	}
	return nil
}
