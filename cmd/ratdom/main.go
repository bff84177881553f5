// SPDX-License-Identifier: MIT

// Command ratdom enumerates the urn model, builds its parametric transition
// matrix and computes the dominance relation between states, symbolically
// or by sampling λ.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ratdom/config"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	// flags
	configPath string
	verbose    bool
	size       int
	rounds     int
	workers    int

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ratdom",
		Short: "Exact dominance analysis of a parametric urn model",
		Long: `ratdom builds the transition matrix of an urn model whose entries are
rational functions of λ, and decides for which pairs of states one state's
growth dominates the other's for every λ ≥ 1.

Decisions are exact: arithmetic is over the rationals and signs are decided
with Sturm sequences.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "ratdom.yaml", "YAML configuration file (missing file uses defaults)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.IntVarP(&a.size, "size", "n", 0, "Number of balls (overrides config)")
	pf.IntVar(&a.rounds, "rounds", 0, "Symbolic refinement rounds (overrides config)")
	pf.IntVar(&a.workers, "workers", 0, "Goroutines per matrix multiplication (overrides config)")

	root.AddCommand(a.statesCmd(), a.matrixCmd(), a.relationCmd(), a.sampleCmd())

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = a.size
	}
	if flags.Changed("rounds") {
		cfg.Rounds = a.rounds
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger != nil {
		return nil
	}
	level, _ := cfg.ZapLevel()
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if a.logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
