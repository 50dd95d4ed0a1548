// SPDX-License-Identifier: MIT
// Package: transmission/cmd/transmission
//
// root.go - root command, persistent flags, config and logger setup.
//
// Precedence: built-in defaults, then the --config file, then flags that
// were set explicitly.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/transmission/internal/config"
	"github.com/katalvlaran/transmission/internal/logging"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile   string
	verbose   bool
	seed      int64
	maxStates int
	timeout   time.Duration
	render    string
	writeTree string
	writeSeq  string

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "transmission",
		Short: "Reconstruct caterpillar trees from status sequences",
		Long: `transmission computes status sequences of trees and reconstructs a
caterpillar with a given status sequence, if one exists.

Every reconstruction is checked by recomputing the witness's sequence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging, including engine traces")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (0 derives one from the clock)")
	pf.IntVar(&a.maxStates, "max-states", 0, "bound on expanded search states (0 means unbounded)")
	pf.DurationVar(&a.timeout, "timeout", 0, "time limit per reconstruction (0 means none)")
	pf.StringVar(&a.render, "render", "", "tree rendering: vertical, indent, outline or none")
	pf.StringVar(&a.writeTree, "write-tree", "", "store the reconstructed tree as an edge list at this path")
	pf.StringVar(&a.writeSeq, "write-seq", "", "store the analysed status sequence at this path")

	root.AddCommand(
		newTreeCmd(a),
		newSeqCmd(a),
		newRandomCmd(a),
		newBatchCmd(a),
	)
	return root
}

// setup loads the config file, applies explicitly set flags over it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Generator.Seed = a.seed
	}
	if flags.Changed("max-states") {
		cfg.Engine.MaxStates = a.maxStates
	}
	if flags.Changed("timeout") {
		cfg.Engine.Timeout = a.timeout
	}
	if flags.Changed("render") {
		cfg.Output.Render = a.render
	}
	if cfg.Generator.Seed == 0 {
		cfg.Generator.Seed = time.Now().UnixNano()
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logging.New(cfg.Log.Level, a.verbose); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	a.log.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.Int64("seed", cfg.Generator.Seed),
		zap.Int("max_states", cfg.Engine.MaxStates),
		zap.Duration("timeout", cfg.Engine.Timeout),
		zap.String("render", cfg.Output.Render))
	return nil
}
