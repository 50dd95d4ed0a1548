// SPDX-License-Identifier: MIT
// Package: transmission/cmd/transmission
//
// commands.go - tree, seq, random and batch subcommands.

package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/transmission/builder"
	"github.com/katalvlaran/transmission/caterpillar"
	"github.com/katalvlaran/transmission/sequence"
	"github.com/katalvlaran/transmission/status"
	"github.com/katalvlaran/transmission/treeio"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Analyse a tree stored as an edge list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := treeio.ReadFile(args[0])
			if err != nil {
				return err
			}
			return a.analyse(cmd.Context(), cmd.OutOrStdout(), t)
		},
	}
}

func newSeqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seq <file>",
		Short: "Reconstruct a caterpillar from a status sequence file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			seq, err := sequence.Read(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status sequence: %s\n", seq)
			if err = a.storeSequence(seq); err != nil {
				return err
			}
			return a.reconstruct(cmd.Context(), out, seq)
		},
	}
}

func newRandomCmd(a *app) *cobra.Command {
	random := &cobra.Command{
		Use:   "random",
		Short: "Generate random input and reconstruct it",
	}

	shapes := []struct {
		use, short string
		ctor       func(n int) builder.Constructor
	}{
		{"tree <n>", "uniformly attached random tree", builder.RandomTree},
		{"cat <n>", "random caterpillar", builder.RandomCaterpillar},
		{"sparse <n>", "caterpillar with at most one leaf per backbone vertex", builder.SparseCaterpillar},
	}
	for _, sh := range shapes {
		random.AddCommand(&cobra.Command{
			Use:   sh.use,
			Short: "Analyse a " + sh.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := positive(args[0])
				if err != nil {
					return err
				}
				t, err := builder.Build(sh.ctor(n), a.builderOptions(0)...)
				if err != nil {
					return err
				}
				a.log.Info("generated", zap.String("shape", cmd.Name()), zap.Int("vertices", n))
				return a.analyse(cmd.Context(), cmd.OutOrStdout(), t)
			},
		})
	}

	random.AddCommand(&cobra.Command{
		Use:   "seq <n> <avg>",
		Short: "Reconstruct a random sequence with average multiplicity avg",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := positive(args[0])
			if err != nil {
				return err
			}
			avg, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("avg %q: %w", args[1], err)
			}
			seq, err := builder.RandomSequence(n, avg, a.builderOptions(0)...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status sequence: %s\n", seq)
			if err = a.storeSequence(seq); err != nil {
				return err
			}
			return a.reconstruct(cmd.Context(), out, seq)
		},
	})
	return random
}

// outcome is the result of one batch round trip.
type outcome struct {
	seq sequence.Sequence
	res *caterpillar.Result
	err error
}

func (o outcome) matched() bool {
	return o.err == nil && sequence.Equal(o.seq, o.res.Sequence)
}

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <n> <count>",
		Short: "Reconstruct count random caterpillars with n vertices concurrently",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := positive(args[0])
			if err != nil {
				return err
			}
			count, err := positive(args[1])
			if err != nil {
				return err
			}

			if workers < 1 {
				return fmt.Errorf("--workers %d: must be at least 1", workers)
			}

			outcomes := make([]outcome, count)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i := range count {
				g.Go(func() error {
					t, err := builder.Build(builder.RandomCaterpillar(n), a.builderOptions(i)...)
					if err != nil {
						return err
					}
					seq, err := status.Sequence(t)
					if err != nil {
						return err
					}
					res, err := a.solve(ctx, seq)
					outcomes[i] = outcome{seq: seq, res: res, err: err}
					return nil
				})
			}
			if err = g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			matched := 0
			for i, o := range outcomes {
				switch {
				case o.err != nil:
					fmt.Fprintf(out, "#%d %s: %v\n", i, o.seq, o.err)
				default:
					fmt.Fprintf(out, "#%d %s: states=%d %s\n", i, o.seq, o.res.Stats.States, verdict(out, o.matched()))
				}
				if o.matched() {
					matched++
				}
			}
			fmt.Fprintf(out, "batch: %d/%d round trips matched\n", matched, count)
			if matched != count {
				return fmt.Errorf("batch: %d of %d failed: %w", count-matched, count, errMismatch)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "concurrent reconstructions")
	return cmd
}

func positive(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", arg, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%q: must be at least 1", arg)
	}
	return n, nil
}
