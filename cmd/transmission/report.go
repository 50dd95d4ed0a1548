// SPDX-License-Identifier: MIT
// Package: transmission/cmd/transmission
//
// report.go - shared analysis, reconstruction and printing.
//
// Every reconstruction ends with the round-trip check: the witness's
// statuses are recomputed and compared with the input sequence.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/katalvlaran/transmission/builder"
	"github.com/katalvlaran/transmission/caterpillar"
	"github.com/katalvlaran/transmission/internal/config"
	"github.com/katalvlaran/transmission/render"
	"github.com/katalvlaran/transmission/sequence"
	"github.com/katalvlaran/transmission/status"
	"github.com/katalvlaran/transmission/tree"
	"github.com/katalvlaran/transmission/treeio"
)

// errMismatch is returned when a witness fails the round-trip check.
var errMismatch = errors.New("reconstructed tree has a different status sequence")

// builderOptions returns the generator settings, offsetting the seed by k.
func (a *app) builderOptions(k int) []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(a.cfg.Generator.Seed + int64(k)),
		builder.WithBackboneFraction(a.cfg.Generator.BackboneFraction),
	}
}

// solve runs one reconstruction under the configured budget and time limit.
func (a *app) solve(ctx context.Context, seq sequence.Sequence) (*caterpillar.Result, error) {
	if a.cfg.Engine.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Engine.Timeout)
		defer cancel()
	}
	return caterpillar.Reconstruct(seq,
		caterpillar.WithContext(ctx),
		caterpillar.WithMaxStates(a.cfg.Engine.MaxStates),
		caterpillar.WithLogger(a.log),
	)
}

// analyse reports on t: its drawing rooted at the median, its sequence and,
// for caterpillars, the reconstruction from that sequence.
func (a *app) analyse(ctx context.Context, out io.Writer, t *tree.Tree) error {
	seq, err := status.Sequence(t)
	if err != nil {
		return err
	}
	if err = status.Canonicalize(t); err != nil {
		return err
	}
	a.log.Info("tree rerooted at median", zap.Int("vertices", t.Size()), zap.Int("root", t.Root()))

	a.printTree(out, t)
	fmt.Fprintf(out, "status sequence: %s\n", seq)
	if err = a.storeSequence(seq); err != nil {
		return err
	}
	if !tree.IsCaterpillar(t) {
		fmt.Fprintln(out, "this is not a caterpillar...")
		return nil
	}
	return a.reconstruct(ctx, out, seq)
}

// reconstruct runs the engine on seq and prints the witness together with
// the round-trip verdict. A sequence without a caterpillar is reported, not
// returned as an error.
func (a *app) reconstruct(ctx context.Context, out io.Writer, seq sequence.Sequence) error {
	res, err := a.solve(ctx, seq)
	if errors.Is(err, caterpillar.ErrNoCaterpillar) {
		fmt.Fprintf(out, "could not reconstruct the graph: %v\n", err)
		return nil
	}
	if err != nil {
		fmt.Fprintln(out, "could not reconstruct the graph")
		return err
	}
	a.log.Info("reconstructed",
		zap.Int("states", res.Stats.States),
		zap.Int("memo_hits", res.Stats.MemoHits),
		zap.Int("pruned", res.Stats.Pruned),
		zap.Int("signatures", res.Signatures))

	fmt.Fprintln(out, "reconstructed:")
	a.printTree(out, res.Tree)
	fmt.Fprintf(out, "largest list: %d\n", res.Stats.LargestSet)

	ok := sequence.Equal(seq, res.Sequence)
	fmt.Fprintf(out, "recheck stati %s: %s\n", res.Sequence, verdict(out, ok))
	if a.writeTree != "" {
		if err = treeio.WriteFile(a.writeTree, res.Tree); err != nil {
			return err
		}
	}
	if !ok {
		return errMismatch
	}
	return nil
}

// printTree draws t in the configured style followed by its size.
func (a *app) printTree(out io.Writer, t *tree.Tree) {
	switch a.cfg.Output.Render {
	case config.RenderVertical:
		fmt.Fprint(out, render.Vertical(t))
	case config.RenderIndent:
		fmt.Fprintln(out, render.Indent(t))
	case config.RenderOutline:
		fmt.Fprintln(out, render.Outline(t, nil))
	}
	fmt.Fprintf(out, "(size = %d)\n", t.Size())
}

func (a *app) storeSequence(seq sequence.Sequence) error {
	if a.writeSeq == "" {
		return nil
	}
	f, err := os.Create(a.writeSeq)
	if err != nil {
		return err
	}
	if err = sequence.Write(f, seq); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var (
	matchStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	mismatchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// verdict styles the round-trip outcome for the terminal behind out; plain
// writers get plain text.
func verdict(out io.Writer, ok bool) string {
	r := lipgloss.NewRenderer(out)
	if ok {
		return matchStyle.Renderer(r).Render("match")
	}
	return mismatchStyle.Renderer(r).Render("NO MATCH")
}
