// SPDX-License-Identifier: MIT

package caterpillar

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*Options)

// Options holds the engine configuration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxStates bounds the number of expanded frontier pairs per call.
	// Zero means no limit.
	MaxStates int

	// Logger receives Debug-level traces of expansions and prunes.
	// Defaults to a no-op logger.
	Logger *zap.Logger

	// Mirror runs the search with the two ends swapped: the first end is
	// opened on the right and every state is keyed right end first.
	// Verdicts and sequences are unaffected.
	Mirror bool
}

// DefaultOptions returns options with a background context, no state limit,
// a no-op logger and no mirroring.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: 0,
		Logger:    zap.NewNop(),
		Mirror:    false,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates bounds the number of expanded frontier pairs.
// Panics on a negative limit; zero removes the limit.
func WithMaxStates(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("caterpillar: WithMaxStates(%d)", k))
	}
	return func(o *Options) {
		o.MaxStates = k
	}
}

// WithLogger installs a logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMirror swaps the roles of the two backbone ends during the search.
func WithMirror() Option {
	return func(o *Options) {
		o.Mirror = true
	}
}
