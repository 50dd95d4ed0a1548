package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng, "no RNG unless requested")
	require.Equal(t, DefaultBackboneFraction, cfg.backboneFraction)
}

func TestConfigLastOptionWins(t *testing.T) {
	cfg := newBuilderConfig(WithBackboneFraction(0.5), WithBackboneFraction(0.8))
	require.Equal(t, 0.8, cfg.backboneFraction)

	r := rand.New(rand.NewSource(1))
	cfg = newBuilderConfig(WithSeed(7), WithRand(r))
	require.Same(t, r, cfg.rng)
}

func TestWithSeedIsReproducible(t *testing.T) {
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	for i := 0; i < 10; i++ {
		require.Equal(t, a.rng.Int63(), b.rng.Int63())
	}
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithBackboneFraction(0) })
	require.Panics(t, func() { WithBackboneFraction(1.5) })
	require.NotPanics(t, func() { WithBackboneFraction(1) })
}
