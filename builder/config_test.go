// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	require.Equal(t, "7", newBuilderConfig().label(7))
	require.Equal(t, "AB", newBuilderConfig(WithIDScheme(ExcelColumnIDFn)).label(27))

	// Later options win.
	cfg := newBuilderConfig(WithIDScheme(HexIDFn), WithIDScheme(DefaultIDFn))
	require.Equal(t, "10", cfg.label(10))

	require.Panics(t, func() { WithIDScheme(nil) })
}

func TestPrefixOption(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPrefix("n"), WithIDScheme(HexIDFn))
	require.Equal(t, []string{"n0", "n1", "na"}, []string{cfg.label(0), cfg.label(1), cfg.label(10)})
	require.Equal(t, []string{"n0", "n1", "n2"}, cfg.labels(3))
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	require.Nil(t, newBuilderConfig().rng)

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	require.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	require.Panics(t, func() { WithRand(nil) })
}
