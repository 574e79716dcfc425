package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordwolf/internal/dependencies/mocks"
	"github.com/mcoot/wordwolf/internal/dependencies/random"
)

func TestShuffleWithZeroDraws(t *testing.T) {
	rng := mocks.NewMockRandom()
	items := []string{"p1", "p2", "p3", "p4", "p5"}

	random.Shuffle(rng, items)

	assert.Equal(t, []string{"p2", "p3", "p4", "p5", "p1"}, items)
}

func TestShuffleIdentity(t *testing.T) {
	rng := mocks.NewMockRandom()
	rng.QueueIntn(3, 2, 1)
	items := []int{1, 2, 3, 4}

	random.Shuffle(rng, items)

	assert.Equal(t, []int{1, 2, 3, 4}, items)
}

func TestShuffleEmptyAndSingle(t *testing.T) {
	rng := mocks.NewMockRandom()

	var empty []int
	random.Shuffle(rng, empty)
	assert.Empty(t, empty)

	single := []int{7}
	random.Shuffle(rng, single)
	assert.Equal(t, []int{7}, single)
}

func TestChoose(t *testing.T) {
	rng := mocks.NewMockRandom()
	rng.QueueIntn(2)

	assert.Equal(t, "c", random.Choose(rng, []string{"a", "b", "c"}))
}

func TestChoosePanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() {
		random.Choose(mocks.NewMockRandom(), []string{})
	})
}

func TestSeededIsReproducible(t *testing.T) {
	a := random.NewSeeded(42)
	b := random.NewSeeded(42)

	for range 20 {
		require.Equal(t, a.Intn(100), b.Intn(100))
		require.Equal(t, a.Bool(), b.Bool())
	}
}

func TestCryptoRandomBounds(t *testing.T) {
	rng := random.New()

	for range 50 {
		n := rng.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
	assert.Equal(t, 0, rng.Intn(0))
}

func TestShufflePreservesElements(t *testing.T) {
	rng := random.NewSeeded(7)
	items := []int{1, 2, 3, 4, 5, 6}

	random.Shuffle(rng, items)

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, items)
}
