package idpool_test

import (
	"math/rand/v2"
	"testing"

	"ordering/internal/pkg/idpool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Next(t *testing.T) {
	t.Run("should serve seed values in order", func(t *testing.T) {
		seed := []uint64{892474, 643270, 286516}
		pool := idpool.New(func() uint64 { return 100000 + rand.Uint64N(900000) }, seed)

		for _, want := range seed {
			assert.Equal(t, want, pool.Next())
		}
		assert.Equal(t, len(seed), pool.Issued())
	})

	t.Run("should refill with exactly ten values on exhaustion", func(t *testing.T) {
		next := uint64(0)
		pool := idpool.New(func() uint64 { next++; return next }, []uint64{7})

		pool.Next()
		require.Equal(t, 1, pool.Capacity())

		pool.Next()
		assert.Equal(t, 11, pool.Capacity())
	})

	t.Run("should never issue duplicates across seed and generated values", func(t *testing.T) {
		seed := []uint64{892474, 643270, 286516, 412396, 456454, 651286}
		pool := idpool.New(func() uint64 { return 100000 + rand.Uint64N(900000) }, seed)

		const n = 100
		seen := make(map[uint64]bool, n)
		for i := 0; i < n; i++ {
			id := pool.Next()
			require.False(t, seen[id], "duplicate id %d issued at call %d", id, i)
			seen[id] = true
		}
	})

	t.Run("should skip generated values already present in the pool", func(t *testing.T) {
		// Generator cycles a tiny range so collisions with the seed are certain.
		next := uint64(0)
		pool := idpool.New(func() uint64 { next = next%15 + 1; return next }, []uint64{1, 2, 3})

		seen := make(map[uint64]bool)
		for i := 0; i < 13; i++ {
			id := pool.Next()
			require.False(t, seen[id])
			seen[id] = true
		}
	})

	t.Run("should work with an empty seed list", func(t *testing.T) {
		next := uint64(100)
		pool := idpool.New(func() uint64 { next++; return next }, nil)

		assert.Equal(t, uint64(101), pool.Next())
		assert.Equal(t, 10, pool.Capacity())
	})

	t.Run("should work with string identifiers", func(t *testing.T) {
		pool := idpool.New(func() string { return "SKU-000000" }, []string{"SKU-458362", "SKU-693856"})

		assert.Equal(t, "SKU-458362", pool.Next())
		assert.Equal(t, "SKU-693856", pool.Next())
	})
}
