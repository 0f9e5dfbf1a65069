//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func TestPolynomialHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("computes the rolling hash modulo table size", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(100)

		// Execute and Check
		assert.Equal(t, int64(46), h.HashFunc1("cat"), "hash of cat")
		assert.Equal(t, int64(97), h.HashFunc1("bat"), "hash of bat")
		assert.Equal(t, int64(91), h.HashFunc1("hat"), "hash of hat")
		assert.Equal(t, int64(97), h.HashFunc1("a"), "hash of a")
		assert.Equal(t, int64(77), h.HashFunc1("ab"), "hash of ab")
	})

	t.Run("empty key is hashed into bucket zero", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(100)

		// Execute
		bucketNo := h.HashFunc1("")

		// Check
		assert.Equal(t, int64(0), bucketNo, "empty key in bucket zero")
	})

	t.Run("uses code points rather than bytes", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(100)

		// Execute
		bucketNo := h.HashFunc1("é")

		// Check
		assert.Equal(t, int64(33), bucketNo, "0xe9 modulo 100")
	})

	t.Run("is deterministic", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(100)

		// Execute
		first := h.HashFunc1("deterministic")
		second := h.HashFunc1("deterministic")

		// Check
		assert.Equal(t, first, second, "same key same bucket")
	})

	t.Run("always stays within table range", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(123))
		tableSizes := []int64{1, 2, 7, 100, 200, 1 << 20, 1 << 40}
		key := make([]rune, 64)

		// Execute and Check
		for _, tableSize := range tableSizes {
			h := NewPolynomialHashAlgorithm(tableSize)
			for i := 0; i < 200; i++ {
				for j := range key {
					key[j] = rune(rnd.Intn(0x10FFFF))
				}
				bucketNo := h.HashFunc1(string(key[:rnd.Intn(len(key))]))
				assert.GreaterOrEqualf(t, bucketNo, int64(0), "bucket not negative for table size %d", tableSize)
				assert.Lessf(t, bucketNo, tableSize, "bucket less than table size %d", tableSize)
			}
		}
	})
}

func TestPolynomialHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size and rehashes against it", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(100)
		assert.Equal(t, int64(97), h.HashFunc1("bat"), "bucket before resize")

		// Execute
		h.SetTableSize(200)

		// Check
		assert.Equal(t, int64(200), h.GetTableSize(), "correct tableSize value")
		assert.Equal(t, int64(197), h.HashFunc1("bat"), "bucket after resize")
	})

	t.Run("table size below one is raised to one", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(100)

		// Execute
		h.SetTableSize(0)

		// Check
		assert.Equal(t, int64(1), h.GetTableSize(), "table size raised")
		assert.Equal(t, int64(0), h.HashFunc1("anything"), "single bucket")
	})
}
