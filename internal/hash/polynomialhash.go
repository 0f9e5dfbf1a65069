package hash

import (
	"github.com/gostonefire/stringset/internal/conf"
)

// PolynomialHashAlgorithm - The internally used bucket selection algorithm. It is a polynomial rolling hash
// over the code points of the key where every step is reduced modulo the table size:
//
//	h = (h * multiplier + c) % tableSize
//
// The table size is used as is, so the bucket of a key changes whenever the table size changes.
type PolynomialHashAlgorithm struct {
	tableSize  uint64
	multiplier uint64
}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance using the default
// multiplier conf.HashMultiplier
func NewPolynomialHashAlgorithm(tableSize int64) *PolynomialHashAlgorithm {
	ha := &PolynomialHashAlgorithm{multiplier: uint64(conf.HashMultiplier)}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the set will address, values below 1 are treated as 1
func (P *PolynomialHashAlgorithm) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	P.tableSize = uint64(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1.
// Since h is always below the table size before multiplication, h * multiplier + c stays far below
// the uint64 limit for any table size up to conf.MaxCapacity.
func (P *PolynomialHashAlgorithm) HashFunc1(key string) int64 {
	var h uint64
	for _, c := range key {
		h = (h*P.multiplier + uint64(c)) % P.tableSize
	}

	return int64(h)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (P *PolynomialHashAlgorithm) GetTableSize() int64 {
	return int64(P.tableSize)
}
