package hash

import (
	"hash/crc32"
)

// Crc32HashAlgorithm - An alternative bucket selection algorithm implemented using crc32.ChecksumIEEE to
// create a hash value over the key and then applying bucket = hash % tableSize to get the bucket number.
// Contrary to the polynomial hash it spreads keys sharing long common prefixes and suffixes well.
type Crc32HashAlgorithm struct {
	tableSize int64
}

// NewCrc32HashAlgorithm - Returns a pointer to a new Crc32HashAlgorithm instance
func NewCrc32HashAlgorithm(tableSize int64) *Crc32HashAlgorithm {
	ha := &Crc32HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the set will address
func (C *Crc32HashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (C *Crc32HashAlgorithm) HashFunc1(key string) int64 {
	h := int64(crc32.ChecksumIEEE([]byte(key)))
	return h % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *Crc32HashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
