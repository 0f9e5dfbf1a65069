package hashfunc

// HashAlgorithm - Interface that permits a user of the StringSet to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new set and every time the set grows, so the value returned
	// from HashFunc1 must always be computed against the table size given in the latest call.
	//   - tableSize is the number of buckets the set addresses
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key string) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// It is very important that this function return the actual table size and not just the table size given
	// in the latest call to SetTableSize. If an implementation rounds the table size (to a power of 2, a prime or
	// similar) the set will allocate that many buckets and use it as its capacity.
	GetTableSize() int64
}
