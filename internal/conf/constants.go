package conf

// InitialCapacity - Number of buckets a new string set starts out with
const InitialCapacity int64 = 100

// GrowthFactor - Factor the number of buckets is multiplied with when the set is full
const GrowthFactor int64 = 2

// HashMultiplier - Multiplier used in the polynomial rolling hash
const HashMultiplier int64 = 7

// Alphabet - Letters tried in every position when suggesting alternatives to a misspelled word
const Alphabet string = "abcdefghijklmnopqrstuvwxyz"

// MaxCapacity - The largest table size that can be addressed, growth beyond it is refused
const MaxCapacity int64 = 1 << 40
