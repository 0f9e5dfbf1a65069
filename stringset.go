package stringset

import (
	"fmt"
	"github.com/gostonefire/stringset/crt"
	"github.com/gostonefire/stringset/hashfunc"
	"github.com/gostonefire/stringset/internal/conf"
	"github.com/gostonefire/stringset/internal/hash"
	"github.com/gostonefire/stringset/internal/model"
	"io"
)

// SetStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of keys stored, duplicates included
//   - Capacity is the number of buckets in the table
//   - EmptyBuckets is the number of buckets with no keys at all
//   - LongestChain is the number of keys in the most crowded bucket
//   - LoadFactor is Records divided by Capacity
//   - InternalAlgorithm is true if the set uses the internal polynomial hash
//   - BucketDistribution is the number of keys stored in each bucket
type SetStat struct {
	Records            int64
	Capacity           int64
	EmptyBuckets       int64
	LongestChain       int64
	LoadFactor         float64
	InternalAlgorithm  bool
	BucketDistribution []int64
}

// StringSet - The main implementation struct, an in-memory hash set of strings using separate chaining.
// Inserting a key never checks for an existing equal key, duplicates are stored as separate entries.
// A StringSet is not safe for concurrent use, all inserts must be serialized by the caller.
type StringSet struct {
	buckets           []*model.Entry
	numberOfElements  int64
	capacity          int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// New - Returns a new and empty string set with conf.InitialCapacity buckets.
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil gives the internal polynomial hash.
//
// It returns:
//   - stringSet is a pointer to a StringSet struct
//   - err is a normal go Error which should be nil if everything went ok
func New(hashAlgorithm hashfunc.HashAlgorithm) (stringSet *StringSet, err error) {
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewPolynomialHashAlgorithm(conf.InitialCapacity)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(conf.InitialCapacity)
	}

	capacity := hashAlgorithm.GetTableSize()
	if capacity < 1 || capacity > conf.MaxCapacity {
		err = fmt.Errorf("hash algorithm table size must be within 1 and %d, got %d", conf.MaxCapacity, capacity)
		return
	}

	stringSet = &StringSet{
		buckets:           make([]*model.Entry, capacity),
		capacity:          capacity,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Len - Returns the number of keys stored, duplicates included
func (S *StringSet) Len() int64 {
	return S.numberOfElements
}

// Capacity - Returns the current number of buckets
func (S *StringSet) Capacity() int64 {
	return S.capacity
}

// Keys - Returns a new iterator over all stored keys. Buckets are visited in index order and each chain from
// head to tail, i.e. most recently placed key first. Every call gives a fresh iterator starting from the beginning.
func (S *StringSet) Keys() *KeyIterator {
	return newKeyIterator(S.buckets)
}

// Print - Writes all stored keys to w, one per line, in the same order as given by Keys
func (S *StringSet) Print(w io.Writer) (err error) {
	var key string
	iter := S.Keys()
	for iter.HasNext() {
		key, err = iter.Next()
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(w, key)
		if err != nil {
			return
		}
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a SetStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of keys per bucket, false will set SetStat.BucketDistribution to nil.
func (S *StringSet) Stat(includeDistribution bool) (setStat SetStat) {
	setStat.Records = S.numberOfElements
	setStat.Capacity = S.capacity
	setStat.LoadFactor = float64(S.numberOfElements) / float64(S.capacity)
	setStat.InternalAlgorithm = S.internalAlgorithm

	if includeDistribution {
		setStat.BucketDistribution = make([]int64, S.capacity)
	}

	for i, head := range S.buckets {
		length := model.ChainLength(head)
		if length == 0 {
			setStat.EmptyBuckets++
		}
		if length > setStat.LongestChain {
			setStat.LongestChain = length
		}
		if includeDistribution {
			setStat.BucketDistribution[i] = length
		}
	}

	return
}

// grow - Replaces the bucket array with one conf.GrowthFactor times bigger and places every existing entry in
// the bucket given by the new table size. Entries are visited in Keys order and prepended to their new chains,
// so keys sharing a chain also after the rehash come out in reversed relative order.
// Nothing in the set is changed unless the whole rehash succeeds.
func (S *StringSet) grow() (err error) {
	oldCapacity := S.capacity
	newCapacity := oldCapacity * conf.GrowthFactor
	if newCapacity > conf.MaxCapacity {
		err = crt.TableSizeExhausted{}
		return
	}

	S.hashAlgorithm.SetTableSize(newCapacity)
	newCapacity = S.hashAlgorithm.GetTableSize()
	if newCapacity <= oldCapacity || newCapacity > conf.MaxCapacity {
		S.hashAlgorithm.SetTableSize(oldCapacity)
		err = crt.TableSizeExhausted{}
		return
	}

	buckets := make([]*model.Entry, newCapacity)
	var bucketNo int64
	for _, head := range S.buckets {
		for e := head; e != nil; e = e.Next {
			bucketNo, err = S.bucketNo(e.Key, newCapacity)
			if err != nil {
				S.hashAlgorithm.SetTableSize(oldCapacity)
				return
			}
			buckets[bucketNo] = model.Prepend(buckets[bucketNo], e.Key)
		}
	}

	S.buckets = buckets
	S.capacity = newCapacity

	return
}
