package stringset

import (
	"github.com/gostonefire/stringset/crt"
	"github.com/gostonefire/stringset/internal/model"
)

// Insert - Adds key to the set without checking whether it is already present. If the insert would fill
// the table, the table is first grown and rehashed, and key is then placed at the head of its bucket
// in the grown table.
//   - key is the string to store, the empty string is a valid key
//
// It returns:
//   - err is of type crt.TableSizeExhausted if the table could not grow, or crt.BucketOutOfRange if a custom hash algorithm misbehaves. The set is unchanged on error.
func (S *StringSet) Insert(key string) (err error) {
	if S.numberOfElements+1 >= S.capacity {
		err = S.grow()
		if err != nil {
			return
		}
	}

	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	S.buckets[bucketNo] = model.Prepend(S.buckets[bucketNo], key)
	S.numberOfElements++

	return
}

// Find - Returns true if key is stored in the set. Keys are compared in full, two keys sharing bucket are
// never confused.
func (S *StringSet) Find(key string) bool {
	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return false
	}

	for e := S.buckets[bucketNo]; e != nil; e = e.Next {
		if e.Key == key {
			return true
		}
	}

	return false
}

// GetBucketNo - Returns which bucket number that the given key results in given the current capacity
//   - key is the string to locate
func (S *StringSet) GetBucketNo(key string) (bucketNo int64, err error) {
	return S.bucketNo(key, S.capacity)
}

// bucketNo - Hashes key with the hash algorithm and checks the result against capacity
func (S *StringSet) bucketNo(key string, capacity int64) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= capacity {
		err = crt.BucketOutOfRange{}
		return
	}

	return
}
