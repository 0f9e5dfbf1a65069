package stringset

import (
	"github.com/gostonefire/stringset/crt"
	"github.com/gostonefire/stringset/internal/model"
)

// KeyIterator - Is used to iterate over stored keys one by one.
type KeyIterator struct {
	buckets  []*model.Entry
	bucketNo int
	next     *model.Entry
}

// newKeyIterator - Returns a pointer to a new KeyIterator struct positioned at the first key
func newKeyIterator(buckets []*model.Entry) *KeyIterator {
	iter := &KeyIterator{
		buckets:  buckets,
		bucketNo: -1,
	}
	iter.advance()

	return iter
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next.
func (K *KeyIterator) HasNext() bool {
	return K.next != nil
}

// Next - Returns key.
// It returns:
//   - key is the next stored key.
//   - err is of type crt.NoKeyFound if there are no more keys when calling this function.
func (K *KeyIterator) Next() (key string, err error) {
	if K.next == nil {
		err = crt.NoKeyFound{}
		return
	}

	key = K.next.Key
	K.next = K.next.Next
	K.advance()

	return
}

// advance - Moves to the head of the next non-empty bucket if the current chain is exhausted
func (K *KeyIterator) advance() {
	for K.next == nil && K.bucketNo < len(K.buckets)-1 {
		K.bucketNo++
		K.next = K.buckets[K.bucketNo]
	}
}
