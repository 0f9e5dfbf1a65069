package model

// Entry - Represents one stored key in a bucket. Entries are never changed once linked into a chain, a
// rehash creates new entries in the new bucket array instead.
type Entry struct {
	Key  string
	Next *Entry
}

// Prepend - Returns a new chain head holding key and linking to head
func Prepend(head *Entry, key string) *Entry {
	return &Entry{Key: key, Next: head}
}

// ChainLength - Returns the number of entries in the chain starting at head
func ChainLength(head *Entry) (length int64) {
	for e := head; e != nil; e = e.Next {
		length++
	}

	return
}
