package crt

// TableSizeExhausted - Custom error to inform that the table can't grow any further
type TableSizeExhausted struct {
	msg string
}

// Error - Used to notify that the table can't grow any further
func (E TableSizeExhausted) Error() string {
	if E.msg == "" {
		return "table size exhausted"
	}
	return E.msg
}

// BucketOutOfRange - Custom error to inform that a hash algorithm returned a bucket outside the table
type BucketOutOfRange struct {
	msg string
}

// Error - Used to notify that a bucket number is outside permitted range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket number outside permitted range"
	}
	return B.msg
}

// DictionaryUnavailable - Custom error to inform that the dictionary source could not be opened or read
type DictionaryUnavailable struct {
	Path string
	Err  error
}

// Error - Used to notify that the dictionary could not be opened or read
func (D DictionaryUnavailable) Error() string {
	if D.Path == "" {
		return "dictionary unavailable"
	}
	return "cannot open file " + D.Path
}

// Unwrap - Returns the underlying error, if any
func (D DictionaryUnavailable) Unwrap() error {
	return D.Err
}

// NoKeyFound - Custom error to inform that no (more) keys were found
type NoKeyFound struct {
	msg string
}

// Error - Used to notify that no key was found
func (N NoKeyFound) Error() string {
	if N.msg == "" {
		return "no key found"
	}
	return N.msg
}
