package hashtable

// NoEntryFound - Custom error to inform that no entry was found
type NoEntryFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NoEntryFound) Error() string {
	if E.msg == "" {
		return "no entry found"
	}
	return E.msg
}

// HashOutOfRange - Custom error to inform that the hash algorithm returned a bucket number outside the table
type HashOutOfRange struct {
	msg string
}

// Error - Used to notify that a hash value was out of range
func (E HashOutOfRange) Error() string {
	if E.msg == "" {
		return "hash value out of range"
	}
	return E.msg
}

// TableDestroyed - Custom error to inform that the hash table has been destroyed and can't be used anymore
type TableDestroyed struct {
	msg string
}

// Error - Used to notify use of a destroyed table
func (E TableDestroyed) Error() string {
	if E.msg == "" {
		return "hash table destroyed"
	}
	return E.msg
}

// InvalidTableSize - Custom error to inform that a requested table size is not permitted
type InvalidTableSize struct {
	msg string
}

// Error - Used to notify an invalid table size
func (E InvalidTableSize) Error() string {
	if E.msg == "" {
		return "invalid table size"
	}
	return E.msg
}

// AllocationFailed - Custom error to inform that memory for the bucket array could not be allocated
type AllocationFailed struct {
	msg string
}

// Error - Used to notify an allocation failure
func (E AllocationFailed) Error() string {
	if E.msg == "" {
		return "allocation failed"
	}
	return E.msg
}
