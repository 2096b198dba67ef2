package conf

// MinTableSize - Smallest number of buckets a hash table can be created with
const MinTableSize int64 = 1

// MaxTableSize - Largest number of buckets a hash table can be created with.
// Asking for more is refused rather than risking a runtime out of memory failure,
// which can not be recovered from.
const MaxTableSize int64 = 1 << 32

// PointerKeySize - Number of bytes hashed for a pointer key
const PointerKeySize int64 = 8
