package hashfunc

import "github.com/gostonefire/hashtable/internal/hash"

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm[K any] interface {
	// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1.
	// Any number returned outside that range will result in an error from the calling HashTable operation.
	//   - key is the key to hash
	//   - keySize is the number of key bytes the algorithm should consider, its meaning is up to the implementation
	//   - tableSize is the number of buckets in the hash table
	HashFunc(key K, keySize, tableSize int64) int64
}

// HashFunc - Adapter to allow the use of an ordinary function as a HashAlgorithm
type HashFunc[K any] func(key K, keySize, tableSize int64) int64

// HashFunc - Calls f(key, keySize, tableSize)
func (f HashFunc[K]) HashFunc(key K, keySize, tableSize int64) int64 {
	return f(key, keySize, tableSize)
}

// Destroyer - Interface through which the HashTable hands back key and data of an entry that leaves the
// table, either by a remove or when the whole table is destroyed. It is the place to reclaim (or
// decline to reclaim) whatever the key and data refer to.
type Destroyer[K, D any] interface {
	Destroy(key K, data D)
}

// DestroyFunc - Adapter to allow the use of an ordinary function as a Destroyer
type DestroyFunc[K, D any] func(key K, data D)

// Destroy - Calls f(key, data)
func (f DestroyFunc[K, D]) Destroy(key K, data D) {
	f(key, data)
}

// NoDestroy - Returns a Destroyer that does nothing
func NoDestroy[K, D any]() Destroyer[K, D] {
	return DestroyFunc[K, D](func(K, D) {})
}

// Integer - Constraint for keys usable with NewModuloHash
type Integer = hash.Integer

// NewModuloHash - Returns a HashAlgorithm putting integer keys in bucket key mod table size
func NewModuloHash[K Integer]() HashAlgorithm[K] {
	return hash.NewModuloHashAlgorithm[K]()
}

// NewCRC32Hash - Returns a HashAlgorithm for string keys using CRC-32 (IEEE) over the first keySize bytes
func NewCRC32Hash() HashAlgorithm[string] {
	return hash.NewCRC32HashAlgorithm()
}

// NewXXHash - Returns a HashAlgorithm for string keys using 64 bit xxhash over the first keySize bytes
func NewXXHash() HashAlgorithm[string] {
	return hash.NewXXHashAlgorithm()
}

// NewSHA256Hash - Returns a HashAlgorithm for string keys using SHA-256 over the first keySize bytes
func NewSHA256Hash() HashAlgorithm[string] {
	return hash.NewSHA256HashAlgorithm()
}

// NewPointerHash - Returns a HashAlgorithm for pointer keys hashing the address itself.
// This is the natural companion of identity compared keys.
func NewPointerHash[T any]() HashAlgorithm[*T] {
	return hash.NewPointerHashAlgorithm[T]()
}
