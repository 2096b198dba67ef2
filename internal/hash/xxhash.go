package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/utils"
)

// XXHashAlgorithm - Hashes the first keySize bytes of a string key with xxhash (64 bit)
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc(key string, keySize, tableSize int64) int64 {
	var h uint64
	if keySize <= 0 || keySize >= int64(len(key)) {
		h = xxhash.Sum64String(key)
	} else {
		h = xxhash.Sum64String(key[:keySize])
	}

	return utils.Reduce(h, tableSize)
}

// PointerHashAlgorithm - Hashes the address a pointer key refers to, which makes two pointers land in the
// same bucket only if they are the same reference (or happen to collide).
type PointerHashAlgorithm[T any] struct{}

// NewPointerHashAlgorithm - Returns a pointer to a new PointerHashAlgorithm instance
func NewPointerHashAlgorithm[T any]() *PointerHashAlgorithm[T] {
	return &PointerHashAlgorithm[T]{}
}

// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1.
// keySize is ignored, an address is always conf.PointerKeySize bytes.
func (P *PointerHashAlgorithm[T]) HashFunc(key *T, keySize, tableSize int64) int64 {
	h := xxhash.Sum64(utils.KeyPrefix(utils.PointerBytes(key), conf.PointerKeySize))
	return utils.Reduce(h, tableSize)
}
