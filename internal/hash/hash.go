package hash

import (
	"github.com/gostonefire/hashtable/internal/utils"
	"hash/crc32"
)

// Integer - Constraint for keys that can be hashed by plain modulo
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ModuloHashAlgorithm - Puts an integer key in bucket key mod table size.
// Negative keys are folded into range so that the result is always between 0 and table size - 1.
type ModuloHashAlgorithm[K Integer] struct{}

// NewModuloHashAlgorithm - Returns a pointer to a new ModuloHashAlgorithm instance
func NewModuloHashAlgorithm[K Integer]() *ModuloHashAlgorithm[K] {
	return &ModuloHashAlgorithm[K]{}
}

// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1.
// keySize is not used since the whole integer is the key.
func (M *ModuloHashAlgorithm[K]) HashFunc(key K, keySize, tableSize int64) int64 {
	r := int64(key) % tableSize
	if r < 0 {
		r += tableSize
	}
	return r
}

// CRC32HashAlgorithm - Uses crc32.ChecksumIEEE to create a hash value over the first keySize bytes of the key
// and then masks (power of 2 table sizes) or takes modulo (other table sizes) to get the bucket number.
type CRC32HashAlgorithm struct{}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm() *CRC32HashAlgorithm {
	return &CRC32HashAlgorithm{}
}

// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
func (C *CRC32HashAlgorithm) HashFunc(key string, keySize, tableSize int64) int64 {
	h := crc32.ChecksumIEEE(utils.KeyPrefix([]byte(key), keySize))
	return utils.Reduce(uint64(h), tableSize)
}
