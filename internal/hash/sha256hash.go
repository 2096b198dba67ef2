package hash

import (
	"encoding/binary"
	"github.com/gostonefire/hashtable/internal/utils"
	"github.com/minio/sha256-simd"
)

// SHA256HashAlgorithm - Hashes the first keySize bytes of a string key with SHA-256 and uses the first
// 8 bytes of the digest as hash value. Slower than the other algorithms but gives a very even spread
// also for adversarial keys.
type SHA256HashAlgorithm struct{}

// NewSHA256HashAlgorithm - Returns a pointer to a new SHA256HashAlgorithm instance
func NewSHA256HashAlgorithm() *SHA256HashAlgorithm {
	return &SHA256HashAlgorithm{}
}

// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
func (S *SHA256HashAlgorithm) HashFunc(key string, keySize, tableSize int64) int64 {
	sum := sha256.Sum256(utils.KeyPrefix([]byte(key), keySize))
	return utils.Reduce(binary.BigEndian.Uint64(sum[:8]), tableSize)
}
