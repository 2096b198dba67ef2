//go:build unit

package hash

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestModuloHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("creates key mod table size", func(t *testing.T) {
		// Prepare
		h := NewModuloHashAlgorithm[int]()

		// Execute and Check
		assert.Equal(t, int64(1), h.HashFunc(1, 0, 4), "1 mod 4")
		assert.Equal(t, int64(1), h.HashFunc(5, 0, 4), "5 mod 4")
		assert.Equal(t, int64(0), h.HashFunc(8, 0, 4), "8 mod 4")
	})

	t.Run("folds negative keys into range", func(t *testing.T) {
		// Prepare
		h := NewModuloHashAlgorithm[int64]()

		// Execute
		bucketNo := h.HashFunc(-1, 0, 4)

		// Check
		assert.Equal(t, int64(3), bucketNo, "-1 folded to 3")
	})
}

func TestCRC32HashAlgorithm_HashFunc(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		a := string([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

		h := NewCRC32HashAlgorithm()

		// Execute
		bucketNo := h.HashFunc(a, int64(len(a)), 16)

		// Check
		assert.Equal(t, int64(6), bucketNo, "create a valid bucket number")
	})

	t.Run("only key prefix is hashed", func(t *testing.T) {
		// Prepare
		h := NewCRC32HashAlgorithm()

		// Execute
		b1 := h.HashFunc("prefix-one", 6, 1000)
		b2 := h.HashFunc("prefix-two", 6, 1000)

		// Check
		assert.Equal(t, b1, b2, "same prefix gives same bucket")
	})
}

func TestStringHashAlgorithms(t *testing.T) {
	algorithms := map[string]interface {
		HashFunc(key string, keySize, tableSize int64) int64
	}{
		"crc32":  NewCRC32HashAlgorithm(),
		"xxhash": NewXXHashAlgorithm(),
		"sha256": NewSHA256HashAlgorithm(),
	}

	for name, h := range algorithms {
		t.Run(fmt.Sprintf("%s stays within table size", name), func(t *testing.T) {
			// Prepare
			sizes := []int64{1, 3, 16, 97, 1024}

			// Execute and Check
			for _, size := range sizes {
				for i := 0; i < 500; i++ {
					key := fmt.Sprintf("key-%d", i)
					bucketNo := h.HashFunc(key, int64(len(key)), size)
					assert.True(t, bucketNo >= 0 && bucketNo < size, "bucket in range")
				}
			}
		})

		t.Run(fmt.Sprintf("%s is deterministic", name), func(t *testing.T) {
			// Execute and Check
			assert.Equal(t, h.HashFunc("stable", 0, 1024), h.HashFunc("stable", 0, 1024), "same input same bucket")
			assert.Equal(t, h.HashFunc("stable", 0, 1024), h.HashFunc("stable-ish", 6, 1024), "prefix honoured")
		})
	}
}

func TestXXHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("spreads keys over buckets", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm()
		used := make(map[int64]bool)

		// Execute
		for i := 0; i < 1000; i++ {
			used[h.HashFunc(fmt.Sprintf("key-%d", i), 0, 64)] = true
		}

		// Check
		assert.Greater(t, len(used), 56, "most buckets in use")
	})
}

func TestPointerHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("same pointer gives same bucket", func(t *testing.T) {
		// Prepare
		h := NewPointerHashAlgorithm[string]()
		k := new(string)

		// Execute
		b1 := h.HashFunc(k, 0, 128)
		b2 := h.HashFunc(k, 8, 128)

		// Check
		assert.Equal(t, b1, b2, "stable bucket")
		assert.True(t, b1 >= 0 && b1 < 128, "bucket in range")
	})
}
