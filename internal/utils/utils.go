package utils

import (
	"encoding/binary"
	"unsafe"
)

// KeyPrefix - Returns the first keySize bytes of b.
// A keySize less than 1 or bigger than len(b) returns b as is.
func KeyPrefix(b []byte, keySize int64) []byte {
	if keySize <= 0 || keySize >= int64(len(b)) {
		return b
	}

	return b[:keySize]
}

// IsPowerOf2 - Returns true if n is a power of 2
func IsPowerOf2(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// Reduce - Maps a hash value onto the range 0 -> tableSize - 1.
// Masking is used when the table size is a power of 2, otherwise modulo.
func Reduce(h uint64, tableSize int64) int64 {
	if tableSize <= 0 {
		return 0
	}
	if IsPowerOf2(tableSize) {
		return int64(h & uint64(tableSize-1))
	}

	return int64(h % uint64(tableSize))
}

// PointerBytes - Returns the address held by p as 8 little endian bytes
func PointerBytes[T any](p *T) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(uintptr(unsafe.Pointer(p))))

	return buf
}
