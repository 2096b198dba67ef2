package hashtable

import (
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Insert - Stores data under key and returns the new entry.
// If the bucket the key hashes to has an empty inline slot the entry goes there, otherwise it is put at the head
// of the bucket's overflow chain. Existing entries with the same key are left in place, the new entry shadows
// them in Lookup until it is removed.
//   - key is the identifier of the entry, it is compared using == so pointer keys are compared by identity
//   - keySize is handed to the hash algorithm as is
//   - data is the data to store
//
// It returns:
//   - entry is a pointer to the stored Entry
//   - err is either of type HashOutOfRange, TableDestroyed or nil if everything went ok
func (H *HashTable[K, D]) Insert(key K, keySize int64, data D) (entry *Entry[K, D], err error) {
	bucketNo, err := H.GetBucketNo(key, keySize)
	if err != nil {
		return
	}

	entry = &Entry[K, D]{key: key, data: data, keySize: keySize, valid: true}

	b := &H.buckets[bucketNo]
	if b.state == model.SlotEmpty {
		b.inline = entry
		b.state = model.SlotOccupied
	} else {
		b.chain.PushFront(entry)
	}
	H.entries++

	return
}

// Lookup - Gets the entry that corresponds to the given key.
// The inline slot of the bucket is checked first, then the overflow chain from its head.
//   - key is the identifier of the entry
//   - keySize is handed to the hash algorithm as is
//
// It returns:
//   - entry is the matching entry if found, if not found an error of type NoEntryFound is also returned.
//   - err is either of type NoEntryFound, HashOutOfRange, TableDestroyed or nil if found
func (H *HashTable[K, D]) Lookup(key K, keySize int64) (entry *Entry[K, D], err error) {
	bucketNo, err := H.GetBucketNo(key, keySize)
	if err != nil {
		return
	}

	b := &H.buckets[bucketNo]
	if b.state == model.SlotOccupied && b.inline.key == key {
		entry = b.inline
		return
	}

	var ok bool
	if entry, ok = b.chain.Find(func(e *Entry[K, D]) bool { return e.key == key }); ok {
		return
	}

	entry = nil
	err = NoEntryFound{}

	return
}

// Remove - Removes the entry that corresponds to the given key and hands its key and data to the Destroyer.
// When the removed entry was the inline occupant of its bucket, the head of the overflow chain (if any) takes
// its place. Removing a key that is not in the table is not an error and nothing happens.
//   - key is the identifier of the entry
//   - keySize is handed to the hash algorithm as is
//
// It returns:
//   - err is either of type HashOutOfRange, TableDestroyed or nil
func (H *HashTable[K, D]) Remove(key K, keySize int64) (err error) {
	bucketNo, err := H.GetBucketNo(key, keySize)
	if err != nil {
		return
	}

	b := &H.buckets[bucketNo]

	// Inline occupant matches, destroy it and promote the chain head if there is one
	if b.state == model.SlotOccupied && b.inline.key == key {
		H.destroyEntry(b.inline)
		H.entries--

		if promoted, ok := b.chain.PopFront(); ok {
			b.inline = promoted
			H.logger.WithFields(logrus.Fields{
				"bucket":       bucketNo,
				"chain_length": b.chain.Len(),
			}).Debug("promoted overflow entry into inline slot")
		} else {
			b.inline = nil
			b.state = model.SlotEmpty
		}
		return
	}

	// Otherwise splice it out of the chain
	if removed, ok := b.chain.Remove(func(e *Entry[K, D]) bool { return e.key == key }); ok {
		H.destroyEntry(removed)
		H.entries--
	}

	return
}

// Destroy - Tears the table down, handing key and data of every entry to the Destroyer. For each bucket the
// overflow chain goes first, then the inline slot. Empty inline slots are skipped unless the table was created with
// DestroyEmptySlots, in which case the Destroyer is called with zero valued key and data for them.
// After Destroy all operations but Destroy itself return an error of type TableDestroyed, calling Destroy again does nothing.
func (H *HashTable[K, D]) Destroy() {
	if H.destroyed {
		return
	}

	var destroyed, emptySlots int64
	for i := range H.buckets {
		b := &H.buckets[i]

		b.chain.Clear(func(e *Entry[K, D]) {
			H.destroyEntry(e)
			destroyed++
		})

		if b.state == model.SlotOccupied {
			H.destroyEntry(b.inline)
			destroyed++
		} else if H.destroyEmptySlots {
			var key K
			var data D
			H.destroyer.Destroy(key, data)
			emptySlots++
		}

		b.inline = nil
		b.state = model.SlotEmpty
	}

	H.buckets = nil
	H.entries = 0
	H.destroyed = true

	H.logger.WithFields(logrus.Fields{
		"table_size":  H.tableSize,
		"destroyed":   destroyed,
		"empty_slots": emptySlots,
	}).Debug("hash table destroyed")
}

// Stat - Walks through the entire set of buckets and produce a HashTableStat struct with information.
//   - includeDistribution set to true will include a slice of length TableSize with number of entries per bucket, false will set HashTableStat.BucketDistribution to nil.
func (H *HashTable[K, D]) Stat(includeDistribution bool) (hashTableStat *HashTableStat, err error) {
	if H.destroyed {
		err = TableDestroyed{}
		return
	}

	var hts HashTableStat

	if includeDistribution {
		hts.BucketDistribution = make([]int64, H.tableSize)
	}

	// Iterate over every bucket
	for i := range H.buckets {
		b := &H.buckets[i]
		if b.state != model.SlotOccupied {
			continue
		}

		chained := b.chain.Len()
		hts.Entries += 1 + chained
		hts.InlineEntries++
		hts.ChainedEntries += chained
		hts.UsedBuckets++
		if chained > hts.LongestChain {
			hts.LongestChain = chained
		}
		if includeDistribution {
			hts.BucketDistribution[i] = 1 + chained
		}
	}

	hashTableStat = &hts
	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of an entry
//   - keySize is handed to the hash algorithm as is
//
// It returns:
//   - bucketNo is the bucket number
//   - err is either of type HashOutOfRange, TableDestroyed or nil
func (H *HashTable[K, D]) GetBucketNo(key K, keySize int64) (bucketNo int64, err error) {
	if H.destroyed {
		err = TableDestroyed{}
		return
	}

	bucketNo = H.hashAlgorithm.HashFunc(key, keySize, H.tableSize)
	if bucketNo < 0 || bucketNo >= H.tableSize {
		err = errors.Wrapf(HashOutOfRange{}, "hash algorithm returned bucket %d for table size %d", bucketNo, H.tableSize)
		return
	}

	return
}

// destroyEntry - Hands key and data of the entry to the Destroyer and invalidates the entry
func (H *HashTable[K, D]) destroyEntry(entry *Entry[K, D]) {
	H.destroyer.Destroy(entry.key, entry.data)
	entry.invalidate()
}
