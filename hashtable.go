package hashtable

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/overflow"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"io"
)

// Entry - A key/data pair stored in the hash table. Entries are immutable, replacing data for a key is done
// by Remove followed by Insert.
//
// A pointer to an Entry is handed out by Insert and Lookup and stays usable for as long as the entry is in the
// table, also if it is moved from the overflow chain into the inline slot of its bucket. Once the entry is
// removed, or the table is destroyed, Valid returns false and Key and Data return zero values.
type Entry[K comparable, D any] struct {
	key     K
	data    D
	keySize int64
	valid   bool
}

// Key - Returns the key of the entry
func (E *Entry[K, D]) Key() K {
	return E.key
}

// Data - Returns the data of the entry
func (E *Entry[K, D]) Data() D {
	return E.data
}

// KeySize - Returns the key size given when the entry was inserted
func (E *Entry[K, D]) KeySize() int64 {
	return E.keySize
}

// Valid - Returns true as long as the entry is held by the table
func (E *Entry[K, D]) Valid() bool {
	return E.valid
}

// invalidate - Detaches the entry from its key and data
func (E *Entry[K, D]) invalidate() {
	var key K
	var data D
	E.key = key
	E.data = data
	E.valid = false
}

// bucket - One hash index worth of entries. The inline slot is always filled before anything goes to the chain,
// and the chain is only non-empty while the inline slot is occupied.
type bucket[K comparable, D any] struct {
	state  uint8
	inline *Entry[K, D]
	chain  overflow.Chain[*Entry[K, D]]
}

// TableConf - Is a struct to be passed in the call to NewHashTableFromConf and contains configuration for the table.
//   - TableSize is the number of buckets, it is fixed for the lifetime of the table
//   - HashAlgorithm maps a key to a bucket number, it is mandatory
//   - Destroyer is called with key and data of every entry leaving the table, nil means nothing is called
//   - DestroyEmptySlots set to true makes Destroy call the Destroyer with zero valued key and data also for empty buckets
//   - Logger receives debug information, nil discards it
type TableConf[K comparable, D any] struct {
	TableSize         int64
	HashAlgorithm     hashfunc.HashAlgorithm[K]
	Destroyer         hashfunc.Destroyer[K, D]
	DestroyEmptySlots bool
	Logger            logrus.FieldLogger
}

// HashTableInfo - Information structure containing some information about the hash table
//   - TableSize is the number of buckets
//   - Entries is the number of entries currently stored
//   - DestroyEmptySlots tells whether Destroy calls the Destroyer for empty buckets
//   - Destroyed tells whether Destroy has been called
type HashTableInfo struct {
	TableSize         int64
	Entries           int64
	DestroyEmptySlots bool
	Destroyed         bool
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of entries stored
//   - InlineEntries is the number of entries stored in bucket inline slots
//   - ChainedEntries is the number of entries stored in overflow chains
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the length of the longest overflow chain
//   - BucketDistribution is the number of entries stored in each bucket
type HashTableStat struct {
	Entries            int64
	InlineEntries      int64
	ChainedEntries     int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// HashTable - The main implementation struct. A HashTable is not safe for concurrent use, callers sharing one
// between goroutines must provide their own locking.
type HashTable[K comparable, D any] struct {
	hashAlgorithm     hashfunc.HashAlgorithm[K]
	destroyer         hashfunc.Destroyer[K, D]
	tableSize         int64
	buckets           []bucket[K, D]
	entries           int64
	destroyEmptySlots bool
	destroyed         bool
	logger            logrus.FieldLogger
}

// NewHashTable - Returns a new hash table with tableSize empty buckets.
//   - hashAlgorithm maps a key to a bucket number between 0 and tableSize - 1
//   - destroyer is called with key and data of every entry leaving the table, it may be nil
//   - tableSize is the number of buckets, between 1 and 2^32 (inclusive)
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type InvalidTableSize, AllocationFailed or a standard error, nil if everything went ok
func NewHashTable[K comparable, D any](
	hashAlgorithm hashfunc.HashAlgorithm[K],
	destroyer hashfunc.Destroyer[K, D],
	tableSize int64,
) (
	hashTable *HashTable[K, D],
	err error,
) {
	return NewHashTableFromConf(TableConf[K, D]{
		TableSize:     tableSize,
		HashAlgorithm: hashAlgorithm,
		Destroyer:     destroyer,
	})
}

// NewHashTableFromConf - Returns a new hash table configured by tableConf.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type InvalidTableSize, AllocationFailed or a standard error, nil if everything went ok
func NewHashTableFromConf[K comparable, D any](tableConf TableConf[K, D]) (hashTable *HashTable[K, D], err error) {
	// Check if table size is valid
	if tableConf.TableSize < conf.MinTableSize || tableConf.TableSize > conf.MaxTableSize {
		err = errors.Wrapf(InvalidTableSize{}, "table size must be between %d and %d, got %d",
			conf.MinTableSize, conf.MaxTableSize, tableConf.TableSize)
		return
	}

	// Check if there is a hash algorithm
	if tableConf.HashAlgorithm == nil {
		err = errors.New("hash algorithm can not be nil")
		return
	}

	destroyer := tableConf.Destroyer
	if destroyer == nil {
		destroyer = hashfunc.NoDestroy[K, D]()
	}

	logger := tableConf.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	buckets, err := allocateBuckets[K, D](tableConf.TableSize)
	if err != nil {
		return
	}

	hashTable = &HashTable[K, D]{
		hashAlgorithm:     tableConf.HashAlgorithm,
		destroyer:         destroyer,
		tableSize:         tableConf.TableSize,
		buckets:           buckets,
		destroyEmptySlots: tableConf.DestroyEmptySlots,
		logger:            logger,
	}

	logger.WithFields(logrus.Fields{
		"table_size":          tableConf.TableSize,
		"destroy_empty_slots": tableConf.DestroyEmptySlots,
	}).Debug("hash table created")

	return
}

// allocateBuckets - Allocates the bucket array, turning a failing allocation into an error of type AllocationFailed
func allocateBuckets[K comparable, D any](tableSize int64) (buckets []bucket[K, D], err error) {
	defer func() {
		if r := recover(); r != nil {
			buckets = nil
			err = errors.Wrapf(AllocationFailed{}, "could not allocate %d buckets: %v", tableSize, r)
		}
	}()

	buckets = make([]bucket[K, D], tableSize)

	return
}

// TableSize - Returns the number of buckets
func (H *HashTable[K, D]) TableSize() int64 {
	return H.tableSize
}

// Len - Returns the number of entries currently stored, shadowed duplicates included
func (H *HashTable[K, D]) Len() int64 {
	return H.entries
}

// Info - Returns a HashTableInfo struct describing the table
func (H *HashTable[K, D]) Info() (hashTableInfo HashTableInfo) {
	tp := H.getTableParameters()

	hashTableInfo = HashTableInfo{
		TableSize:         tp.TableSize,
		Entries:           tp.Entries,
		DestroyEmptySlots: tp.DestroyEmptySlots,
		Destroyed:         tp.Destroyed,
	}

	return
}

// getTableParameters - Returns a struct with the table parameters
func (H *HashTable[K, D]) getTableParameters() (params model.TableParameters) {
	params = model.TableParameters{
		TableSize:         H.tableSize,
		Entries:           H.entries,
		DestroyEmptySlots: H.destroyEmptySlots,
		Destroyed:         H.destroyed,
	}

	return
}
