package model

// SlotEmpty - State indicating an inline slot that holds no entry
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating an inline slot that holds an entry
const SlotOccupied uint8 = 1

// TableParameters - Represents parameters describing a hash table instance
type TableParameters struct {
	TableSize         int64
	Entries           int64
	DestroyEmptySlots bool
	Destroyed         bool
}
