package cmap

import "sync/atomic"

// slot is a pair of independently-atomic cells at one index of a table: a
// key cell and a value cell. Both cells reference immutable records; every
// transition is a compare-and-swap, so a slot never needs a lock.
//
// Keys are write-once into ALIVE (or, during migration of a never-written
// slot, write-once into COPIED_DEAD); once a key cell is ALIVE its payload
// never changes for the lifetime of the slot. Only the value cell mutates
// after that.
type slot[K comparable, V any] struct {
	key   atomic.Pointer[record[K]]
	value atomic.Pointer[record[V]]
}

// init seeds both cells of a freshly-allocated slot with a tagEmpty record,
// so a cell never holds nil and every read can call straight into the
// record's methods.
func (s *slot[K, V]) init() {
	var zeroK K
	var zeroV V
	s.key.Store(newRecord(zeroK, tagEmpty))
	s.value.Store(newRecord(zeroV, tagEmpty))
}

// readKey performs a wait-free load of the current key cell.
func (s *slot[K, V]) readKey() *record[K] {
	return s.key.Load()
}

// readValue performs a wait-free load of the current value cell.
func (s *slot[K, V]) readValue() *record[V] {
	return s.value.Load()
}

// casKey atomically installs desired into the key cell if it still holds
// expected. A successful CAS is a sequentially consistent commit point
// observable by any later load on this cell; a failed CAS leaves the slot
// untouched and the caller retains ownership of desired.
func (s *slot[K, V]) casKey(expected, desired *record[K]) bool {
	return s.key.CompareAndSwap(expected, desired)
}

// casValue is the value-cell counterpart of casKey.
func (s *slot[K, V]) casValue(expected, desired *record[V]) bool {
	return s.value.CompareAndSwap(expected, desired)
}
