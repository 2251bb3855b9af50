package cmap

import "hash/maphash"

// hashFunc computes a 64-bit hash of a key under the given seed. The default
// implementation below is a thin wrapper around hash/maphash.Comparable, the
// standard library's seeded, collision-resistant hash for any comparable
// type, the safe, exported replacement for the runtime.typehash-via-
// go:linkname trick older code used before Go 1.24 added it.
type hashFunc[K comparable] func(seed maphash.Seed, key K) uint64

// defaultHasher returns the default key hasher for K.
func defaultHasher[K comparable]() hashFunc[K] {
	return maphash.Comparable[K]
}

// newSeed produces a fresh random seed, one per Map instance, so that
// worst-case collision patterns can't be crafted against every process
// alike.
func newSeed() maphash.Seed {
	return maphash.MakeSeed()
}
