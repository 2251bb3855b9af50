package cmap

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// cacheLineSize is used to pad hot counters so that unrelated atomic
// traffic on one doesn't false-share the cache line backing another, e.g.
// liveCount and readerCount on the same table take independent CAS/add
// traffic from writers and readers respectively.
const cacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// paddedCounter is an atomic.Int64 padded out to a full cache line.
type paddedCounter struct {
	v atomic.Int64
	_ [(cacheLineSize - unsafe.Sizeof(atomic.Int64{})%cacheLineSize) % cacheLineSize]byte
}

func (c *paddedCounter) add(delta int64) int64 { return c.v.Add(delta) }
func (c *paddedCounter) load() int64           { return c.v.Load() }
