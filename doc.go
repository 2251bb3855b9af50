// Package cmap implements a concurrent unordered map: an in-memory
// key→value associative container safe for concurrent use by multiple
// goroutines without external locking.
//
// The map grows by online, cooperative resizing. Readers and writers never
// block on a resize: instead they incrementally migrate entries from an old
// table into a larger successor while normal traffic continues. The
// underlying table uses open addressing with linear probing; each slot holds
// two independently-atomic cells (key, value), and every operation commits
// with a single compare-and-swap on one of those cells.
//
// A Map must not be copied after first use.
package cmap
