package cmap

import "reflect"

// valuesEqual reports whether two values of the same type are equal. The
// container only requires V to be trivially-copyable, not comparable, so a
// plain == is not always available; reflect.DeepEqual is used instead.
// This mirrors the role of llxisdsh/pb's pluggable valEqual (which falls
// back to a reflection-derived comparison, mapType.Elem.Equal, when no
// custom comparator is supplied) without requiring an unsafe runtime-type
// lookup: reflect.DeepEqual is the stdlib's own general-purpose answer to
// the same problem and never panics on an incomparable V.
//
// This check is purely an optimization: skipping it would still CAS in an
// equivalent record and leave the map in the same observable state, just
// with one extra allocation and CAS per redundant insert.
func valuesEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}
