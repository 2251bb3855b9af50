package cmap

import "errors"

// ErrNotFound is returned by At when no live binding exists for the
// requested key. It is the only recoverable error kind on the hot path;
// every other abnormal condition is a programming-error assertion (panic),
// not a user-visible error.
var ErrNotFound = errors.New("cmap: key not found")
