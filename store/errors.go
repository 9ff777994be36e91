package store

import "errors"

// ErrRunNotFound indicates a lookup for an unknown run id.
var ErrRunNotFound = errors.New("store: run not found")
