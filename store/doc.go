// Package store persists local tester runs in SQLite.
//
// A run is one sweep of a solver over a seed range; each seed produces one
// case row. The pure-Go modernc.org/sqlite driver is used so the binaries
// stay cgo-free.
package store
