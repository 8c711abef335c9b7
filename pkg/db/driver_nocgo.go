//go:build !cgo

package db

// DefaultDriver is the driver used when none is configured. Without cgo the
// mattn driver is only a stub, so the pure Go driver is used.
const DefaultDriver = DriverPure
