//go:build cgo

package db

// DefaultDriver is the driver used when none is configured.
const DefaultDriver = DriverCgo
