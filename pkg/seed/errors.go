package seed

import "errors"

// Sentinel errors for common error conditions
var (
	// Options validation
	ErrInvalidOptions = errors.New("invalid dataset options")

	// Registry lookups
	ErrUnknownFamily = errors.New("unknown entity family")

	// Snapshot files
	ErrIncompatibleSnapshot = errors.New("incompatible snapshot version")
	ErrInvalidWeekID        = errors.New("invalid week id")
)
