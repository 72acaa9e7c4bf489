package types

import "errors"

var (
	// ErrMissingRegistry indicates a command or query was built without a registry.
	ErrMissingRegistry = errors.New("go-activities: activity registry required")
)
