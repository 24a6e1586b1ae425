package credentials

import "errors"

var (
	// ErrMissingParameter is returned when a required credential key is absent.
	ErrMissingParameter = errors.New("credentials: missing required parameter")

	// ErrUnknownRegion is returned for a region outside the supported table.
	ErrUnknownRegion = errors.New("credentials: unknown region")
)
