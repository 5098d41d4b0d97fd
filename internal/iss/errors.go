package iss

import "errors"

// Error kinds surfaced by the client. Callers match them with errors.Is; every
// returned error wraps exactly one of these.
var (
	// ErrInvalidArgument means the caller passed bad input (empty ticker,
	// unknown asset class, inverted date range).
	ErrInvalidArgument = errors.New("iss: invalid argument")

	// ErrNetwork covers transport failures, timeouts and non-2xx statuses.
	ErrNetwork = errors.New("iss: network error")

	// ErrDataFormat means the response body is not valid JSON or does not have
	// the expected columns/data shape.
	ErrDataFormat = errors.New("iss: malformed response")

	// ErrMissingField means a required field was absent after a successful parse.
	ErrMissingField = errors.New("iss: missing field")

	// ErrNotFound means the service has no record of the requested entity.
	ErrNotFound = errors.New("iss: not found")
)
