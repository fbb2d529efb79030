package service

import "errors"

// Terminal error conditions of the analytics engine. Handlers map these onto
// HTTP status codes; everything else is recovered locally with defaults.
var (
	// ErrUnauthenticated indicates the caller presented no usable identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates a valid identity without analytics access.
	ErrForbidden = errors.New("forbidden")
	// ErrDataUnavailable indicates the backing store could not serve the request.
	ErrDataUnavailable = errors.New("training data unavailable")
)
