package repository

import "errors"

// ErrMalformedBody is returned when a successful upstream response does not decode as JSON.
var ErrMalformedBody = errors.New("malformed response body")
