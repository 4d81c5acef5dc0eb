package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
}

// NewHTTPError returns a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// String includes the status code, for logs.
func (e *HTTPError) String() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// ErrInternalServerError is returned for errors that have no explicit mapping.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))

// AsHTTPError unwraps err into an *HTTPError when one is in the chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
