package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// RedirectData is the body sent along with a redirect, for clients that do not follow it.
type RedirectData struct {
	Redirect string `json:"redirect"`
}
