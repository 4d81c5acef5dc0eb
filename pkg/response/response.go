package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "events-portal/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends error response with status code and message.
// An *errors.HTTPError in the chain decides the status; anything else is a 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		HTTPError(c, httpErr)
		return
	}

	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// HTTPError sends the status and message carried by err.
func HTTPError(c *gin.Context, err *pkgErrors.HTTPError) {
	c.JSON(err.StatusCode, Resp{
		ErrorCode: err.StatusCode,
		Message:   err.Message,
	})
}

// Redirect sends 303 See Other to location, with the location echoed in the body.
func Redirect(c *gin.Context, location string) {
	c.Header("Location", location)
	c.JSON(http.StatusSeeOther, NewOKResp(RedirectData{Redirect: location}))
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: 429,
		Message:   "Too Many Requests",
	})
}
