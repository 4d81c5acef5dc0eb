package http

import (
	"github.com/gin-gonic/gin"
)

// processDetailReq binds the event id from the URI.
func (h *handler) processDetailReq(c *gin.Context) (detailReq, error) {
	var req detailReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processActionReq binds the event id and the optional _method override.
func (h *handler) processActionReq(c *gin.Context) (actionReq, error) {
	var req actionReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	if req.Method = c.PostForm("_method"); req.Method == "" {
		req.Method = c.Query("_method")
	}
	return req, req.validate(c.Request.Method)
}
