package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"events-portal/internal/middleware"
	"events-portal/internal/model"
	"events-portal/pkg/deferred"
	"events-portal/pkg/response"
)

// Detail godoc
// @Summary     Get event detail view data
// @Description Fetches the selected event and the full events list concurrently and returns both once both have loaded.
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Could not fetch details for selected event. / Could not fetch events."
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Stream godoc
// @Summary     Stream event detail view data
// @Description Server-sent events: one "event" frame and one "events" frame as each piece loads, an "error" frame for a piece that fails, then "done".
// @Tags        Events
// @Produce     text/event-stream
// @Param       id path string true "Event ID"
// @Success     200 {string} string "event stream"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/{id}/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Load(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Load: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	frames := make(chan streamFrame, 2)
	output.Event.Subscribe(func(state deferred.State, ev model.EventDetail, err error) {
		frames <- h.newStreamFrame(frameEvent, ev, err)
	})
	output.Events.Subscribe(func(state deferred.State, evs []model.EventSummary, err error) {
		if evs == nil && err == nil {
			evs = []model.EventSummary{}
		}
		frames <- h.newStreamFrame(frameEvents, evs, err)
	})

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	remaining := 2
	c.Stream(func(w io.Writer) bool {
		select {
		case f := <-frames:
			c.SSEvent(f.name, f.data)
			remaining--
			if remaining == 0 {
				c.SSEvent(frameDone, gin.H{})
				return false
			}
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// Action godoc
// @Summary     Mutate an event
// @Description Forwards the request method (or a POST form's _method override) to the events API with the caller's bearer token, then redirects to the events list.
// @Tags        Events
// @Produce     json
// @Param       id            path     string true  "Event ID"
// @Param       Authorization header   string false "Bearer token"
// @Param       _method       formData string false "Method override for POST"
// @Success     303 {object} response.Resp "Redirect to /events"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Could not delete event."
// @Router      /api/v1/events/{id} [DELETE]
// @Router      /api/v1/events/{id} [POST]
func (h *handler) Action(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processActionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.GetScope(c)
	output, err := h.uc.Action(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Action: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Redirect(c, output.RedirectTo)
}

func (h *handler) newStreamFrame(field string, data any, err error) streamFrame {
	if err != nil {
		httpErr := h.mapError(err)
		return streamFrame{name: frameError, data: streamErrorData{
			Field:   field,
			Status:  httpErr.StatusCode,
			Message: httpErr.Message,
		}}
	}
	return streamFrame{name: field, data: data}
}
