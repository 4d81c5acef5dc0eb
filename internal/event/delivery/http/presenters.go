package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"events-portal/internal/event"
	"events-portal/internal/model"
)

// --- Request DTOs ---

type detailReq struct {
	ID string `uri:"id" binding:"required"`
}

func (r detailReq) toInput() event.LoadInput {
	return event.LoadInput{ID: r.ID}
}

// ---

type actionReq struct {
	ID     string `uri:"id" binding:"required"`
	Method string `form:"_method"` // populated from the form or query
}

// validate fills in the method to forward: the request's own method, unless a POST carries a
// _method override (HTML forms can only send GET and POST).
func (r *actionReq) validate(requestMethod string) error {
	if requestMethod != http.MethodPost || strings.TrimSpace(r.Method) == "" {
		r.Method = requestMethod
	}
	r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
	return nil
}

func (r actionReq) toInput() event.ActionInput {
	return event.ActionInput{
		ID:     r.ID,
		Method: r.Method,
	}
}

// --- Response DTOs ---

type detailResp struct {
	Event  json.RawMessage   `json:"event"`
	Events []json.RawMessage `json:"events"`
}

func (h *handler) newDetailResp(out event.DetailOutput) detailResp {
	events := out.Events
	if events == nil {
		events = []model.EventSummary{}
	}
	ev := out.Event
	if ev == nil {
		ev = json.RawMessage("null")
	}
	return detailResp{Event: ev, Events: events}
}

// --- Stream frames ---

const (
	frameEvent  = "event"
	frameEvents = "events"
	frameError  = "error"
	frameDone   = "done"
)

type streamFrame struct {
	name string
	data any
}

type streamErrorData struct {
	Field   string `json:"field"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}
