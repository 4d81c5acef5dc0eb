package model

import "encoding/json"

// EventDetail is a single event as returned by the events API. Its fields are opaque to this
// service and passed through untouched.
type EventDetail = json.RawMessage

// EventSummary is one entry of the events list as returned by the events API.
type EventSummary = json.RawMessage
