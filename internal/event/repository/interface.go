package repository

import (
	"context"

	"events-portal/internal/model"
)

// EventRepository is the data access interface for the remote events API.
type EventRepository interface {
	GetEvent(ctx context.Context, id string) (model.EventDetail, error)
	ListEvents(ctx context.Context) ([]model.EventSummary, error)
	MutateEvent(ctx context.Context, opt MutateEventOptions) error
}
