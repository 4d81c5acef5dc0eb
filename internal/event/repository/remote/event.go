package remote

import (
	"context"

	"events-portal/internal/event/repository"
	"events-portal/internal/model"
	pkgLog "events-portal/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new events API backed repository.
func New(client *Client, l pkgLog.Logger) repository.EventRepository {
	if client == nil {
		panic("event/repository/remote: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) GetEvent(ctx context.Context, id string) (model.EventDetail, error) {
	ev, err := r.client.GetEvent(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "event/repository/remote.GetEvent id=%s: %v", id, err)
		return nil, err
	}
	return ev, nil
}

func (r *implRepository) ListEvents(ctx context.Context) ([]model.EventSummary, error) {
	evs, err := r.client.ListEvents(ctx)
	if err != nil {
		r.l.Errorf(ctx, "event/repository/remote.ListEvents: %v", err)
		return nil, err
	}
	return evs, nil
}

func (r *implRepository) MutateEvent(ctx context.Context, opt repository.MutateEventOptions) error {
	if err := r.client.MutateEvent(ctx, opt.Method, opt.ID, opt.Token); err != nil {
		r.l.Errorf(ctx, "event/repository/remote.MutateEvent %s id=%s: %v", opt.Method, opt.ID, err)
		return err
	}
	return nil
}
