package usecase

import (
	"context"
	"strings"

	"events-portal/internal/event"
	"events-portal/internal/model"
	"events-portal/pkg/deferred"
)

// Load starts both fetches and returns without waiting for either. The fetches are detached
// from ctx cancellation so that each runs to completion even if the caller stops listening.
func (uc *implUseCase) Load(ctx context.Context, input event.LoadInput) (event.LoadOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return event.LoadOutput{}, event.ErrMissingID
	}

	fetchCtx := context.WithoutCancel(ctx)
	return event.LoadOutput{
		Event: deferred.Go(func() (model.EventDetail, error) {
			return uc.loadEvent(fetchCtx, id)
		}),
		Events: deferred.Go(func() ([]model.EventSummary, error) {
			return uc.loadEvents(fetchCtx)
		}),
	}, nil
}

// Detail loads both values and joins them, failing with the first error observed.
func (uc *implUseCase) Detail(ctx context.Context, input event.LoadInput) (event.DetailOutput, error) {
	out, err := uc.Load(ctx, input)
	if err != nil {
		return event.DetailOutput{}, err
	}

	detail, err := out.Wait(ctx)
	if err != nil {
		uc.l.Debugf(ctx, "uc.Detail id=%s: %v", input.ID, err)
		return event.DetailOutput{}, err
	}
	return detail, nil
}

func (uc *implUseCase) loadEvent(ctx context.Context, id string) (model.EventDetail, error) {
	ev, err := uc.repo.GetEvent(ctx, id)
	if err != nil {
		uc.l.Debugf(ctx, "uc.loadEvent GetEvent: %v", err)
		return nil, uc.upstreamError(err, event.ErrFetchEvent)
	}
	return ev, nil
}

func (uc *implUseCase) loadEvents(ctx context.Context) ([]model.EventSummary, error) {
	evs, err := uc.repo.ListEvents(ctx)
	if err != nil {
		uc.l.Debugf(ctx, "uc.loadEvents ListEvents: %v", err)
		return nil, uc.upstreamError(err, event.ErrFetchEvents)
	}
	return evs, nil
}
