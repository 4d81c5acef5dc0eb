package usecase

import (
	"context"
	"strings"

	"events-portal/internal/event"
	"events-portal/internal/event/repository"
	"events-portal/internal/model"
)

// Action forwards a mutation for one event with the caller's bearer credential.
// On success the client is sent back to the events list.
func (uc *implUseCase) Action(ctx context.Context, sc model.Scope, input event.ActionInput) (event.ActionOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return event.ActionOutput{}, event.ErrMissingID
	}
	method := strings.ToUpper(strings.TrimSpace(input.Method))
	if method == "" {
		return event.ActionOutput{}, event.ErrMissingMethod
	}

	err := uc.repo.MutateEvent(ctx, repository.MutateEventOptions{
		ID:     id,
		Method: method,
		Token:  sc.Token,
	})
	if err != nil {
		uc.l.Debugf(ctx, "uc.Action MutateEvent %s: %v", method, err)
		return event.ActionOutput{}, event.ErrDeleteEvent
	}

	return event.ActionOutput{RedirectTo: event.EventsPath}, nil
}
