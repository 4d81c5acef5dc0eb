package event

import (
	"context"

	"events-portal/internal/model"
	"events-portal/pkg/deferred"
)

// EventsPath is where the client is sent after a successful mutation.
const EventsPath = "/events"

// --- UseCase Inputs ---

type LoadInput struct {
	ID string
}

type ActionInput struct {
	ID     string
	Method string // HTTP method to forward upstream, e.g. DELETE
}

// --- UseCase Outputs ---

// LoadOutput holds one deferred value per piece of data on the detail view. Each settles on
// its own, so a consumer can show one before the other is ready.
type LoadOutput struct {
	Event  *deferred.Value[model.EventDetail]
	Events *deferred.Value[[]model.EventSummary]
}

// DetailOutput is the joined form of LoadOutput.
type DetailOutput struct {
	Event  model.EventDetail
	Events []model.EventSummary
}

type ActionOutput struct {
	RedirectTo string
}

// Wait blocks until both values are Ready, or returns the error of whichever fails first.
// It does not stop the other fetch.
func (o LoadOutput) Wait(ctx context.Context) (DetailOutput, error) {
	var (
		out        DetailOutput
		eventDone  <-chan struct{}
		eventsDone <-chan struct{}
	)
	if o.Event != nil {
		eventDone = o.Event.Done()
	}
	if o.Events != nil {
		eventsDone = o.Events.Done()
	}

	for eventDone != nil || eventsDone != nil {
		select {
		case <-eventDone:
			ev, err := o.Event.Result()
			if err != nil {
				return DetailOutput{}, err
			}
			out.Event = ev
			eventDone = nil
		case <-eventsDone:
			evs, err := o.Events.Result()
			if err != nil {
				return DetailOutput{}, err
			}
			out.Events = evs
			eventsDone = nil
		case <-ctx.Done():
			return DetailOutput{}, ctx.Err()
		}
	}
	return out, nil
}
