package event

import (
	"context"

	"events-portal/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Load starts fetching the selected event and the events list concurrently and returns
	// both as deferred values without waiting for either.
	Load(ctx context.Context, input LoadInput) (LoadOutput, error)

	// Detail is Load followed by a join on both values. It fails with the first error observed.
	Detail(ctx context.Context, input LoadInput) (DetailOutput, error)

	// Action sends an authenticated mutation for one event and returns where to navigate next.
	Action(ctx context.Context, sc model.Scope, input ActionInput) (ActionOutput, error)
}
