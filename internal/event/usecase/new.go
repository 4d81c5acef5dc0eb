package usecase

import (
	"events-portal/internal/event"
	"events-portal/internal/event/repository"
	pkgLog "events-portal/pkg/log"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo repository.EventRepository
	l    pkgLog.Logger
}

// New creates a new event UseCase implementation.
func New(repo repository.EventRepository, l pkgLog.Logger) event.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
