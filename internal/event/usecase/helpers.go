package usecase

import (
	"errors"

	"events-portal/internal/event/repository"
)

// upstreamError maps a fetch failure to the call site's error. A malformed body on an otherwise
// successful response is returned unchanged and is not mapped.
func (uc *implUseCase) upstreamError(err, mapped error) error {
	if errors.Is(err, repository.ErrMalformedBody) {
		return err
	}
	return mapped
}
