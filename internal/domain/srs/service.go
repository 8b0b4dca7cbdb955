package srs

import (
	"time"

	"github.com/peanuts/anki-api/internal/domain"
)

// Service defines the interface for SRS scheduling operations.
type Service interface {
	// ApplyReview computes the schedule that results from reviewing a
	// card with the given quality rating at the given moment.
	//
	// Returns domain.ErrInvalidQuality if quality is outside [0, 5];
	// in that case the input schedule must be treated as unchanged and
	// nothing derived from the call may be persisted.
	ApplyReview(
		schedule domain.ReviewSchedule,
		quality int,
		now time.Time,
	) (domain.ReviewSchedule, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params Params
}

// NewDefaultService creates an SRS service with the standard SM-2 parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates an SRS service with custom parameters.
func NewServiceWithParams(params Params) Service {
	return &defaultService{params: params}
}

// ApplyReview implements the Service interface. Validation happens before
// any computation, so a rejected review cannot leave partial state behind.
func (s *defaultService) ApplyReview(
	schedule domain.ReviewSchedule,
	quality int,
	now time.Time,
) (domain.ReviewSchedule, error) {
	if quality < MinQuality || quality > MaxQuality {
		return domain.ReviewSchedule{}, domain.ErrInvalidQuality
	}

	return apply(schedule, quality, now, s.params), nil
}
