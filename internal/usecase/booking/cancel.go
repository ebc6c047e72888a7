package booking

import (
	"context"

	"github.com/salonops/salon-api/internal/audit"
	"github.com/salonops/salon-api/internal/civiltime"
	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	b, err := uc.repo.FindBooking(ctx, id)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	if err := domain.Cancel(b, civiltime.Now()); err != nil {
		return nil, err
	}

	// Seat and time are untouched, no conflict re-check.
	if err := uc.repo.UpdateBooking(ctx, b, false); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
