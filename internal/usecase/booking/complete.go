package booking

import (
	"context"

	"github.com/salonops/salon-api/internal/audit"
	"github.com/salonops/salon-api/internal/civiltime"
	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/models"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	b, err := uc.repo.FindBooking(ctx, id)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	if err := domain.Complete(b, civiltime.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b, false); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
