package booking

import (
	"context"
	"time"

	"github.com/salonops/salon-api/internal/audit"
	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateBookingInput is a partial patch. The slot conflict check only re-runs
// when BookingTime is part of the patch, against the (possibly also patched)
// seat number and excluding the booking itself.
type UpdateBookingInput struct {
	SeatNumber  *int
	BookingTime *time.Time
	Status      *domain.Status
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id uint,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.FindBooking(ctx, id)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	if in.Status != nil {
		if err := domain.CanTransition(domain.Status(b.Status), *in.Status); err != nil {
			return nil, err
		}
		b.Status = string(*in.Status)
	}

	if in.SeatNumber != nil {
		b.SeatNumber = *in.SeatNumber
	}

	recheckSlot := false
	if in.BookingTime != nil {
		b.BookingTime = *in.BookingTime
		recheckSlot = true
	}

	if err := uc.repo.UpdateBooking(ctx, b, recheckSlot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return uc.repo.FindBooking(ctx, b.ID)
}
