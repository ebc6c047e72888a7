package booking

import (
	"context"
	"time"

	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/models"
)

// PostponeBooking is sugar over UpdateBooking: new booking time plus the
// POSTPONED status, inheriting the slot conflict check.
type PostponeBooking struct {
	update *UpdateBooking
}

func NewPostponeBooking(update *UpdateBooking) *PostponeBooking {
	return &PostponeBooking{update: update}
}

func (uc *PostponeBooking) Execute(
	ctx context.Context,
	id uint,
	newBookingTime time.Time,
) (*models.Booking, error) {

	status := domain.StatusPostponed
	return uc.update.Execute(ctx, id, UpdateBookingInput{
		BookingTime: &newBookingTime,
		Status:      &status,
	})
}
