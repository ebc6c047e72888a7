package booking

import (
	"time"

	"github.com/salonops/salon-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// Postpone moves the booking to a new instant. The caller must re-check the
// seat/time invariant for the new slot before persisting.
func Postpone(b *models.Booking, newTime time.Time) error {
	if err := CanPostpone(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusPostponed)
	b.BookingTime = newTime
	return nil
}
