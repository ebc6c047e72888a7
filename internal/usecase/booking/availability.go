package booking

import (
	"context"
	"time"

	domain "github.com/salonops/salon-api/internal/domain/booking"
)

type GetAvailableSeats struct {
	repo      domain.Repository
	seatCount int
}

func NewGetAvailableSeats(repo domain.Repository, seatCount int) *GetAvailableSeats {
	return &GetAvailableSeats{
		repo:      repo,
		seatCount: seatCount,
	}
}

// Execute splits the seat range at exactly the given instant. Only active
// bookings block a seat; cancelled and completed ones free their slot.
func (uc *GetAvailableSeats) Execute(
	ctx context.Context,
	at time.Time,
) (*domain.SeatAvailability, error) {

	booked, err := uc.repo.ListBookedSeats(ctx, at)
	if err != nil {
		return nil, err
	}

	availability := domain.ComputeAvailability(uc.seatCount, booked)
	return &availability, nil
}
