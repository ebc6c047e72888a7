package report

import (
	"context"

	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/dto"
)

const defaultRecentLimit = 10

type RecentBookings struct {
	repo domain.Repository
}

func NewRecentBookings(repo domain.Repository) *RecentBookings {
	return &RecentBookings{repo: repo}
}

func (uc *RecentBookings) Execute(
	ctx context.Context,
	limit int,
) ([]dto.BookingListDTO, error) {

	if limit <= 0 {
		limit = defaultRecentLimit
	}

	bookings, err := uc.repo.ListRecentBookings(ctx, limit)
	if err != nil {
		return nil, err
	}
	return dto.FromBookings(bookings), nil
}
