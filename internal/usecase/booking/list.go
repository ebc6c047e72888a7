package booking

import (
	"context"
	"time"

	"github.com/salonops/salon-api/internal/civiltime"
	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromBookings(bookings), nil
}

// ListTodayBookings carries both "today" semantics observed in production:
// the list endpoint historically used the server's local midnight while the
// dashboard uses the fixed IST offset. Both stay available so the caller
// chooses; they only coincide when the host runs in IST.
type ListTodayBookings struct {
	repo domain.Repository
}

func NewListTodayBookings(repo domain.Repository) *ListTodayBookings {
	return &ListTodayBookings{repo: repo}
}

func (uc *ListTodayBookings) ExecuteServerLocal(
	ctx context.Context,
) ([]dto.BookingListDTO, error) {

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

	return uc.listBetween(ctx, start, end)
}

func (uc *ListTodayBookings) ExecuteCivil(
	ctx context.Context,
) ([]dto.BookingListDTO, error) {

	now := civiltime.Now()
	return uc.listBetween(ctx, civiltime.StartOfDay(now), civiltime.EndOfDay(now))
}

func (uc *ListTodayBookings) listBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return dto.FromBookings(bookings), nil
}
