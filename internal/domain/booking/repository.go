package booking

import (
	"context"
	"time"

	"github.com/salonops/salon-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Customer --------
	UpsertCustomerByMobile(
		ctx context.Context,
		name string,
		mobile string,
		place string,
	) (*models.Customer, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking persists the booking after verifying no active booking
	// holds the same (seat, time) slot. The check and the insert run inside
	// one transaction; returns a Conflict business error on a taken slot.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// UpdateBooking saves the booking. With recheckSlot set, the seat/time
	// conflict check runs again for the booking's current (seat, time),
	// excluding the booking's own id.
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
		recheckSlot bool,
	) error

	// -------- Booking (read) --------
	FindBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookingsBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookedSeats(
		ctx context.Context,
		at time.Time,
	) ([]int, error)

	ListRecentBookings(
		ctx context.Context,
		limit int,
	) ([]models.Booking, error)

	// -------- Booking (delete) --------
	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Aggregates --------
	SumCompletedRevenue(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (float64, error)

	CountBookings(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)

	CountCompletedBookings(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)

	CountDistinctCustomers(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)
}
