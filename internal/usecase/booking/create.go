package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonops/salon-api/internal/audit"
	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName   string
	CustomerMobile string
	CustomerPlace  string

	ServiceID   uint
	SeatNumber  int
	BookingTime time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// Service: a wholly unknown id and a deactivated service fail with
	// distinct codes; history keeps referencing deactivated services.
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	if !svc.IsActive {
		return nil, httperr.ErrNotFound("service_unavailable")
	}

	customer, err := uc.repo.UpsertCustomerByMobile(
		ctx,
		in.CustomerName,
		in.CustomerMobile,
		in.CustomerPlace,
	)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		Reference:   uuid.NewString(),
		CustomerID:  customer.ID,
		ServiceID:   svc.ID,
		SeatNumber:  in.SeatNumber,
		BookingTime: in.BookingTime,
		TotalPrice:  svc.Price,
		Status:      string(domain.InitialStatus()),
	}

	// Conflict check and insert run atomically in the repository.
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return uc.repo.FindBooking(ctx, b.ID)
}
