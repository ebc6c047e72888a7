package booking

import (
	"context"

	"github.com/salonops/salon-api/internal/audit"
	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/httperr"
)

// RemoveBooking hard-deletes the row. Rare, and distinct from cancelling.
type RemoveBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveBooking {
	return &RemoveBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveBooking) Execute(
	ctx context.Context,
	id uint,
) error {

	b, err := uc.repo.FindBooking(ctx, id)
	if err != nil {
		return httperr.ErrNotFound("booking_not_found")
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
