package booking

import "github.com/salonops/salon-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusPostponed Status = "POSTPONED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Active reports whether the booking still occupies its seat/time slot.
func (s Status) Active() bool {
	return s == StatusConfirmed || s == StatusPostponed
}

// Terminal reports whether no further transition is defined.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPostponed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ActiveStatuses is the status set that blocks a (seat, time) slot.
func ActiveStatuses() []string {
	return []string{string(StatusConfirmed), string(StatusPostponed)}
}

// ===============================
// Validations
// ===============================

// CanTransition enforces CONFIRMED ⇄ POSTPONED plus the terminal moves to
// CANCELLED and COMPLETED. Nothing leaves a terminal state.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrConflict("invalid_status")
	}
	if from.Terminal() {
		return httperr.ErrConflict("invalid_state")
	}
	return nil
}

func CanPostpone(current Status) error {
	return CanTransition(current, StatusPostponed)
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}

func InitialStatus() Status {
	return StatusConfirmed
}
