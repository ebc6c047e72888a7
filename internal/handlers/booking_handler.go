package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/httpresp"
	ucBooking "github.com/salonops/salon-api/internal/usecase/booking"
	"github.com/salonops/salon-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create    *ucBooking.CreateBooking
	get       *ucBooking.GetBooking
	update    *ucBooking.UpdateBooking
	postpone  *ucBooking.PostponeBooking
	cancel    *ucBooking.CancelBooking
	complete  *ucBooking.CompleteBooking
	remove    *ucBooking.RemoveBooking
	list      *ucBooking.ListBookings
	listToday *ucBooking.ListTodayBookings
	seats     *ucBooking.GetAvailableSeats

	seatCount int
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	get *ucBooking.GetBooking,
	update *ucBooking.UpdateBooking,
	postpone *ucBooking.PostponeBooking,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	remove *ucBooking.RemoveBooking,
	list *ucBooking.ListBookings,
	listToday *ucBooking.ListTodayBookings,
	seats *ucBooking.GetAvailableSeats,
	seatCount int,
) *BookingHandler {
	return &BookingHandler{
		create:    create,
		get:       get,
		update:    update,
		postpone:  postpone,
		cancel:    cancel,
		complete:  complete,
		remove:    remove,
		list:      list,
		listToday: listToday,
		seats:     seats,
		seatCount: seatCount,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerMobile string `json:"customer_mobile" binding:"required"`
	CustomerPlace  string `json:"customer_place"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	SeatNumber     int    `json:"seat_number" binding:"required"`
	BookingTime    string `json:"booking_time" binding:"required"`
}

type UpdateBookingRequest struct {
	SeatNumber  *int    `json:"seat_number,omitempty"`
	BookingTime *string `json:"booking_time,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type PostponeBookingRequest struct {
	BookingTime string `json:"booking_time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	if !validators.IsMobileValid(req.CustomerMobile) {
		httperr.BadRequest(c, "invalid_mobile", "Mobile number is malformed.")
		return
	}

	if !validators.IsSeatInRange(req.SeatNumber, h.seatCount) {
		httperr.BadRequest(c, "seat_out_of_range", "Seat number is outside the salon's range.")
		return
	}

	bookingTime, err := validators.ParseBookingTime(req.BookingTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_time", "Booking time must be ISO-8601.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
		CustomerPlace:  req.CustomerPlace,
		ServiceID:      req.ServiceID,
		SeatNumber:     req.SeatNumber,
		BookingTime:    bookingTime,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Could not create booking.")
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromBusiness(c, err, "Booking not found.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ListToday defaults to the historical server-local midnight window;
// ?civil=true switches to the fixed IST day.
func (h *BookingHandler) ListToday(c *gin.Context) {
	var (
		bookings any
		err      error
	)

	if c.Query("civil") == "true" {
		bookings, err = h.listToday.ExecuteCivil(c.Request.Context())
	} else {
		bookings, err = h.listToday.ExecuteServerLocal(c.Request.Context())
	}
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list today's bookings.")
		return
	}

	httpresp.OK(c, bookings)
}

func (h *BookingHandler) AvailableSeats(c *gin.Context) {
	atStr := c.Query("at")
	if atStr == "" {
		httperr.BadRequest(c, "missing_at", "Query parameter 'at' is required.")
		return
	}

	at, err := validators.ParseBookingTime(atStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_at", "Instant must be ISO-8601.")
		return
	}

	availability, err := h.seats.Execute(c.Request.Context(), at)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_availability", "Could not compute availability.")
		return
	}

	httpresp.OK(c, availability)
}

// ======================================================
// UPDATE / LIFECYCLE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking patch.")
		return
	}

	in := ucBooking.UpdateBookingInput{}

	if req.SeatNumber != nil {
		if !validators.IsSeatInRange(*req.SeatNumber, h.seatCount) {
			httperr.BadRequest(c, "seat_out_of_range", "Seat number is outside the salon's range.")
			return
		}
		in.SeatNumber = req.SeatNumber
	}

	if req.BookingTime != nil {
		t, err := validators.ParseBookingTime(*req.BookingTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_booking_time", "Booking time must be ISO-8601.")
			return
		}
		in.BookingTime = &t
	}

	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !status.Valid() {
			httperr.BadRequest(c, "invalid_status", "Unknown booking status.")
			return
		}
		in.Status = &status
	}

	b, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.FromBusiness(c, err, "Could not update booking.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Postpone(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req PostponeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid postpone payload.")
		return
	}

	newTime, err := validators.ParseBookingTime(req.BookingTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_time", "Booking time must be ISO-8601.")
		return
	}

	b, err := h.postpone.Execute(c.Request.Context(), id, newTime)
	if err != nil {
		httperr.FromBusiness(c, err, "Could not postpone booking.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromBusiness(c, err, "Could not cancel booking.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromBusiness(c, err, "Could not complete booking.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.FromBusiness(c, err, "Could not delete booking.")
		return
	}

	c.Status(http.StatusNoContent)
}
