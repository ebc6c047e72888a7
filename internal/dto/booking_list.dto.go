package dto

import (
	"time"

	"github.com/salonops/salon-api/internal/models"
)

type BookingListDTO struct {
	ID             uint      `json:"id"`
	Reference      string    `json:"reference"`
	SeatNumber     int       `json:"seat_number"`
	BookingTime    time.Time `json:"booking_time"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	CustomerName   string    `json:"customer_name"`
	CustomerMobile string    `json:"customer_mobile"`
	ServiceName    string    `json:"service_name"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromBooking(b models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:             b.ID,
		Reference:      b.Reference,
		SeatNumber:     b.SeatNumber,
		BookingTime:    b.BookingTime,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
		CustomerName:   b.Customer.Name,
		CustomerMobile: b.Customer.Mobile,
		ServiceName:    b.Service.Name,
		CreatedAt:      b.CreatedAt,
	}
}

func FromBookings(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
