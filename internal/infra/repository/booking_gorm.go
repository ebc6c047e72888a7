package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) UpsertCustomerByMobile(
	ctx context.Context,
	name string,
	mobile string,
	place string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("mobile = ?", mobile).
		First(&customer).Error

	if err == nil {
		customer.Name = name
		customer.Place = place
		if err := r.db.WithContext(ctx).Save(&customer).Error; err != nil {
			return nil, err
		}
		return &customer, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = models.Customer{
		Name:   name,
		Mobile: mobile,
		Place:  place,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, b.SeatNumber, b.BookingTime, 0); err != nil {
			return err
		}
		return tx.Create(b).Error
	})

	// The partial unique index catches the race two transactions can still
	// lose when both saw an empty conflict set.
	if isUniqueViolation(err) {
		return httperr.ErrConflict("seat_already_booked")
	}
	return err
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
	recheckSlot bool,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if recheckSlot {
			if err := assertSlotFree(tx, b.SeatNumber, b.BookingTime, b.ID); err != nil {
				return err
			}
		}
		return tx.Save(b).Error
	})

	if isUniqueViolation(err) {
		return httperr.ErrConflict("seat_already_booked")
	}
	return err
}

// assertSlotFree locks any active bookings at exactly (seat, at), excluding
// excludeID when non-zero, and fails with Conflict if one exists.
func assertSlotFree(tx *gorm.DB, seat int, at time.Time, excludeID uint) error {
	var ids []uint
	if err := slotConflictQuery(tx, seat, at, excludeID).
		Pluck("id", &ids).Error; err != nil {
		return err
	}

	if len(ids) > 0 {
		return httperr.ErrConflict("seat_already_booked")
	}
	return nil
}

// slotConflictQuery selects the ids of the conflicting rows. The lock goes on
// the id select; postgres rejects FOR UPDATE combined with aggregates.
func slotConflictQuery(tx *gorm.DB, seat int, at time.Time, excludeID uint) *gorm.DB {
	q := tx.
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"seat_number = ? AND booking_time = ? AND status IN ?",
			seat, at, domain.ActiveStatuses(),
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) FindBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Order("booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("booking_time >= ? AND booking_time <= ?", start, end).
		Order("booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookedSeats(
	ctx context.Context,
	at time.Time,
) ([]int, error) {

	var seats []int
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booking_time = ? AND status IN ?", at, domain.ActiveStatuses()).
		Pluck("seat_number", &seats).Error; err != nil {
		return nil, err
	}

	return seats, nil
}

func (r *BookingGormRepository) ListRecentBookings(
	ctx context.Context,
	limit int,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (delete)
// --------------------------------------------------

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *BookingGormRepository) SumCompletedRevenue(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (float64, error) {

	var total float64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where(
			"status = ? AND booking_time >= ? AND booking_time <= ?",
			string(domain.StatusCompleted), start, end,
		).
		Scan(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

func (r *BookingGormRepository) CountBookings(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booking_time >= ? AND booking_time <= ?", start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingGormRepository) CountCompletedBookings(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"status = ? AND booking_time >= ? AND booking_time <= ?",
			string(domain.StatusCompleted), start, end,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingGormRepository) CountDistinctCustomers(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Distinct("customer_id").
		Where("booking_time >= ? AND booking_time <= ?", start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
