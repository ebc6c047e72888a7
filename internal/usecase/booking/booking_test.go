package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonops/salon-api/internal/civiltime"
	domain "github.com/salonops/salon-api/internal/domain/booking"
	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/models"
)

// --- Fake Repository ---

// fakeRepo serializes every write under one mutex, which is also what makes
// the concurrent-create test deterministic: the conflict check and the
// insert are atomic, exactly like the transactional gorm implementation.
type fakeRepo struct {
	mu         sync.Mutex
	services   map[uint]*models.Service
	customers  map[uint]*models.Customer
	bookings   map[uint]*models.Booking
	nextID     uint
	slotChecks int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[uint]*models.Service{
			1: {ID: 1, Name: "Haircut", Price: 300, DurationMin: 30, IsActive: true},
			2: {ID: 2, Name: "Facial", Price: 800, DurationMin: 60, IsActive: false},
		},
		customers: map[uint]*models.Customer{},
		bookings:  map[uint]*models.Booking{},
	}
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	svc, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	cp := *svc
	return &cp, nil
}

func (f *fakeRepo) UpsertCustomerByMobile(_ context.Context, name, mobile, place string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.customers {
		if c.Mobile == mobile {
			c.Name = name
			c.Place = place
			cp := *c
			return &cp, nil
		}
	}

	f.nextID++
	c := &models.Customer{ID: f.nextID, Name: name, Mobile: mobile, Place: place}
	f.customers[c.ID] = c
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) slotTaken(seat int, at time.Time, excludeID uint) bool {
	for _, b := range f.bookings {
		if b.ID == excludeID {
			continue
		}
		if domain.Status(b.Status).Active() && b.SeatNumber == seat && b.BookingTime.Equal(at) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.slotTaken(b.SeatNumber, b.BookingTime, 0) {
		return httperr.ErrConflict("seat_already_booked")
	}

	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking, recheckSlot bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.bookings[b.ID]; !ok {
		return httperr.ErrNotFound("booking_not_found")
	}

	if recheckSlot {
		f.slotChecks++
		if f.slotTaken(b.SeatNumber, b.BookingTime, b.ID) {
			return httperr.ErrConflict("seat_already_booked")
		}
	}

	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepo) FindBooking(_ context.Context, id uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok {
		return nil, httperr.ErrNotFound("booking_not_found")
	}

	cp := *b
	if c, ok := f.customers[b.CustomerID]; ok {
		cp.Customer = *c
	}
	if s, ok := f.services[b.ServiceID]; ok {
		cp.Service = *s
	}
	return &cp, nil
}

func (f *fakeRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsBetween(_ context.Context, start, end time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if !b.BookingTime.Before(start) && !b.BookingTime.After(end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookedSeats(_ context.Context, at time.Time) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var seats []int
	for _, b := range f.bookings {
		if domain.Status(b.Status).Active() && b.BookingTime.Equal(at) {
			seats = append(seats, b.SeatNumber)
		}
	}
	return seats, nil
}

func (f *fakeRepo) ListRecentBookings(_ context.Context, limit int) ([]models.Booking, error) {
	out, _ := f.ListBookings(context.Background())
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) DeleteBooking(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.bookings, id)
	return nil
}

func (f *fakeRepo) SumCompletedRevenue(_ context.Context, start, end time.Time) (float64, error) {
	return 0, nil
}

func (f *fakeRepo) CountBookings(_ context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) CountCompletedBookings(_ context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) CountDistinctCustomers(_ context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --- Helpers ---

func slotAt(hour int) time.Time {
	return time.Date(2024, 6, 1, hour, 0, 0, 0, civiltime.IST)
}

func createInput(seat, hour int) CreateBookingInput {
	return CreateBookingInput{
		CustomerName:   "Anita",
		CustomerMobile: "+919876543210",
		CustomerPlace:  "Kochi",
		ServiceID:      1,
		SeatNumber:     seat,
		BookingTime:    slotAt(hour),
	}
}

// --- Tests ---

func TestCreateBookingSeatConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil)

	first, err := uc.Execute(context.Background(), createInput(3, 10))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), first.Status)
	assert.NotEmpty(t, first.Reference)

	_, err = uc.Execute(context.Background(), createInput(3, 10))
	assert.True(t, httperr.IsConflict(err))
	assert.True(t, httperr.IsBusiness(err, "seat_already_booked"))

	// a different seat at the same instant is fine
	_, err = uc.Execute(context.Background(), createInput(4, 10))
	assert.NoError(t, err)
}

func TestPostponeFreesOriginalSlot(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, nil)
	postpone := NewPostponeBooking(NewUpdateBooking(repo, nil))

	b, err := create.Execute(context.Background(), createInput(3, 10))
	require.NoError(t, err)

	moved, err := postpone.Execute(context.Background(), b.ID, slotAt(11))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPostponed), moved.Status)
	assert.True(t, moved.BookingTime.Equal(slotAt(11)))

	// the new slot is now held
	_, err = create.Execute(context.Background(), createInput(3, 11))
	assert.True(t, httperr.IsBusiness(err, "seat_already_booked"))

	// the vacated slot is free again
	_, err = create.Execute(context.Background(), createInput(3, 10))
	assert.NoError(t, err)
}

func TestPostponeToTakenSlotFails(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, nil)
	postpone := NewPostponeBooking(NewUpdateBooking(repo, nil))

	b, err := create.Execute(context.Background(), createInput(3, 10))
	require.NoError(t, err)

	_, err = create.Execute(context.Background(), createInput(3, 11))
	require.NoError(t, err)

	_, err = postpone.Execute(context.Background(), b.ID, slotAt(11))
	assert.True(t, httperr.IsConflict(err))

	// the failed postpone left the booking untouched
	unchanged, err := NewGetBooking(repo).Execute(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), unchanged.Status)
	assert.True(t, unchanged.BookingTime.Equal(slotAt(10)))
}

func TestTotalPriceSnapshotsServicePrice(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), createInput(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 300.0, b.TotalPrice)

	// catalog price change must not touch the existing booking
	repo.services[1].Price = 400

	unchanged, err := NewGetBooking(repo).Execute(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, unchanged.TotalPrice)

	fresh, err := uc.Execute(context.Background(), createInput(2, 10))
	require.NoError(t, err)
	assert.Equal(t, 400.0, fresh.TotalPrice)
}

func TestCreateBookingServiceLookup(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil)

	in := createInput(3, 10)
	in.ServiceID = 99
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	in.ServiceID = 2 // deactivated
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_unavailable"))
	assert.True(t, httperr.IsNotFound(err))
}

func TestCustomerUpsertIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), createInput(1, 10))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), createInput(2, 11))
	require.NoError(t, err)

	assert.Len(t, repo.customers, 1)
	for _, c := range repo.customers {
		assert.Equal(t, "Anita", c.Name)
		assert.Equal(t, "+919876543210", c.Mobile)
		assert.Equal(t, "Kochi", c.Place)
	}
}

func TestCustomerUpsertOverwritesNameAndPlace(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), createInput(1, 10))
	require.NoError(t, err)

	in := createInput(2, 11)
	in.CustomerName = "Anita R"
	in.CustomerPlace = "Ernakulam"
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Len(t, repo.customers, 1)
	for _, c := range repo.customers {
		assert.Equal(t, "Anita R", c.Name)
		assert.Equal(t, "Ernakulam", c.Place)
	}
}

func TestCancelThenCompleteFails(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, nil)
	cancel := NewCancelBooking(repo, nil)
	complete := NewCompleteBooking(repo, nil)

	b, err := create.Execute(context.Background(), createInput(3, 10))
	require.NoError(t, err)

	cancelled, err := cancel.Execute(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	_, err = complete.Execute(context.Background(), b.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = cancel.Execute(context.Background(), b.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelledSlotIsReusable(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, nil)
	cancel := NewCancelBooking(repo, nil)

	b, err := create.Execute(context.Background(), createInput(3, 10))
	require.NoError(t, err)

	_, err = cancel.Execute(context.Background(), b.ID)
	require.NoError(t, err)

	_, err = create.Execute(context.Background(), createInput(3, 10))
	assert.NoError(t, err)
}

func TestUpdateWithoutBookingTimeSkipsSlotCheck(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, nil)
	update := NewUpdateBooking(repo, nil)

	b, err := create.Execute(context.Background(), createInput(3, 10))
	require.NoError(t, err)

	status := domain.StatusPostponed
	_, err = update.Execute(context.Background(), b.ID, UpdateBookingInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.slotChecks)

	// patching the time re-runs the check with the patched seat
	seat := 4
	at := slotAt(12)
	_, err = update.Execute(context.Background(), b.ID, UpdateBookingInput{
		SeatNumber:  &seat,
		BookingTime: &at,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.slotChecks)
}

func TestUpdateMissingBookingFails(t *testing.T) {
	repo := newFakeRepo()
	update := NewUpdateBooking(repo, nil)

	seat := 4
	_, err := update.Execute(context.Background(), 42, UpdateBookingInput{SeatNumber: &seat})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestRemoveBooking(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, nil)
	remove := NewRemoveBooking(repo, nil)
	get := NewGetBooking(repo)

	b, err := create.Execute(context.Background(), createInput(3, 10))
	require.NoError(t, err)

	require.NoError(t, remove.Execute(context.Background(), b.ID))

	_, err = get.Execute(context.Background(), b.ID)
	assert.True(t, httperr.IsNotFound(err))

	err = remove.Execute(context.Background(), b.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestAvailableSeatsComplement(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, nil)
	cancel := NewCancelBooking(repo, nil)
	seats := NewGetAvailableSeats(repo, 10)

	_, err := create.Execute(context.Background(), createInput(2, 10))
	require.NoError(t, err)
	b5, err := create.Execute(context.Background(), createInput(5, 10))
	require.NoError(t, err)

	out, err := seats.Execute(context.Background(), slotAt(10))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, out.Booked)
	assert.Len(t, out.Available, 8)
	assert.NotContains(t, out.Available, 2)
	assert.NotContains(t, out.Available, 5)

	// cancelling frees the seat at that instant
	_, err = cancel.Execute(context.Background(), b5.ID)
	require.NoError(t, err)

	out, err = seats.Execute(context.Background(), slotAt(10))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, out.Booked)
	assert.Contains(t, out.Available, 5)
}

func TestConcurrentCreateHasExactlyOneWinner(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil)

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), createInput(3, 10))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, "seat_already_booked"):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
}
