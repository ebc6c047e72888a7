package report

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/salonops/salon-api/internal/civiltime"
	domain "github.com/salonops/salon-api/internal/domain/booking"
)

// ======================================================
// OUTPUT
// ======================================================

type WindowStats struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	DistinctCustomers int64   `json:"distinct_customers"`
}

type IncomeAnalytics struct {
	Today float64 `json:"today"`
	Month float64 `json:"month"`
	Year  float64 `json:"year"`
}

// ======================================================
// USE CASE
// ======================================================

// Dashboard computes read-only rollups over civil IST windows. Results are
// cached in redis for a short TTL; aggregation reads are allowed to lag
// writes, so there is no invalidation.
type Dashboard struct {
	repo  domain.Repository
	cache *redis.Client
	ttl   time.Duration
	now   func() time.Time
}

func NewDashboard(repo domain.Repository, cache *redis.Client) *Dashboard {
	return &Dashboard{
		repo:  repo,
		cache: cache,
		ttl:   30 * time.Second,
		now:   civiltime.Now,
	}
}

func (d *Dashboard) Today(ctx context.Context) (*WindowStats, error) {
	now := d.now()
	return d.statsBetween(ctx, "dashboard:today",
		civiltime.StartOfDay(now), civiltime.EndOfDay(now))
}

func (d *Dashboard) Month(ctx context.Context) (*WindowStats, error) {
	now := d.now()
	return d.statsBetween(ctx, "dashboard:month",
		civiltime.StartOfMonth(now), civiltime.EndOfMonth(now))
}

func (d *Dashboard) Year(ctx context.Context) (*WindowStats, error) {
	now := d.now()
	return d.statsBetween(ctx, "dashboard:year",
		civiltime.StartOfYear(now), civiltime.EndOfYear(now))
}

func (d *Dashboard) Income(ctx context.Context) (*IncomeAnalytics, error) {
	now := d.now()

	today, err := d.repo.SumCompletedRevenue(ctx,
		civiltime.StartOfDay(now), civiltime.EndOfDay(now))
	if err != nil {
		return nil, err
	}

	month, err := d.repo.SumCompletedRevenue(ctx,
		civiltime.StartOfMonth(now), civiltime.EndOfMonth(now))
	if err != nil {
		return nil, err
	}

	year, err := d.repo.SumCompletedRevenue(ctx,
		civiltime.StartOfYear(now), civiltime.EndOfYear(now))
	if err != nil {
		return nil, err
	}

	return &IncomeAnalytics{Today: today, Month: month, Year: year}, nil
}

// ======================================================
// INTERNAL
// ======================================================

func (d *Dashboard) statsBetween(
	ctx context.Context,
	cacheKey string,
	start time.Time,
	end time.Time,
) (*WindowStats, error) {

	if cached := d.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	revenue, err := d.repo.SumCompletedRevenue(ctx, start, end)
	if err != nil {
		return nil, err
	}

	total, err := d.repo.CountBookings(ctx, start, end)
	if err != nil {
		return nil, err
	}

	completed, err := d.repo.CountCompletedBookings(ctx, start, end)
	if err != nil {
		return nil, err
	}

	customers, err := d.repo.CountDistinctCustomers(ctx, start, end)
	if err != nil {
		return nil, err
	}

	stats := &WindowStats{
		TotalRevenue:      revenue,
		TotalBookings:     total,
		CompletedBookings: completed,
		PendingBookings:   total - completed,
		DistinctCustomers: customers,
	}

	d.toCache(ctx, cacheKey, stats)
	return stats, nil
}

func (d *Dashboard) fromCache(ctx context.Context, key string) *WindowStats {
	if d.cache == nil {
		return nil
	}

	raw, err := d.cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}

	var stats WindowStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil
	}
	return &stats
}

func (d *Dashboard) toCache(ctx context.Context, key string, stats *WindowStats) {
	if d.cache == nil {
		return
	}

	if raw, err := json.Marshal(stats); err == nil {
		// best effort, a cold cache only costs a recount
		d.cache.Set(ctx, key, raw, d.ttl)
	}
}
