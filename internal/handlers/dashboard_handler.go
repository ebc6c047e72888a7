package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonops/salon-api/internal/httperr"
	"github.com/salonops/salon-api/internal/httpresp"
	"github.com/salonops/salon-api/internal/usecase/report"
)

type DashboardHandler struct {
	dashboard *report.Dashboard
	recent    *report.RecentBookings
}

func NewDashboardHandler(
	dashboard *report.Dashboard,
	recent *report.RecentBookings,
) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		recent:    recent,
	}
}

func (h *DashboardHandler) Today(c *gin.Context) {
	stats, err := h.dashboard.Today(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Could not compute today's stats.")
		return
	}
	httpresp.OK(c, stats)
}

func (h *DashboardHandler) Month(c *gin.Context) {
	stats, err := h.dashboard.Month(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Could not compute this month's stats.")
		return
	}
	httpresp.OK(c, stats)
}

func (h *DashboardHandler) Year(c *gin.Context) {
	stats, err := h.dashboard.Year(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Could not compute this year's stats.")
		return
	}
	httpresp.OK(c, stats)
}

func (h *DashboardHandler) Income(c *gin.Context) {
	income, err := h.dashboard.Income(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_compute_income", "Could not compute income analytics.")
		return
	}
	httpresp.OK(c, income)
}

func (h *DashboardHandler) Recent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			httperr.BadRequest(c, "invalid_limit", "Limit must be between 1 and 100.")
			return
		}
		limit = n
	}

	bookings, err := h.recent.Execute(c.Request.Context(), limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_recent", "Could not list recent bookings.")
		return
	}
	httpresp.List(c, bookings)
}
