package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/salonops/salon-api/internal/audit"
	"github.com/salonops/salon-api/internal/catalog"
	"github.com/salonops/salon-api/internal/config"
	"github.com/salonops/salon-api/internal/directory"
	"github.com/salonops/salon-api/internal/handlers"
	infraRepo "github.com/salonops/salon-api/internal/infra/repository"
	"github.com/salonops/salon-api/internal/middleware"
	ucBooking "github.com/salonops/salon-api/internal/usecase/booking"
	"github.com/salonops/salon-api/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cache *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	serviceCatalog := catalog.New(db)
	customerDirectory := directory.New(db)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, auditDispatcher)
	postponeBookingUC := ucBooking.NewPostponeBooking(updateBookingUC)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)
	removeBookingUC := ucBooking.NewRemoveBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	listTodayUC := ucBooking.NewListTodayBookings(bookingRepo)
	availableSeatsUC := ucBooking.NewGetAvailableSeats(bookingRepo, cfg.SeatCount)

	// ======================================================
	// USE CASES — DASHBOARD
	// ======================================================
	dashboardUC := report.NewDashboard(bookingRepo, cache)
	recentBookingsUC := report.NewRecentBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(serviceCatalog)
	customerHandler := handlers.NewCustomerHandler(customerDirectory)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		updateBookingUC,
		postponeBookingUC,
		cancelBookingUC,
		completeBookingUC,
		removeBookingUC,
		listBookingsUC,
		listTodayUC,
		availableSeatsUC,
		cfg.SeatCount,
	)

	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, recentBookingsUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/search", serviceHandler.Search)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Deactivate)

			// ------------------------------
			// CUSTOMERS
			// ------------------------------
			secured.GET("/customers", customerHandler.List)
			secured.POST("/customers", customerHandler.Create)
			secured.GET("/customers/search", customerHandler.Search)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.PATCH("/customers/:id", customerHandler.Update)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/today", bookingHandler.ListToday)
			secured.GET("/bookings/seats", bookingHandler.AvailableSeats)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id", bookingHandler.Update)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)
			secured.PATCH("/bookings/:id/postpone", bookingHandler.Postpone)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/dashboard/today", dashboardHandler.Today)
			secured.GET("/dashboard/month", dashboardHandler.Month)
			secured.GET("/dashboard/year", dashboardHandler.Year)
			secured.GET("/dashboard/income", dashboardHandler.Income)
			secured.GET("/dashboard/recent", dashboardHandler.Recent)
		}
	}
}
