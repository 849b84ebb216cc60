package routes

import (
	"luxerent/internal/handlers"
	"luxerent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes wires the quote and booking endpoints. Quoting is
// open to guests; submitting and reading bookings require a client
// account.
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler, jwtSecret string) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("/quote", middleware.AuthOptional(jwtSecret), bookingHandler.Quote)
	}

	protected := r.Group("/bookings")
	protected.Use(middleware.AuthRequired(jwtSecret))
	{
		protected.POST("/", bookingHandler.Submit)
		protected.GET("/", bookingHandler.ListBookings)
		protected.GET("/:id", bookingHandler.GetBooking)
		protected.POST("/:id/cancel", bookingHandler.CancelBooking)
	}

	admin := r.Group("/admin/bookings")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/:id", bookingHandler.GetBooking)
		admin.POST("/:id/cancel", bookingHandler.CancelBooking)
	}
}
