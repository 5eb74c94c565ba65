package routes

import (
	"beautybar/handlers"
	"beautybar/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking write path and the admin-only
// booking views.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	r.POST("/api/bookings", h.CreateBooking)

	guarded := r.Group("/api/bookings")
	guarded.Use(middleware.AdminAuthMiddleware())
	{
		guarded.GET("", h.ListBookings)
		guarded.PATCH("/:id/status", h.UpdateBookingStatus)
	}
}
